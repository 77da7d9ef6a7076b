// Package parser loads raw component spec documents (JSON or YAML)
// into a language-agnostic parse tree. It performs only syntactic
// normalization: whitespace trimming, type-alias folding, and shared
// design-token reference resolution. Semantic validation happens later,
// on the built AST.
package parser

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the parse tree of one component spec. Field values are
// raw (defaults keep their source type); the AST builder interprets
// them.
type Document struct {
	Name           string             `json:"name" yaml:"name"`
	BaseKind       string             `json:"baseKind" yaml:"baseKind"`
	Tokens         Pairs              `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Props          []PropDef          `json:"props" yaml:"props"`
	Variants       []VariantDef       `json:"variants,omitempty" yaml:"variants,omitempty"`
	StyleRules     []StyleRuleDef     `json:"styleRules,omitempty" yaml:"styleRules,omitempty"`
	LayoutVariants []LayoutVariantDef `json:"layoutVariants,omitempty" yaml:"layoutVariants,omitempty"`
}

// PropDef declares one prop. Default stays untyped here; bool false
// and absent are different things and the builder needs to tell them
// apart.
type PropDef struct {
	Name          string   `json:"name" yaml:"name"`
	Type          string   `json:"type" yaml:"type"`
	Default       any      `json:"default,omitempty" yaml:"default,omitempty"`
	AffectsLayout bool     `json:"affectsLayout,omitempty" yaml:"affectsLayout,omitempty"`
	Values        []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// VariantDef declares one named style modifier.
type VariantDef struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"token" yaml:"token"`
}

// StyleRuleDef declares one selector block. Declarations preserve the
// order they appear in the source document.
type StyleRuleDef struct {
	Selector     []string `json:"selector" yaml:"selector"`
	Declarations Pairs    `json:"declarations" yaml:"declarations"`
}

// LayoutVariantDef declares one row of the conditional-layout table.
type LayoutVariantDef struct {
	When           string `json:"when" yaml:"when"`
	FlexDirection  string `json:"flexDirection" yaml:"flexDirection"`
	JustifyContent string `json:"justifyContent" yaml:"justifyContent"`
}

// Pair is one key/value entry of an order-preserving object.
type Pair struct {
	Key   string
	Value string
}

// Pairs decodes a JSON/YAML object while keeping source key order.
// encoding/json-style map decoding would randomize emission order and
// break the byte-identical regeneration guarantee.
type Pairs []Pair

// UnmarshalJSON reads the object token stream in order.
func (p *Pairs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	out := Pairs{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		val, err := stringifyScalar(raw)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		out = append(out, Pair{Key: key, Value: val})
	}
	*p = out
	return nil
}

// MarshalJSON writes the pairs back as an object in stored order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML reads a mapping node; yaml.v3 keeps Content in source
// order.
func (p *Pairs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping, got yaml kind %d", node.Kind)
	}
	out := Pairs{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("unsupported value type for %q: expected scalar, got yaml kind %d", key.Value, val.Kind)
		}
		out = append(out, Pair{Key: key.Value, Value: val.Value})
	}
	*p = out
	return nil
}

// Get returns the value for key and whether it was present.
func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

func stringifyScalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case float64:
		return fmt.Sprintf("%v", t), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
