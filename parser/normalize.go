package parser

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

// normalize applies syntactic cleanup to a freshly decoded document:
// trims stray whitespace, folds type aliases, and resolves $token
// references in declaration values against the document's shared token
// table. It never judges semantics; that is the validator's job.
func normalize(doc *Document) error {
	doc.Name = strings.TrimSpace(doc.Name)
	doc.BaseKind = strings.TrimSpace(strings.ToLower(doc.BaseKind))

	for i := range doc.Tokens {
		doc.Tokens[i].Key = strings.TrimSpace(doc.Tokens[i].Key)
		doc.Tokens[i].Value = strings.TrimSpace(doc.Tokens[i].Value)
	}

	for i := range doc.Props {
		p := &doc.Props[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Type = foldType(strings.TrimSpace(strings.ToLower(p.Type)))
		for j := range p.Values {
			p.Values[j] = strings.TrimSpace(p.Values[j])
		}
	}

	for i := range doc.Variants {
		doc.Variants[i].Name = strings.TrimSpace(doc.Variants[i].Name)
		doc.Variants[i].Token = strings.TrimSpace(doc.Variants[i].Token)
	}

	for i := range doc.StyleRules {
		rule := &doc.StyleRules[i]
		for j := range rule.Selector {
			rule.Selector[j] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rule.Selector[j]), "."))
		}
		for j := range rule.Declarations {
			rule.Declarations[j].Key = strings.TrimSpace(rule.Declarations[j].Key)
			value, err := resolveTokenRefs(strings.TrimSpace(rule.Declarations[j].Value), doc)
			if err != nil {
				return err
			}
			rule.Declarations[j].Value = value
		}
	}

	for i := range doc.LayoutVariants {
		lv := &doc.LayoutVariants[i]
		lv.When = strings.TrimSpace(lv.When)
		lv.FlexDirection = strings.TrimSpace(lv.FlexDirection)
		lv.JustifyContent = strings.TrimSpace(lv.JustifyContent)
	}

	return nil
}

// foldType maps accepted type spellings onto the canonical three.
func foldType(t string) string {
	switch t {
	case "boolean":
		return "bool"
	case "str", "text":
		return "string"
	default:
		return t
	}
}

// resolveTokenRefs rewrites $name references inside a declaration
// value to var(--name), requiring name to exist in the shared token
// table. Values without references pass through untouched.
func resolveTokenRefs(value string, doc *Document) (string, error) {
	if !strings.Contains(value, "$") {
		return value, nil
	}

	var b strings.Builder
	rest := value
	for {
		idx := strings.IndexByte(rest, '$')
		if idx < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:idx])
		rest = rest[idx+1:]

		end := 0
		for end < len(rest) && isTokenChar(rest[end]) {
			end++
		}
		name := rest[:end]
		if name == "" {
			return "", &schema.SpecError{
				Component: doc.Name,
				Field:     "styleRules",
				Err:       fmt.Errorf("dangling $ in declaration value %q", value),
			}
		}
		if _, ok := doc.Tokens.Get(name); !ok {
			return "", &schema.SpecError{
				Component: doc.Name,
				Field:     "styleRules",
				Err:       fmt.Errorf("reference to undeclared token $%s", name),
			}
		}
		b.WriteString("var(--")
		b.WriteString(name)
		b.WriteString(")")
		rest = rest[end:]
	}
}

func isTokenChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
