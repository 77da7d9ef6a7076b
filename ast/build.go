// Package ast builds the canonical ComponentSpec from a parse tree and
// round-trips it through the on-disk AST artifact consumed by the
// staged emit commands.
package ast

import (
	"fmt"

	"github.com/Anaizing/ui-transformer/parser"
	"github.com/Anaizing/ui-transformer/schema"
)

// Build converts a parse tree into a ComponentSpec, deriving the
// attribute names, class identity, and base-kind bindings. It checks
// structural completeness only; invariant checking belongs to the
// validation package.
func Build(doc *parser.Document) (*schema.ComponentSpec, error) {
	if doc.Name == "" {
		return nil, &schema.BuildError{Component: "(unnamed)", Field: "name", Reason: "missing"}
	}
	if doc.BaseKind == "" {
		return nil, &schema.BuildError{Component: doc.Name, Field: "baseKind", Reason: "missing"}
	}

	kind, err := schema.LookupBaseKind(doc.BaseKind)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", doc.Name, err)
	}

	spec := &schema.ComponentSpec{
		Name:      doc.Name,
		BaseKind:  kind.Name,
		ClassName: schema.ClassName(doc.Name),
		RootClass: schema.RootClass(doc.Name),
		Tag:       kind.Tag,
		CSBase:    kind.CSBase,
	}

	for i, p := range doc.Props {
		if p.Name == "" {
			return nil, &schema.BuildError{Component: doc.Name, Field: fmt.Sprintf("props[%d].name", i), Reason: "missing"}
		}
		pt, ok := propType(p.Type)
		if !ok {
			return nil, &schema.BuildError{
				Component: doc.Name,
				Field:     fmt.Sprintf("props[%d].type", i),
				Reason:    fmt.Sprintf("unknown type %q", p.Type),
			}
		}
		def, err := defaultText(p.Default)
		if err != nil {
			return nil, &schema.BuildError{
				Component: doc.Name,
				Field:     fmt.Sprintf("props[%d].default", i),
				Reason:    err.Error(),
			}
		}
		if pt == schema.BoolType && def == "" {
			def = "false"
		}
		spec.Props = append(spec.Props, schema.PropSpec{
			Name:          p.Name,
			Type:          pt,
			AttributeName: schema.KebabCase(p.Name),
			Default:       def,
			AffectsLayout: p.AffectsLayout,
			Values:        p.Values,
		})
	}

	for i, v := range doc.Variants {
		if v.Name == "" || v.Token == "" {
			return nil, &schema.BuildError{
				Component: doc.Name,
				Field:     fmt.Sprintf("variants[%d]", i),
				Reason:    "name and token are both required",
			}
		}
		spec.Variants = append(spec.Variants, schema.VariantRule{Name: v.Name, Token: v.Token})
	}

	for i, r := range doc.StyleRules {
		if len(r.Selector) == 0 {
			return nil, &schema.BuildError{
				Component: doc.Name,
				Field:     fmt.Sprintf("styleRules[%d].selector", i),
				Reason:    "empty",
			}
		}
		rule := schema.StyleRule{Selector: r.Selector}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, schema.Declaration{
				Property: d.Key,
				Value:    d.Value,
			})
		}
		spec.StyleRules = append(spec.StyleRules, rule)
	}

	for _, lv := range doc.LayoutVariants {
		spec.LayoutVariants = append(spec.LayoutVariants, schema.LayoutVariant{
			When:           lv.When,
			FlexDirection:  lv.FlexDirection,
			JustifyContent: lv.JustifyContent,
		})
	}

	for _, tok := range doc.Tokens {
		spec.Tokens = append(spec.Tokens, schema.Token{Name: tok.Key, Value: tok.Value})
	}

	return spec, nil
}

func propType(t string) (schema.PropType, bool) {
	switch t {
	case "string":
		return schema.StringType, true
	case "bool":
		return schema.BoolType, true
	case "enum":
		return schema.EnumType, true
	}
	return "", false
}

// defaultText renders a raw default value to its textual form. Absent
// defaults become the empty string, matching the markup emitter's
// treatment of unset values.
func defaultText(v any) (string, error) {
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
	case int:
		return fmt.Sprintf("%d", t), nil
	case int64:
		return fmt.Sprintf("%d", t), nil
	case float64:
		return fmt.Sprintf("%v", t), nil
	default:
		return "", fmt.Errorf("unsupported default type %T", v)
	}
}
