package validation

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

// checkIdentifiers verifies that the component name and every prop
// name are valid PascalCase identifiers and usable in all three target
// syntaxes.
func (v *Validator) checkIdentifiers() {
	if !schema.ValidName(v.spec.Name) {
		v.AddError("identifier", fmt.Sprintf("component name %q is not a valid PascalCase identifier", v.spec.Name),
			nil, "Use a PascalCase name such as Button or IconButton")
	}

	for _, p := range v.spec.Props {
		if !schema.ValidName(p.Name) {
			v.AddError("identifier", fmt.Sprintf("prop %q is not a valid PascalCase identifier", p.Name),
				[]string{p.Name}, "Use PascalCase without consecutive capitals")
			continue
		}
		if targets := schema.ReservedIn(p.Name); len(targets) > 0 {
			v.AddError("identifier",
				fmt.Sprintf("prop %q collides with a reserved word in: %s", p.Name, strings.Join(targets, ", ")),
				[]string{p.Name}, "Rename the prop")
		}
	}
}

// checkAttributeNames verifies that derived attribute names are unique
// and that the kebab-case transform is reversible for every prop.
func (v *Validator) checkAttributeNames() {
	seen := make(map[string]string, len(v.spec.Props))
	for _, p := range v.spec.Props {
		if prev, dup := seen[p.AttributeName]; dup {
			v.AddError("attribute",
				fmt.Sprintf("props %q and %q collapse to the same attribute %q", prev, p.Name, p.AttributeName),
				[]string{prev, p.Name}, "Rename one of the props")
		} else {
			seen[p.AttributeName] = p.Name
		}

		if schema.PascalCase(p.AttributeName) != p.Name {
			v.AddError("attribute",
				fmt.Sprintf("attribute %q does not round-trip to prop name %q", p.AttributeName, p.Name),
				[]string{p.Name}, "Prop names must be strict PascalCase")
		}
	}
}

// checkDefaults verifies that each default value is well-typed.
func (v *Validator) checkDefaults() {
	for _, p := range v.spec.Props {
		switch p.Type {
		case schema.BoolType:
			if p.Default != "true" && p.Default != "false" {
				v.AddError("default",
					fmt.Sprintf("prop %q: bool default must be true or false, got %q", p.Name, p.Default),
					[]string{p.Name}, "")
			}
		case schema.EnumType:
			if len(p.Values) > 0 && p.Default != "" && !contains(p.Values, p.Default) {
				v.AddError("default",
					fmt.Sprintf("prop %q: default %q is not one of %v", p.Name, p.Default, p.Values),
					[]string{p.Name}, "Declare the value in values[] or change the default")
			}
		case schema.StringType:
			// any text is fine
		default:
			v.AddError("default", fmt.Sprintf("prop %q has unknown type %q", p.Name, p.Type),
				[]string{p.Name}, "")
		}
	}
}

// checkSelectors verifies that every style rule references only the
// component's root class and declared variant tokens, and that no
// variant token shadows a USS pseudo-state keyword.
func (v *Validator) checkSelectors() {
	for _, variant := range v.spec.Variants {
		if schema.USSPseudoState(variant.Token) {
			v.AddWarning("selector",
				fmt.Sprintf("variant token %q matches a USS pseudo-state keyword", variant.Token),
				[]string{variant.Name}, "Prefix the token, e.g. is-"+variant.Token)
		}
	}

	for i, rule := range v.spec.StyleRules {
		loc := fmt.Sprintf("styleRules[%d]", i)
		rootSeen := false
		for _, token := range rule.Selector {
			switch {
			case token == v.spec.RootClass:
				rootSeen = true
			case v.spec.VariantToken(token):
				// declared variant, fine
			default:
				v.AddError("selector",
					fmt.Sprintf("%s references undeclared token %q", loc, token),
					[]string{loc}, "Declare a matching variant or use the root class")
			}
		}
		if !rootSeen {
			v.AddError("selector",
				fmt.Sprintf("%s does not include the root class %q", loc, v.spec.RootClass),
				[]string{loc}, "Selectors are additive on the root class")
		}
		if len(rule.Declarations) == 0 {
			v.AddWarning("selector", fmt.Sprintf("%s has no declarations", loc), []string{loc}, "")
		}
	}
}

// checkLayoutVariants verifies the conditional-layout table: unique
// match values, a default row when the table drives a layout prop, and
// a companion positional prop to branch on.
func (v *Validator) checkLayoutVariants() {
	layoutProp := v.spec.LayoutProp()

	if len(v.spec.LayoutVariants) == 0 {
		if layoutProp != nil {
			v.AddWarning("layout",
				fmt.Sprintf("prop %q affects layout but no layoutVariants table is declared", layoutProp.Name),
				[]string{layoutProp.Name}, "Declare a layoutVariants table with a default row")
		}
		return
	}

	if layoutProp == nil {
		v.AddError("layout", "layoutVariants declared but no layout-affecting bool prop exists",
			nil, "Mark the driving bool prop with affectsLayout")
		return
	}

	seen := make(map[string]bool, len(v.spec.LayoutVariants))
	hasDefault := false
	for _, lv := range v.spec.LayoutVariants {
		if seen[lv.When] {
			v.AddError("layout", fmt.Sprintf("duplicate layoutVariants row for value %q", lv.When),
				nil, "Keep one row per value")
		}
		seen[lv.When] = true
		if lv.When == "" {
			hasDefault = true
		}
		if lv.FlexDirection == "" || lv.JustifyContent == "" {
			v.AddError("layout",
				fmt.Sprintf("layoutVariants row %q is missing an arrangement", lv.When), nil, "")
		}
	}
	if !hasDefault {
		v.AddError("layout", `layoutVariants table has no default row (when: "")`,
			nil, "Add a row with an empty when value")
	}

	position := v.spec.PositionProp()
	if position == nil {
		v.AddError("layout",
			fmt.Sprintf("layoutVariants requires a companion %sPosition prop to branch on", layoutProp.Name),
			[]string{layoutProp.Name}, "Declare the positional prop")
		return
	}

	// Enum-constrained positions that cannot reach a declared row are
	// author mistakes worth flagging; unrecognized values at runtime
	// still fall back to the default arrangement.
	for _, val := range position.Values {
		if val != "" && !seen[val] {
			v.AddWarning("layout",
				fmt.Sprintf("position value %q has no layoutVariants row and will use the default arrangement", val),
				[]string{position.Name}, "")
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
