// Package schema defines the canonical component model for artifact
// generation. A ComponentSpec is the single source of truth consumed by
// the stylesheet, markup, and binding-class emitters: it is built once
// from a spec document, validated, and never mutated afterwards.
package schema

// PropType identifies the value type of a component prop.
type PropType string

const (
	// StringType holds arbitrary text.
	StringType PropType = "string"

	// BoolType holds true/false.
	BoolType PropType = "bool"

	// EnumType holds one of a declared set of string values.
	EnumType PropType = "enum"
)

// ComponentSpec is the validated in-memory representation of one
// component. RootClass, ClassName, Tag, and CSBase are derived during
// AST building and are pure functions of Name and BaseKind.
type ComponentSpec struct {
	Name     string `json:"name"`
	BaseKind string `json:"baseKind"`

	// Derived identity, computed once by the builder.
	ClassName string `json:"className"` // e.g. "MuiButton"
	RootClass string `json:"rootClass"` // e.g. "MuiButton-root"
	Tag       string `json:"tag"`       // UXML tag, e.g. "ui:Button"
	CSBase    string `json:"csBase"`    // C# base type

	Props          []PropSpec      `json:"props"`
	Variants       []VariantRule   `json:"variants,omitempty"`
	StyleRules     []StyleRule     `json:"styleRules,omitempty"`
	LayoutVariants []LayoutVariant `json:"layoutVariants,omitempty"`
	Tokens         []Token         `json:"tokens,omitempty"`
}

// PropSpec describes one typed, configurable attribute of a component.
type PropSpec struct {
	Name          string   `json:"name"`
	Type          PropType `json:"type"`
	AttributeName string   `json:"attributeName"`
	Default       string   `json:"default"`
	AffectsLayout bool     `json:"affectsLayout,omitempty"`

	// Values lists the members of an enum prop. Empty for string/bool.
	Values []string `json:"values,omitempty"`
}

// VariantRule names an optional style modifier and the class token it
// contributes to selectors. Variants are independent and combinable.
type VariantRule struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// StyleRule maps a class selector to an ordered list of declarations.
// Declarations keep spec order so regeneration is byte-identical.
type StyleRule struct {
	Selector     []string      `json:"selector"`
	Declarations []Declaration `json:"declarations"`
}

// Declaration is one style property/value pair. Values are opaque to
// the generator; they are transcribed, never interpreted.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// LayoutVariant is one row of a component's conditional-layout table:
// when the layout-affecting prop is on and the companion positional
// prop equals When, the generated class selects this arrangement. The
// row with When == "" is the default arrangement, used both for
// unrecognized values and for the reset when the prop turns off.
type LayoutVariant struct {
	When           string `json:"when"`
	FlexDirection  string `json:"flexDirection"`
	JustifyContent string `json:"justifyContent"`
}

// Token is one opaque design constant emitted into the stylesheet's
// global token block.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PropByName returns the prop with the given name, or nil.
func (c *ComponentSpec) PropByName(name string) *PropSpec {
	for i := range c.Props {
		if c.Props[i].Name == name {
			return &c.Props[i]
		}
	}
	return nil
}

// LayoutProp returns the first layout-affecting bool prop, or nil.
// This is the prop whose transitions drive the conditional-layout
// table (Loading on a button, for example).
func (c *ComponentSpec) LayoutProp() *PropSpec {
	for i := range c.Props {
		if c.Props[i].AffectsLayout && c.Props[i].Type == BoolType {
			return &c.Props[i]
		}
	}
	return nil
}

// PositionProp returns the companion positional prop for the layout
// table: the first non-bool prop whose name is the layout prop's name
// suffixed with "Position", or nil when the component has none.
func (c *ComponentSpec) PositionProp() *PropSpec {
	lp := c.LayoutProp()
	if lp == nil {
		return nil
	}
	return c.PropByName(lp.Name + "Position")
}

// DefaultLayout returns the When == "" row of the layout table, if any.
func (c *ComponentSpec) DefaultLayout() *LayoutVariant {
	for i := range c.LayoutVariants {
		if c.LayoutVariants[i].When == "" {
			return &c.LayoutVariants[i]
		}
	}
	return nil
}

// VariantToken reports whether token is contributed by a declared
// variant of this component.
func (c *ComponentSpec) VariantToken(token string) bool {
	for _, v := range c.Variants {
		if v.Token == token {
			return true
		}
	}
	return false
}
