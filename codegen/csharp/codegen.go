// Package csharp generates the typed binding class for a component:
// change-guarded properties, the UXML factory/traits attribute-bag
// adapter, and the table-driven conditional-layout hook.
package csharp

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

const namespace = "YourUnityProject.UI.MaterialUI"

// Generate produces the C# binding class source for one component.
func Generate(spec *schema.ComponentSpec) (string, error) {
	g := &generator{spec: spec}
	if err := g.checkIdentifiers(); err != nil {
		return "", err
	}
	return g.generate(), nil
}

// Filename returns the artifact name for a component.
func Filename(name string) string {
	return "Mui" + name + ".cs"
}

type generator struct {
	spec *schema.ComponentSpec
	b    strings.Builder
}

// checkIdentifiers is the emitter's final guard against reserved-word
// collisions. The validator reports these up front with better
// messages; hitting this path means emission was attempted on an
// unvalidated spec.
func (g *generator) checkIdentifiers() error {
	for _, p := range g.spec.Props {
		if targets := schema.ReservedIn(p.Name); len(targets) > 0 {
			return &schema.EmitError{
				Component: g.spec.Name,
				Target:    "csharp",
				Reason:    fmt.Sprintf("prop %q is a reserved identifier", p.Name),
			}
		}
	}
	return nil
}

func (g *generator) generate() string {
	g.line(0, "using UnityEngine;")
	g.line(0, "using UnityEngine.UIElements;")
	g.line(0, "using System.Collections.Generic;")
	g.line(0, "")
	g.line(0, "namespace "+namespace)
	g.line(0, "{")

	g.classHeader()
	g.childFields()
	g.constructor()
	g.panelCallbacks()
	g.properties()
	g.layoutHook()
	g.uxmlFactory()
	g.uxmlTraits()

	g.line(1, "}")
	g.line(0, "}")
	return g.b.String()
}

func (g *generator) classHeader() {
	g.line(1, fmt.Sprintf("public class %s : %s", g.spec.ClassName, g.spec.CSBase))
	g.line(1, "{")
	g.line(2, "// USS class name for this component")
	g.line(2, fmt.Sprintf("public new static readonly string ussClassName = %q;", g.spec.RootClass))
	g.line(0, "")
}

func (g *generator) childFields() {
	if !g.hasLayoutTable() {
		return
	}
	g.line(2, "private VisualElement _loadingSpinner;")
	g.line(2, "private Label _innerTextLabel;")
	g.line(0, "")
}

func (g *generator) constructor() {
	g.line(2, fmt.Sprintf("public %s()", g.spec.ClassName))
	g.line(2, "{")
	g.line(3, "AddToClassList(ussClassName);")
	if g.hasLayoutTable() {
		g.line(3, "RegisterCallback<AttachToPanelEvent>(OnAttachToPanel);")
		g.line(3, "RegisterCallback<DetachFromPanelEvent>(OnDetachFromPanel);")
	}
	g.line(2, "}")
	g.line(0, "")
}

func (g *generator) panelCallbacks() {
	if !g.hasLayoutTable() {
		return
	}
	g.line(2, "private void OnAttachToPanel(AttachToPanelEvent evt)")
	g.line(2, "{")
	g.line(3, `_loadingSpinner = this.Q<VisualElement>("loading-spinner");`)
	g.line(3, `_innerTextLabel = this.Q<Label>("inner-text-label");`)
	g.line(3, "UpdateLayout();")
	g.line(2, "}")
	g.line(0, "")
	g.line(2, "private void OnDetachFromPanel(DetachFromPanelEvent evt)")
	g.line(2, "{")
	g.line(3, "_loadingSpinner = null;")
	g.line(3, "_innerTextLabel = null;")
	g.line(2, "}")
	g.line(0, "")
}

// properties emits one backing field and one change-guarded property
// per prop, all from the same accessor template: writing the current
// value is a no-op; a new value updates the cache and, for
// layout-affecting props, invokes the layout hook.
func (g *generator) properties() {
	for _, p := range g.spec.Props {
		field := fieldName(p.Name)
		csType := csTypeOf(p.Type)

		g.line(2, fmt.Sprintf("private %s %s%s;", csType, field, fieldInitializer(p)))
		g.line(2, fmt.Sprintf("public %s %s", csType, p.Name))
		g.line(2, "{")
		g.line(3, fmt.Sprintf("get => %s;", field))
		g.line(3, "set")
		g.line(3, "{")
		g.line(4, fmt.Sprintf("if (%s == value) return;", field))
		g.line(4, fmt.Sprintf("%s = value;", field))
		if p.AffectsLayout && g.hasLayoutTable() {
			g.line(4, "UpdateLayout();")
		}
		g.line(3, "}")
		g.line(2, "}")
		g.line(0, "")
	}
}

// layoutHook emits UpdateLayout from the declared layout-variants
// table: one switch case per row keyed on the companion positional
// prop, the empty-match row doubling as both the fallback arm and the
// arrangement restored when the driving prop turns off.
func (g *generator) layoutHook() {
	if !g.hasLayoutTable() {
		return
	}
	driver := g.spec.LayoutProp()
	position := g.spec.PositionProp()
	def := g.spec.DefaultLayout()

	g.line(2, "private void UpdateLayout()")
	g.line(2, "{")
	g.line(3, "if (_loadingSpinner == null || _innerTextLabel == null) return;")
	g.line(0, "")
	g.line(3, fmt.Sprintf("if (%s)", driver.Name))
	g.line(3, "{")
	g.line(4, "_loadingSpinner.style.display = DisplayStyle.Flex;")
	g.line(4, "_innerTextLabel.style.display = DisplayStyle.None;")
	g.line(4, fmt.Sprintf("switch (%s)", position.Name))
	g.line(4, "{")
	for _, row := range g.spec.LayoutVariants {
		if row.When == "" {
			continue
		}
		g.line(5, fmt.Sprintf("case %q:", row.When))
		g.arrangement(6, row)
		g.line(6, "break;")
	}
	g.line(5, "default:")
	g.arrangement(6, *def)
	g.line(6, "break;")
	g.line(4, "}")
	g.line(3, "}")
	g.line(3, "else")
	g.line(3, "{")
	g.line(4, "_loadingSpinner.style.display = DisplayStyle.None;")
	g.line(4, "_innerTextLabel.style.display = DisplayStyle.Flex;")
	g.arrangement(4, *def)
	g.line(3, "}")
	g.line(2, "}")
	g.line(0, "")
}

func (g *generator) arrangement(depth int, row schema.LayoutVariant) {
	g.line(depth, fmt.Sprintf("style.flexDirection = FlexDirection.%s;", schema.PascalCase(row.FlexDirection)))
	g.line(depth, fmt.Sprintf("style.justifyContent = JustifyContent.%s;", schema.PascalCase(row.JustifyContent)))
}

func (g *generator) uxmlFactory() {
	g.line(2, fmt.Sprintf("public new class UxmlFactory : UxmlFactory<%s, UxmlTraits> {}", g.spec.ClassName))
	g.line(0, "")
}

// uxmlTraits emits the attribute-bag adapter. The attribute schema is
// materialized from the AST: one declared attribute per prop with its
// kebab-case name, typed reader, and spec default; Init assigns each
// property from the bag in prop order.
func (g *generator) uxmlTraits() {
	g.line(2, fmt.Sprintf("public new class UxmlTraits : %s.UxmlTraits", g.spec.CSBase))
	g.line(2, "{")

	for _, p := range g.spec.Props {
		g.line(3, fmt.Sprintf("private %s %s = new %s { name = %q, defaultValue = %s };",
			attrType(p.Type), attrFieldName(p.Name), attrType(p.Type), p.AttributeName, csLiteral(p)))
	}

	g.line(0, "")
	g.line(3, "public override void Init(VisualElement ve, IUxmlAttributes bag, CreationContext cc)")
	g.line(3, "{")
	g.line(4, "base.Init(ve, bag, cc);")
	g.line(4, fmt.Sprintf("var component = ve as %s;", g.spec.ClassName))
	g.line(4, "if (component == null) return;")
	g.line(0, "")
	for _, p := range g.spec.Props {
		g.line(4, fmt.Sprintf("component.%s = %s.GetValueFromBag(bag);", p.Name, attrFieldName(p.Name)))
	}
	g.line(3, "}")
	g.line(2, "}")
}

func (g *generator) hasLayoutTable() bool {
	return len(g.spec.LayoutVariants) > 0 &&
		g.spec.LayoutProp() != nil &&
		g.spec.PositionProp() != nil &&
		g.spec.DefaultLayout() != nil
}

func (g *generator) line(depth int, s string) {
	if s != "" {
		g.b.WriteString(strings.Repeat("    ", depth))
		g.b.WriteString(s)
	}
	g.b.WriteByte('\n')
}

func fieldName(prop string) string {
	return "_" + lowerFirst(prop)
}

func attrFieldName(prop string) string {
	return "_" + lowerFirst(prop) + "Attribute"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func csTypeOf(t schema.PropType) string {
	if t == schema.BoolType {
		return "bool"
	}
	return "string"
}

func attrType(t schema.PropType) string {
	if t == schema.BoolType {
		return "UxmlBoolAttribute"
	}
	return "UxmlStringAttribute"
}

// csLiteral renders a prop default as a C# literal.
func csLiteral(p schema.PropSpec) string {
	if p.Type == schema.BoolType {
		if p.Default == "true" {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%q", p.Default)
}

// fieldInitializer gives non-default backing-field values an explicit
// initializer so a freshly constructed component matches its markup
// defaults before the bag is read.
func fieldInitializer(p schema.PropSpec) string {
	switch p.Type {
	case schema.BoolType:
		if p.Default == "true" {
			return " = true"
		}
		return ""
	default:
		return fmt.Sprintf(" = %q", p.Default)
	}
}
