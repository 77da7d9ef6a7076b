// Package uxml generates UXML markup templates from a validated
// ComponentSpec: the component's tag, its root class, and one declared
// attribute per prop in spec order.
package uxml

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

const indent = "    "

// Generate produces the markup template for one component.
func Generate(spec *schema.ComponentSpec) (string, error) {
	g := &generator{spec: spec}
	return g.generate(), nil
}

// Filename returns the artifact name for a component.
func Filename(name string) string {
	return strings.ToLower(name) + ".uxml"
}

type generator struct {
	spec *schema.ComponentSpec
	b    strings.Builder
}

func (g *generator) generate() string {
	g.b.WriteString(`<ui:UXML xmlns:ui="UnityEngine.UIElements" xmlns:uie="UnityEditor.UIElements">`)
	g.b.WriteByte('\n')

	g.root()

	g.b.WriteString("</ui:UXML>\n")
	return g.b.String()
}

func (g *generator) root() {
	g.b.WriteString(indent)
	g.b.WriteByte('<')
	g.b.WriteString(g.spec.Tag)
	fmt.Fprintf(&g.b, ` name=%q class=%q`, strings.ToLower(g.spec.Name), g.spec.RootClass)

	// One attribute per prop, in spec order. Bool defaults are the
	// canonical true/false literals; unset string defaults render "".
	for _, p := range g.spec.Props {
		fmt.Fprintf(&g.b, ` %s="%s"`, p.AttributeName, escape(p.Default))
	}

	children := g.childElements()
	if len(children) == 0 {
		g.b.WriteString(" />\n")
		return
	}

	g.b.WriteString(">\n")
	for _, child := range children {
		g.b.WriteString(indent)
		g.b.WriteString(indent)
		g.b.WriteString(child)
		g.b.WriteByte('\n')
	}
	g.b.WriteString(indent)
	fmt.Fprintf(&g.b, "</%s>\n", g.spec.Tag)
}

// childElements declares the named children the binding class queries
// on panel attach. Components with a conditional-layout table get the
// spinner/label pair; everything else stays a leaf.
func (g *generator) childElements() []string {
	if len(g.spec.LayoutVariants) == 0 {
		return nil
	}
	return []string{
		fmt.Sprintf(`<ui:VisualElement name="loading-spinner" class="%s-spinner" />`, g.spec.ClassName),
		fmt.Sprintf(`<ui:Label name="inner-text-label" text=%q />`, g.spec.Name),
	}
}

// escape renders text safe for a double-quoted XML attribute value.
func escape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
