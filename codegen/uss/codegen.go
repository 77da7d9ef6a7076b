// Package uss generates Unity Style Sheet artifacts from a validated
// ComponentSpec. The emitter is a structural transcription of the AST:
// no cascade resolution, no specificity math, no deduplication of
// rules that happen to share declarations.
package uss

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

// Generate produces the stylesheet text for one component.
func Generate(spec *schema.ComponentSpec) (string, error) {
	g := &generator{spec: spec}
	return g.generate(), nil
}

// Filename returns the artifact name for a component.
func Filename(name string) string {
	return strings.ToLower(name) + ".uss"
}

type generator struct {
	spec *schema.ComponentSpec
	b    strings.Builder
}

func (g *generator) generate() string {
	g.tokenBlock()

	fmt.Fprintf(&g.b, "/* USS rules for %s */\n\n", g.spec.Name)

	g.baseRule()
	g.compoundRules()

	return g.b.String()
}

// tokenBlock emits the shared design constants once per file, in
// declared order.
func (g *generator) tokenBlock() {
	tokens := g.spec.Tokens
	if len(tokens) == 0 {
		tokens = defaultTheme
	}

	g.b.WriteString(":root {\n")
	for _, tok := range tokens {
		fmt.Fprintf(&g.b, "    --%s: %s;\n", tok.Name, tok.Value)
	}
	g.b.WriteString("}\n\n")
}

// baseRule collects every rule whose selector is exactly the root
// class into one block, keeping source declaration order.
func (g *generator) baseRule() {
	var decls []schema.Declaration
	for _, rule := range g.spec.StyleRules {
		if len(rule.Selector) == 1 && rule.Selector[0] == g.spec.RootClass {
			decls = append(decls, rule.Declarations...)
		}
	}
	if len(decls) == 0 {
		return
	}

	fmt.Fprintf(&g.b, ".%s {\n", g.spec.RootClass)
	for _, d := range decls {
		fmt.Fprintf(&g.b, "    %s: %s;\n", d.Property, d.Value)
	}
	g.b.WriteString("}\n\n")
}

// compoundRules emits one block per compound-selector source rule.
// Identical selectors are intentionally not merged: each output block
// stays traceable to exactly one spec rule.
func (g *generator) compoundRules() {
	for _, rule := range g.spec.StyleRules {
		if len(rule.Selector) == 1 && rule.Selector[0] == g.spec.RootClass {
			continue
		}

		g.b.WriteString(selectorText(rule.Selector))
		g.b.WriteString(" {\n")
		for _, d := range rule.Declarations {
			fmt.Fprintf(&g.b, "    %s: %s;\n", d.Property, d.Value)
		}
		g.b.WriteString("}\n\n")
	}
}

// selectorText renders class tokens as a compound class selector:
// {a, b} -> ".a.b". Composition is purely additive.
func selectorText(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteByte('.')
		b.WriteString(t)
	}
	return b.String()
}
