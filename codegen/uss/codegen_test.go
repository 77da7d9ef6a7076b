package uss

import (
	"strings"
	"testing"

	"github.com/Anaizing/ui-transformer/schema"
)

func buttonSpec() *schema.ComponentSpec {
	return &schema.ComponentSpec{
		Name:      "Button",
		RootClass: "MuiButton-root",
		Variants: []schema.VariantRule{
			{Name: "contained", Token: "MuiButton-contained"},
			{Name: "sizeSmall", Token: "MuiButton-sizeSmall"},
		},
		StyleRules: []schema.StyleRule{
			{Selector: []string{"MuiButton-root"}, Declarations: []schema.Declaration{
				{Property: "min-width", Value: "64px"},
				{Property: "border-radius", Value: "4px"},
			}},
			{Selector: []string{"MuiButton-root"}, Declarations: []schema.Declaration{
				{Property: "flex-direction", Value: "row"},
			}},
			{Selector: []string{"MuiButton-root", "MuiButton-contained"}, Declarations: []schema.Declaration{
				{Property: "background-color", Value: "var(--primary-color)"},
				{Property: "color", Value: "var(--text-color-light)"},
			}},
			{Selector: []string{"MuiButton-root", "MuiButton-sizeSmall"}, Declarations: []schema.Declaration{
				{Property: "padding", Value: "var(--spacing-1) var(--spacing-2)"},
			}},
		},
	}
}

func TestGenerateTokenBlock(t *testing.T) {
	out, err := Generate(buttonSpec())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.HasPrefix(out, ":root {\n") {
		t.Error("output must start with the token block")
	}
	if !strings.Contains(out, "--primary-color: #1976d2;") {
		t.Error("default theme tokens missing")
	}
	if strings.Count(out, ":root {") != 1 {
		t.Error("token block must appear exactly once")
	}
}

func TestGenerateDeclaredTokensOverrideTheme(t *testing.T) {
	spec := buttonSpec()
	spec.Tokens = []schema.Token{{Name: "accent", Value: "#ff0000"}}

	out, err := Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "--accent: #ff0000;") {
		t.Error("declared token missing")
	}
	if strings.Contains(out, "--primary-color") {
		t.Error("default theme must not be emitted when tokens are declared")
	}
}

func TestGenerateBaseRuleMergesRootRules(t *testing.T) {
	out, err := Generate(buttonSpec())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if strings.Count(out, ".MuiButton-root {") != 1 {
		t.Error("root-only rules must fold into a single base block")
	}
	base := out[strings.Index(out, ".MuiButton-root {"):]
	base = base[:strings.Index(base, "}")]
	for _, decl := range []string{"min-width: 64px;", "border-radius: 4px;", "flex-direction: row;"} {
		if !strings.Contains(base, decl) {
			t.Errorf("base block missing %q", decl)
		}
	}
	// Declaration order follows the spec.
	if strings.Index(base, "min-width") > strings.Index(base, "border-radius") {
		t.Error("declaration order lost in base block")
	}
}

func TestGenerateCompoundSelectors(t *testing.T) {
	out, err := Generate(buttonSpec())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.Contains(out, ".MuiButton-root.MuiButton-contained {") {
		t.Error("compound selector missing")
	}
	if !strings.Contains(out, ".MuiButton-root.MuiButton-sizeSmall {") {
		t.Error("compound selector missing")
	}
}

func TestGenerateKeepsDuplicateCompoundBlocks(t *testing.T) {
	spec := buttonSpec()
	spec.StyleRules = append(spec.StyleRules, schema.StyleRule{
		Selector:     []string{"MuiButton-root", "MuiButton-contained"},
		Declarations: []schema.Declaration{{Property: "border-width", Value: "0"}},
	})

	out, err := Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Count(out, ".MuiButton-root.MuiButton-contained {") != 2 {
		t.Error("duplicate-selector source rules must stay separate blocks")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _ := Generate(buttonSpec())
	b, _ := Generate(buttonSpec())
	if a != b {
		t.Error("regeneration must be byte-identical")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Button"); got != "button.uss" {
		t.Errorf("Filename = %q", got)
	}
}
