package validation

import (
	"strings"
	"testing"

	"github.com/Anaizing/ui-transformer/schema"
)

func validButton() *schema.ComponentSpec {
	return &schema.ComponentSpec{
		Name:      "Button",
		BaseKind:  "button",
		ClassName: "MuiButton",
		RootClass: "MuiButton-root",
		Tag:       "ui:Button",
		CSBase:    "UnityEngine.UIElements.Button",
		Props: []schema.PropSpec{
			{Name: "Loading", Type: schema.BoolType, AttributeName: "loading", Default: "false", AffectsLayout: true},
			{Name: "LoadingPosition", Type: schema.StringType, AttributeName: "loading-position", Default: ""},
			{Name: "Variant", Type: schema.EnumType, AttributeName: "variant", Default: "text",
				Values: []string{"text", "contained", "outlined"}},
		},
		Variants: []schema.VariantRule{
			{Name: "contained", Token: "MuiButton-contained"},
		},
		StyleRules: []schema.StyleRule{
			{Selector: []string{"MuiButton-root"},
				Declarations: []schema.Declaration{{Property: "min-width", Value: "64px"}}},
			{Selector: []string{"MuiButton-root", "MuiButton-contained"},
				Declarations: []schema.Declaration{{Property: "color", Value: "#fff"}}},
		},
		LayoutVariants: []schema.LayoutVariant{
			{When: "start", FlexDirection: "row", JustifyContent: "flex-start"},
			{When: "end", FlexDirection: "row-reverse", JustifyContent: "flex-end"},
			{When: "", FlexDirection: "row", JustifyContent: "center"},
		},
	}
}

func TestValidSpecPasses(t *testing.T) {
	spec := validButton()
	returned, err := Validate(spec)
	if err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}
	if returned != spec {
		t.Error("Validate must return the unchanged spec")
	}
}

func TestValidationIsExhaustive(t *testing.T) {
	spec := validButton()
	// Introduce three independent violations.
	spec.Props[1].AttributeName = "loading" // duplicate attribute + round-trip failure
	spec.StyleRules[1].Selector = []string{"MuiButton-root", "MuiButton-outlined"}
	spec.Props[2].Default = "solid"

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) < 3 {
		t.Errorf("expected all violations reported, got %d: %+v", len(result.Errors), result.Errors)
	}

	categories := map[string]bool{}
	for _, issue := range result.Errors {
		categories[issue.Category] = true
	}
	for _, want := range []string{"attribute", "selector", "default"} {
		if !categories[want] {
			t.Errorf("missing %s error in %+v", want, result.Errors)
		}
	}
}

func TestSelectorMustIncludeRoot(t *testing.T) {
	spec := validButton()
	spec.StyleRules = append(spec.StyleRules, schema.StyleRule{
		Selector:     []string{"MuiButton-contained"},
		Declarations: []schema.Declaration{{Property: "color", Value: "red"}},
	})

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected selector error")
	}
}

func TestReservedIdentifierRejected(t *testing.T) {
	spec := validButton()
	spec.Props = append(spec.Props, schema.PropSpec{
		Name: "Class", Type: schema.StringType, AttributeName: "class", Default: "",
	})

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected identifier error for reserved name")
	}
}

func TestStateNamedPropsAccepted(t *testing.T) {
	spec := validButton()
	spec.Props = append(spec.Props,
		schema.PropSpec{Name: "Disabled", Type: schema.BoolType, AttributeName: "disabled", Default: "false"},
		schema.PropSpec{Name: "Checked", Type: schema.BoolType, AttributeName: "checked", Default: "false"},
	)

	if _, err := Validate(spec); err != nil {
		t.Fatalf("state-named props must validate: %v", err)
	}
}

func TestPseudoStateVariantTokenWarns(t *testing.T) {
	spec := validButton()
	spec.Variants = append(spec.Variants, schema.VariantRule{Name: "hover", Token: "hover"})

	result := NewValidator(spec).Validate()
	if !result.Valid {
		t.Fatalf("pseudo-state token must warn, not fail: %+v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if w.Category == "selector" && strings.Contains(w.Message, `"hover"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected pseudo-state warning, got %+v", result.Warnings)
	}
}

func TestBoolDefaultTyping(t *testing.T) {
	spec := validButton()
	spec.Props[0].Default = "yes"

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected default typing error")
	}
}

func TestLayoutTableNeedsDefaultRow(t *testing.T) {
	spec := validButton()
	spec.LayoutVariants = spec.LayoutVariants[:2] // drop the "" row

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected layout error for missing default row")
	}
}

func TestLayoutTableNeedsPositionProp(t *testing.T) {
	spec := validButton()
	spec.Props = spec.Props[:1] // drop LoadingPosition (and Variant)

	result := NewValidator(spec).Validate()
	if result.Valid {
		t.Fatal("expected layout error for missing companion prop")
	}
}

func TestUnmatchedPositionValueWarns(t *testing.T) {
	spec := validButton()
	spec.Props[1].Type = schema.EnumType
	spec.Props[1].Values = []string{"start", "end", "top"}

	result := NewValidator(spec).Validate()
	if !result.Valid {
		t.Fatalf("unmatched position value must warn, not fail: %+v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if w.Category == "layout" && strings.Contains(w.Message, `"top"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning for unmatched value, got %+v", result.Warnings)
	}
}

func TestResultErrorListsEveryIssue(t *testing.T) {
	spec := validButton()
	spec.Props[0].Default = "yes"
	spec.StyleRules[0].Selector = []string{"MuiButton-root", "nope"}

	_, err := Validate(spec)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "default") || !strings.Contains(msg, "selector") {
		t.Errorf("error message should list all categories: %s", msg)
	}
}
