package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/Anaizing/ui-transformer/schema"
)

const buttonJSON = `{
  "name": "Button",
  "baseKind": "button",
  "tokens": {"spacing-2": "8px", "primary-color": "#1976d2"},
  "props": [
    {"name": "Loading", "type": "boolean", "default": false, "affectsLayout": true},
    {"name": "LoadingPosition", "type": "string", "default": ""}
  ],
  "variants": [
    {"name": "contained", "token": "MuiButton-contained"}
  ],
  "styleRules": [
    {"selector": ["MuiButton-root"], "declarations": {"padding": "$spacing-2", "color": "$primary-color"}}
  ]
}`

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(buttonJSON), JSON, "Button")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Name != "Button" || doc.BaseKind != "button" {
		t.Errorf("unexpected identity: %q/%q", doc.Name, doc.BaseKind)
	}
	if len(doc.Props) != 2 {
		t.Fatalf("expected 2 props, got %d", len(doc.Props))
	}
	if doc.Props[0].Type != "bool" {
		t.Errorf("boolean alias not folded, got %q", doc.Props[0].Type)
	}
	if doc.Props[0].Default != false {
		t.Errorf("bool default lost: %v", doc.Props[0].Default)
	}
}

func TestParsePreservesDeclarationOrder(t *testing.T) {
	doc, err := Parse([]byte(buttonJSON), JSON, "Button")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	decls := doc.StyleRules[0].Declarations
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Key != "padding" || decls[1].Key != "color" {
		t.Errorf("declaration order lost: %v", decls)
	}
}

func TestParseResolvesTokenRefs(t *testing.T) {
	doc, err := Parse([]byte(buttonJSON), JSON, "Button")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := doc.StyleRules[0].Declarations[0].Value; got != "var(--spacing-2)" {
		t.Errorf("token ref not resolved: %q", got)
	}
}

func TestParseUnknownTokenRef(t *testing.T) {
	bad := `{"name":"X","baseKind":"button","props":[],
	  "styleRules":[{"selector":["MuiX-root"],"declarations":{"padding":"$nope"}}]}`

	_, err := Parse([]byte(bad), JSON, "X")
	if err == nil {
		t.Fatal("expected error for undeclared token reference")
	}
	var specErr *schema.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected SpecError, got %T", err)
	}
	if specErr.Field != "styleRules" {
		t.Errorf("expected styleRules field, got %q", specErr.Field)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
name: Chip
baseKind: container
props:
  - name: Clickable
    type: boolean
    default: false
styleRules:
  - selector: [MuiChip-root]
    declarations:
      border-radius: 16px
      padding: 4px
`
	doc, err := Parse([]byte(src), YAML, "Chip")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if doc.Name != "Chip" {
		t.Errorf("name = %q", doc.Name)
	}
	decls := doc.StyleRules[0].Declarations
	if decls[0].Key != "border-radius" || decls[1].Key != "padding" {
		t.Errorf("yaml declaration order lost: %v", decls)
	}
}

func TestParseYAMLRejectsNestedValues(t *testing.T) {
	src := `
name: Chip
baseKind: container
props: []
styleRules:
  - selector: [MuiChip-root]
    declarations:
      padding:
        top: 4px
`
	_, err := Parse([]byte(src), YAML, "Chip")
	if err == nil {
		t.Fatal("expected error for nested declaration value")
	}
	if !strings.Contains(err.Error(), "unsupported value type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"name": `), JSON, "Broken")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var specErr *schema.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected SpecError, got %T", err)
	}
}

func TestSelectorDotTrimming(t *testing.T) {
	src := `{"name":"Button","baseKind":"button","props":[],
	  "styleRules":[{"selector":[" .MuiButton-root "],"declarations":{"color":"red"}}]}`
	doc, err := Parse([]byte(src), JSON, "Button")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.StyleRules[0].Selector[0]; got != "MuiButton-root" {
		t.Errorf("selector not normalized: %q", got)
	}
}
