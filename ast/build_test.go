package ast

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Anaizing/ui-transformer/parser"
	"github.com/Anaizing/ui-transformer/schema"
)

const buttonJSON = `{
  "name": "Button",
  "baseKind": "button",
  "props": [
    {"name": "Loading", "type": "boolean", "default": false, "affectsLayout": true},
    {"name": "LoadingPosition", "type": "string", "default": ""},
    {"name": "DisableFocusRipple", "type": "boolean"}
  ],
  "variants": [
    {"name": "contained", "token": "MuiButton-contained"}
  ],
  "styleRules": [
    {"selector": ["MuiButton-root"], "declarations": {"min-width": "64px"}}
  ],
  "layoutVariants": [
    {"when": "start", "flexDirection": "row", "justifyContent": "flex-start"},
    {"when": "end", "flexDirection": "row-reverse", "justifyContent": "flex-end"},
    {"when": "", "flexDirection": "row", "justifyContent": "center"}
  ]
}`

func buildButton(t *testing.T) *schema.ComponentSpec {
	t.Helper()
	doc, err := parser.Parse([]byte(buttonJSON), parser.JSON, "Button")
	require.NoError(t, err)
	spec, err := Build(doc)
	require.NoError(t, err)
	return spec
}

func TestBuildDerivesIdentity(t *testing.T) {
	spec := buildButton(t)

	require.Equal(t, "MuiButton", spec.ClassName)
	require.Equal(t, "MuiButton-root", spec.RootClass)
	require.Equal(t, "ui:Button", spec.Tag)
	require.Equal(t, "UnityEngine.UIElements.Button", spec.CSBase)
}

func TestBuildDerivesAttributeNames(t *testing.T) {
	spec := buildButton(t)

	want := []string{"loading", "loading-position", "disable-focus-ripple"}
	require.Len(t, spec.Props, len(want))
	for i, attr := range want {
		require.Equal(t, attr, spec.Props[i].AttributeName)
	}
}

func TestBuildBoolDefaults(t *testing.T) {
	spec := buildButton(t)

	require.Equal(t, "false", spec.Props[0].Default)
	// Unset bool defaults are filled in as false.
	require.Equal(t, "false", spec.Props[2].Default)
}

func TestBuildUnknownBaseKind(t *testing.T) {
	doc, err := parser.Parse([]byte(`{"name":"Carousel","baseKind":"carousel","props":[]}`), parser.JSON, "Carousel")
	require.NoError(t, err)

	_, err = Build(doc)
	require.Error(t, err)
	require.True(t, errors.Is(err, schema.ErrUnknownBaseKind))
}

func TestBuildMissingFields(t *testing.T) {
	cases := []struct {
		src   string
		field string
	}{
		{`{"name":"X","props":[]}`, "baseKind"},
		{`{"name":"X","baseKind":"button","props":[{"type":"string"}]}`, "props[0].name"},
		{`{"name":"X","baseKind":"button","props":[{"name":"Size","type":"vector"}]}`, "props[0].type"},
		{`{"name":"X","baseKind":"button","props":[],"styleRules":[{"selector":[],"declarations":{}}]}`, "styleRules[0].selector"},
	}

	for _, tc := range cases {
		doc, err := parser.Parse([]byte(tc.src), parser.JSON, "X")
		require.NoError(t, err)

		_, err = Build(doc)
		var buildErr *schema.BuildError
		require.ErrorAs(t, err, &buildErr, "source: %s", tc.src)
		require.Equal(t, tc.field, buildErr.Field)
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	spec := buildButton(t)
	path := ArtifactPath(t.TempDir(), spec.Name)
	require.Equal(t, "button.ast.json", filepath.Base(path))

	require.NoError(t, WriteFile(spec, path))
	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, spec, loaded)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.ast.json"))
	require.ErrorIs(t, err, schema.ErrMissingAST)
}
