package templates

// LabelTemplate is the Typography component rendered as a Label.
type LabelTemplate struct{}

func (t *LabelTemplate) Name() string { return "label" }

func (t *LabelTemplate) Description() string {
	return "Typography mapped onto a text label"
}

func (t *LabelTemplate) Source() string {
	return `{
  "name": "Typography",
  "baseKind": "label",
  "props": [
    {"name": "Variant", "type": "enum", "default": "body1", "values": ["h1", "h2", "h3", "body1", "body2", "caption"]},
    {"name": "NoWrap", "type": "boolean", "default": false},
    {"name": "GutterBottom", "type": "boolean", "default": false}
  ],
  "variants": [
    {"name": "h1", "token": "MuiTypography-h1"},
    {"name": "body1", "token": "MuiTypography-body1"},
    {"name": "caption", "token": "MuiTypography-caption"}
  ],
  "styleRules": [
    {"selector": ["MuiTypography-root"], "declarations": {
      "color": "var(--text-color-dark)",
      "-unity-font-style": "normal"
    }},
    {"selector": ["MuiTypography-root", "MuiTypography-h1"], "declarations": {
      "-unity-font-size": "96px",
      "-unity-font-style": "bold"
    }},
    {"selector": ["MuiTypography-root", "MuiTypography-body1"], "declarations": {
      "-unity-font-size": "var(--font-size-medium)"
    }},
    {"selector": ["MuiTypography-root", "MuiTypography-caption"], "declarations": {
      "-unity-font-size": "var(--font-size-small)",
      "opacity": "0.6"
    }}
  ]
}
`
}
