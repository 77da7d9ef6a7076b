package templates

// CardTemplate is a container surface with elevation variants.
type CardTemplate struct{}

func (t *CardTemplate) Name() string { return "card" }

func (t *CardTemplate) Description() string {
	return "Card surface container with elevation variants"
}

func (t *CardTemplate) Source() string {
	return `{
  "name": "Card",
  "baseKind": "container",
  "props": [
    {"name": "Raised", "type": "boolean", "default": false},
    {"name": "Square", "type": "boolean", "default": false}
  ],
  "variants": [
    {"name": "raised", "token": "MuiCard-raised"},
    {"name": "square", "token": "MuiCard-square"}
  ],
  "styleRules": [
    {"selector": ["MuiCard-root"], "declarations": {
      "background-color": "var(--text-color-light)",
      "border-radius": "4px",
      "padding": "var(--spacing-4)"
    }},
    {"selector": ["MuiCard-root", "MuiCard-raised"], "declarations": {
      "shadow-color": "rgba(0, 0, 0, 0.2)",
      "shadow-offset": "0px 4px",
      "shadow-blur": "6px"
    }},
    {"selector": ["MuiCard-root", "MuiCard-square"], "declarations": {
      "border-radius": "0px"
    }}
  ]
}
`
}
