package templates

// ButtonTemplate is the Material button: variant/color/size styling,
// a disabled state, and the loading pattern with its conditional
// layout table.
type ButtonTemplate struct{}

func (t *ButtonTemplate) Name() string { return "button" }

func (t *ButtonTemplate) Description() string {
	return "Button with variants, sizes, and a loading state"
}

func (t *ButtonTemplate) Source() string {
	return `{
  "name": "Button",
  "baseKind": "button",
  "props": [
    {"name": "Variant", "type": "enum", "default": "text", "values": ["text", "contained", "outlined"]},
    {"name": "Color", "type": "enum", "default": "primary", "values": ["primary", "secondary", "error", "info", "success", "warning"]},
    {"name": "Size", "type": "enum", "default": "medium", "values": ["small", "medium", "large"]},
    {"name": "Disabled", "type": "boolean", "default": false},
    {"name": "DisableElevation", "type": "boolean", "default": false},
    {"name": "Loading", "type": "boolean", "default": false, "affectsLayout": true},
    {"name": "LoadingPosition", "type": "enum", "default": "", "values": ["start", "end", "center"]}
  ],
  "variants": [
    {"name": "contained", "token": "MuiButton-contained"},
    {"name": "outlined", "token": "MuiButton-outlined"},
    {"name": "sizeSmall", "token": "MuiButton-sizeSmall"},
    {"name": "sizeLarge", "token": "MuiButton-sizeLarge"},
    {"name": "colorSecondary", "token": "MuiButton-colorSecondary"}
  ],
  "styleRules": [
    {"selector": ["MuiButton-root"], "declarations": {
      "-unity-text-align": "middle-center",
      "border-radius": "4px",
      "flex-direction": "row",
      "align-items": "center",
      "justify-content": "center",
      "min-width": "64px",
      "min-height": "36px",
      "padding": "var(--spacing-2) var(--spacing-2)",
      "-unity-font-size": "var(--font-size-medium)",
      "color": "var(--primary-color)"
    }},
    {"selector": ["MuiButton-root", "MuiButton-contained"], "declarations": {
      "background-color": "var(--primary-color)",
      "color": "var(--text-color-light)",
      "border-width": "0px"
    }},
    {"selector": ["MuiButton-root", "MuiButton-outlined"], "declarations": {
      "background-color": "rgba(0, 0, 0, 0)",
      "border-color": "var(--primary-color)",
      "border-width": "1px"
    }},
    {"selector": ["MuiButton-root", "MuiButton-sizeSmall"], "declarations": {
      "padding": "var(--spacing-1) var(--spacing-2)",
      "-unity-font-size": "var(--font-size-small)"
    }},
    {"selector": ["MuiButton-root", "MuiButton-sizeLarge"], "declarations": {
      "padding": "var(--spacing-2) var(--spacing-3)",
      "-unity-font-size": "var(--font-size-large)"
    }},
    {"selector": ["MuiButton-root", "MuiButton-colorSecondary"], "declarations": {
      "color": "var(--secondary-color)"
    }}
  ],
  "layoutVariants": [
    {"when": "start", "flexDirection": "row", "justifyContent": "flex-start"},
    {"when": "end", "flexDirection": "row-reverse", "justifyContent": "flex-end"},
    {"when": "center", "flexDirection": "row", "justifyContent": "center"},
    {"when": "", "flexDirection": "row", "justifyContent": "center"}
  ]
}
`
}
