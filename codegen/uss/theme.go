package uss

import "github.com/Anaizing/ui-transformer/schema"

// defaultTheme is the built-in Material design-token set, emitted when
// a spec declares no tokens of its own. Values are opaque constants
// passed through to the stylesheet; the generator never computes with
// them.
var defaultTheme = []schema.Token{
	{Name: "primary-color", Value: "#1976d2"},
	{Name: "secondary-color", Value: "#9c27b0"},
	{Name: "error-color", Value: "#d32f2f"},
	{Name: "info-color", Value: "#0288d1"},
	{Name: "success-color", Value: "#2e7d32"},
	{Name: "warning-color", Value: "#ed6c02"},
	{Name: "text-color-light", Value: "#ffffff"},
	{Name: "text-color-dark", Value: "rgba(0, 0, 0, 0.87)"},
	{Name: "disabled-opacity", Value: "0.38"},
	{Name: "spacing-1", Value: "4px"},
	{Name: "spacing-2", Value: "8px"},
	{Name: "spacing-3", Value: "12px"},
	{Name: "spacing-4", Value: "16px"},
	{Name: "font-size-small", Value: "13px"},
	{Name: "font-size-medium", Value: "14px"},
	{Name: "font-size-large", Value: "15px"},
}
