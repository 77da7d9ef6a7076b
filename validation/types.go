// Package validation checks a built ComponentSpec against the model
// invariants before any emission happens. Checks are exhaustive: one
// run reports every violation instead of stopping at the first, so a
// spec author fixes a component in one pass.
package validation

import (
	"fmt"
	"strings"

	"github.com/Anaizing/ui-transformer/schema"
)

// Issue represents a single validation finding.
type Issue struct {
	Severity   string   `json:"severity"` // "error" or "warning"
	Category   string   `json:"category"` // "selector", "attribute", "default", "identifier", "layout"
	Message    string   `json:"message"`
	Location   []string `json:"location,omitempty"` // affected props/rules
	Suggestion string   `json:"suggestion,omitempty"`
}

// Summary gives an overview of what was checked.
type Summary struct {
	Props      int `json:"props"`
	Variants   int `json:"variants"`
	StyleRules int `json:"styleRules"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// Result is the outcome of validating one component. It satisfies
// error when invalid so callers can thread it through the pipeline's
// error path without losing the per-issue detail.
type Result struct {
	Component string  `json:"component"`
	Valid     bool    `json:"valid"`
	Errors    []Issue `json:"errors,omitempty"`
	Warnings  []Issue `json:"warnings,omitempty"`
	Summary   Summary `json:"summary"`
}

// Error renders every violated invariant, one per line.
func (r *Result) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validate %s: %d error(s)", r.Component, len(r.Errors))
	for _, issue := range r.Errors {
		b.WriteString("\n  ")
		b.WriteString(issue.Category)
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

// Validator accumulates issues for one component.
type Validator struct {
	spec   *schema.ComponentSpec
	result *Result
}

// NewValidator creates a validator for a built ComponentSpec.
func NewValidator(spec *schema.ComponentSpec) *Validator {
	return &Validator{
		spec: spec,
		result: &Result{
			Component: spec.Name,
			Valid:     true,
			Summary: Summary{
				Props:      len(spec.Props),
				Variants:   len(spec.Variants),
				StyleRules: len(spec.StyleRules),
			},
		},
	}
}

// Validate runs every check and returns the collected result. The spec
// is never mutated.
func (v *Validator) Validate() *Result {
	v.checkIdentifiers()
	v.checkAttributeNames()
	v.checkDefaults()
	v.checkSelectors()
	v.checkLayoutVariants()

	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)
	return v.result
}

// Validate is the package-level convenience: it returns the unchanged
// spec on success, or the Result as an error when any invariant is
// violated.
func Validate(spec *schema.ComponentSpec) (*schema.ComponentSpec, error) {
	result := NewValidator(spec).Validate()
	if !result.Valid {
		return nil, result
	}
	return spec, nil
}

// AddError records a violated invariant.
func (v *Validator) AddError(category, message string, location []string, suggestion string) {
	v.result.Valid = false
	v.result.Errors = append(v.result.Errors, Issue{
		Severity:   "error",
		Category:   category,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// AddWarning records a finding that does not block emission.
func (v *Validator) AddWarning(category, message string, location []string, suggestion string) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity:   "warning",
		Category:   category,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}
