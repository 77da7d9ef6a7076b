package schema

import (
	"errors"
	"fmt"
)

// Error kinds shared across the pipeline. All are component-scoped:
// they fail one component's generation, never the whole batch.
var (
	// ErrUnknownBaseKind is returned when a spec declares a base kind
	// absent from the primitive registry.
	ErrUnknownBaseKind = errors.New("unknown base kind")

	// ErrMissingAST is returned by staged commands when the AST
	// artifact they consume has not been generated yet.
	ErrMissingAST = errors.New("ast artifact not found")
)

// SpecError reports a malformed or unreadable spec document, naming
// the offending field when known.
type SpecError struct {
	Component string
	Field     string
	Err       error
}

func (e *SpecError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("spec %s: field %s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("spec %s: %v", e.Component, e.Err)
}

func (e *SpecError) Unwrap() error { return e.Err }

// BuildError reports a structurally incomplete parse tree: a field the
// AST builder requires is missing or unusable.
type BuildError struct {
	Component string
	Field     string
	Reason    string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s: field %s: %s", e.Component, e.Field, e.Reason)
}

// EmitError reports that a target-syntax rule could not be satisfied
// during emission, such as an identifier colliding with a reserved
// word. The validator catches these up front; emitters keep the check
// as a final guard.
type EmitError struct {
	Component string
	Target    string
	Reason    string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit %s (%s): %s", e.Component, e.Target, e.Reason)
}
