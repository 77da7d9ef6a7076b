// Package templates provides built-in component spec documents for
// scaffolding. Each template is a complete, valid spec a user can
// generate immediately or edit into their own component.
package templates

import (
	"fmt"
	"sort"
)

// Template is one built-in component spec.
type Template interface {
	Name() string
	Description() string

	// Source returns the JSON spec document.
	Source() string
}

// Registry holds all available templates.
var Registry = map[string]Template{
	"button": &ButtonTemplate{},
	"label":  &LabelTemplate{},
	"card":   &CardTemplate{},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %v)", name, List())
	}
	return t, nil
}

// List returns template names in sorted order.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
