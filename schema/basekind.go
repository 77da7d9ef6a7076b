package schema

import (
	"fmt"
	"sort"
)

// BaseKind describes a built-in UI Toolkit primitive a component can
// extend: the UXML tag it is instantiated with and the C# type the
// generated binding class derives from.
type BaseKind struct {
	Name   string
	Tag    string
	CSBase string
}

// baseKinds is the static registry of known primitives. Button-like
// and label-like kinds mirror the Material component families that map
// cleanly onto UI Toolkit; everything container-shaped falls back to
// VisualElement.
var baseKinds = map[string]BaseKind{
	"button":    {Name: "button", Tag: "ui:Button", CSBase: "UnityEngine.UIElements.Button"},
	"label":     {Name: "label", Tag: "ui:Label", CSBase: "UnityEngine.UIElements.Label"},
	"container": {Name: "container", Tag: "ui:VisualElement", CSBase: "UnityEngine.UIElements.VisualElement"},
	"toggle":    {Name: "toggle", Tag: "ui:Toggle", CSBase: "UnityEngine.UIElements.Toggle"},
	"textfield": {Name: "textfield", Tag: "ui:TextField", CSBase: "UnityEngine.UIElements.TextField"},
}

// LookupBaseKind resolves a declared base kind against the registry.
func LookupBaseKind(name string) (BaseKind, error) {
	bk, ok := baseKinds[name]
	if !ok {
		return BaseKind{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownBaseKind, name, BaseKindNames())
	}
	return bk, nil
}

// BaseKindNames returns the registered kind names in sorted order.
func BaseKindNames() []string {
	names := make([]string, 0, len(baseKinds))
	for name := range baseKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
