package schema

// Reserved identifier sets per output target. A prop name surfaces as
// a markup attribute and a C# identifier, so validation rejects names
// that collapse (via the kebab/pascal transforms) onto a word either
// target claims. Variant tokens surface as class selectors and are
// checked against the USS pseudo-state keywords instead.

// csharpReserved lists C# keywords that a generated property or class
// name must not collide with.
var csharpReserved = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true,
	"break": true, "byte": true, "case": true, "catch": true,
	"char": true, "checked": true, "class": true, "const": true,
	"continue": true, "decimal": true, "default": true, "delegate": true,
	"do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true,
	"finally": true, "fixed": true, "float": true, "for": true,
	"foreach": true, "goto": true, "if": true, "implicit": true,
	"in": true, "int": true, "interface": true, "internal": true,
	"is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true,
	"out": true, "override": true, "params": true, "private": true,
	"protected": true, "public": true, "readonly": true, "ref": true,
	"return": true, "sbyte": true, "sealed": true, "short": true,
	"sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "uint": true,
	"ulong": true, "unchecked": true, "unsafe": true, "ushort": true,
	"using": true, "virtual": true, "void": true, "volatile": true,
	"while": true,
}

// uxmlReserved lists attribute names UI Toolkit claims on every
// element; declaring a prop that kebab-cases onto one of these would
// shadow the runtime's own attribute.
var uxmlReserved = map[string]bool{
	"name":       true,
	"class":      true,
	"style":      true,
	"tooltip":    true,
	"view-data-key": true,
	"focusable":  true,
	"tabindex":   true,
	"picking-mode": true,
	"usage-hints": true,
}

// ussPseudoStates lists selector tokens with special meaning in USS.
// These constrain variant tokens, which become class selectors, not
// prop names, which only ever surface as markup attributes and C#
// identifiers.
var ussPseudoStates = map[string]bool{
	"root":     true,
	"hover":    true,
	"active":   true,
	"focus":    true,
	"disabled": true,
	"checked":  true,
	"selected": true,
	"inactive": true,
}

// ReservedIn returns the names of every target syntax in which the
// given PascalCase prop name is unusable, in fixed order. Empty means
// the identifier is safe everywhere. Stylesheet tokens are not
// consulted: a prop name never appears in USS syntax, so names like
// Disabled or Checked are fine here.
func ReservedIn(name string) []string {
	var targets []string
	if uxmlReserved[KebabCase(name)] {
		targets = append(targets, "uxml")
	}
	if csharpReserved[name] || csharpReserved[lowerFirst(name)] {
		targets = append(targets, "csharp")
	}
	return targets
}

// USSPseudoState reports whether token matches a built-in USS
// pseudo-state selector keyword.
func USSPseudoState(token string) bool {
	return ussPseudoStates[token]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
