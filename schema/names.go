package schema

import (
	"strings"
	"unicode"
)

// KebabCase converts a PascalCase prop name to its kebab-case markup
// attribute name: a hyphen is inserted before each internal uppercase
// letter, then the whole string is lowercased.
// "DisableFocusRipple" -> "disable-focus-ripple".
//
// The transform is reversible for valid prop names (PascalCase, ASCII
// letters and digits, no consecutive uppercase runs); PascalCase is
// its inverse.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PascalCase converts a kebab-case attribute name back to PascalCase:
// each hyphen-separated segment is capitalized and the hyphens are
// dropped. It is the inverse of KebabCase.
// "disable-focus-ripple" -> "DisableFocusRipple".
func PascalCase(attr string) string {
	var b strings.Builder
	b.Grow(len(attr))
	upper := true
	for _, r := range attr {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidName reports whether name is an acceptable PascalCase
// identifier: a leading uppercase ASCII letter followed by ASCII
// letters and digits, with no consecutive uppercase letters (which
// would make the kebab transform irreversible).
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	prevUpper := false
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			if prevUpper {
				return false
			}
			prevUpper = true
		case r >= 'a' && r <= 'z':
			prevUpper = false
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
			prevUpper = false
		default:
			return false
		}
		if i == 0 && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// ClassName derives the component's class identity from its name.
func ClassName(name string) string {
	return "Mui" + name
}

// RootClass derives the root style class from the component name.
func RootClass(name string) string {
	return "Mui" + name + "-root"
}
