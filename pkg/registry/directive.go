package registry

import (
	"strings"
	"unicode"
)

// Directive describes how the compiler treats matching elements.
type Directive struct {
	// Restrict is any combination of "E" (element name) and "A" (attribute).
	// Empty means "EA".
	Restrict string
	// Template replaces the element's children.
	Template string
	// Controller names a registered controller instantiated on a child scope.
	Controller string
	// ControllerAs publishes the controller on its scope under this name.
	ControllerAs string
	// BindToController copies Bindings onto the controller before it is constructed.
	BindToController bool
	// Bindings maps camelCase attribute names to "@" (interpolated text) or
	// "=" (expression evaluated on the parent scope).
	Bindings map[string]string
}

// Matches reports whether the directive applies through kind ('E' or 'A').
func (d Directive) Matches(kind rune) bool {
	if d.Restrict == "" {
		return kind == 'E' || kind == 'A'
	}
	return strings.ContainsRune(d.Restrict, kind)
}

// Normalize converts a markup name into its camelCase directive name:
// "test-directive", "data-test-directive" and "x-test:directive" all become
// "testDirective".
func Normalize(name string) string {
	for _, prefix := range []string{"x", "data"} {
		if len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) && isDelimiter(rune(name[len(prefix)])) {
			name = name[len(prefix)+1:]
			break
		}
	}

	var b strings.Builder
	upper := false
	for _, r := range name {
		switch {
		case isDelimiter(r):
			upper = b.Len() > 0
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDelimiter(r rune) bool {
	return r == '-' || r == ':' || r == '_'
}
