package launch

import "strings"

// Fallback returns b when a is empty, otherwise a.
func Fallback(a, b string) string {
	if a == "" {
		return b
	}
	return a
}

// QuoteIfSpaced wraps s in double quotes when it contains whitespace.
func QuoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
