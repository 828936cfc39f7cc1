package match

import (
	"strings"
	"unicode"
)

// Normalize folds a name for fuzzy comparison: lower case, no '_', '-' or spaces.
// "Uint_16" and "uint16" normalize the same.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// unqualified drops a package qualifier, "time.duration" becomes "duration".
func unqualified(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}

	return s
}
