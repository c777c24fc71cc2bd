package errno

import (
	"strings"
	"unicode"
)

// TitleCase converts an error name like EPERM or E2BIG into the identifier
// used for its constant (Eperm, E2Big). A letter that follows a non-letter
// is uppercased and every other letter is lowercased, so the result does not
// depend on locale settings. Non-letter runes pass through unchanged.
func TitleCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevLetter := false
	for _, r := range name {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
