// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the input, maps runs of non-alphanumerics to single
// hyphens, and trims leading/trailing hyphens. An input with no usable
// characters yields "".
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
