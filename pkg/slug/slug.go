// Package slug generates URL-friendly identifiers from display names.
package slug

import (
	"strings"
	"unicode"
)

var replacements = map[rune]string{
	'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u",
	'à': "a", 'è': "e", 'ì': "i", 'ò': "o", 'ù': "u",
	'ä': "a", 'ë': "e", 'ï': "i", 'ö': "o", 'ü': "u",
	'ñ': "n", 'ç': "c",
}

// Make converts a display name into a lowercase hyphen-separated slug.
// Accented characters common in Spanish product names are transliterated.
func Make(name string) string {
	var b strings.Builder
	prevHyphen := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			prevHyphen = false
			continue
		}

		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case !prevHyphen:
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
