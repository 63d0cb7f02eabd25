package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sortKeyChain strips combining marks so that "résumé" and "resume" collate
// together: decompose, drop the marks, recompose.
var sortKeyChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText prepares display text for storage and comparison:
//   - trims leading/trailing whitespace
//   - compresses multiple spaces into one
//
// Case and diacritics are preserved; see SortKey for the collation form.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SortKey derives the case- and diacritic-insensitive key a term sorts and
// matches under. Falls back to the lowercased input if the transform fails
// on malformed input.
func SortKey(text string) string {
	text = strings.ToLower(NormalizeText(text))
	folded, _, err := transform.String(sortKeyChain, text)
	if err != nil {
		return text
	}
	return folded
}
