// Package textutil provides text normalization helpers shared by the
// moderation filter and the hangman engine.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases s and strips combining accent marks, so that "Épée"
// becomes "epee". Input that cannot be transformed is returned lowercased.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// ExtractLetter folds raw input and returns the first ASCII letter a-z,
// or 0 if the input contains none.
func ExtractLetter(raw string) rune {
	for _, r := range Fold(strings.TrimSpace(raw)) {
		if r >= 'a' && r <= 'z' {
			return r
		}
	}
	return 0
}
