package dictionary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize turns a word into its store key: surrounding whitespace trimmed, then lower-cased.
func Normalize(word string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Lower(language.Und).String(strings.TrimSpace(word))
}
