package frequency

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize returns the key used to compare item names: surrounding
// whitespace removed, then folded to lowercase. An empty result means the
// input carries no item.
func Normalize(item string) string {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return ""
	}
	// A Caser keeps internal state, so each call gets its own.
	return cases.Lower(language.Und).String(trimmed)
}
