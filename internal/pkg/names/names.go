// Package names turns PokeAPI slugs into display strings.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display converts a slug such as "mr-mime" into "Mr Mime".
// Only the first letter of each part changes; the rest is kept as-is.
func Display(slug string) string {
	if slug == "" {
		return ""
	}

	caser := cases.Title(language.English, cases.NoLower)
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, " ")
}
