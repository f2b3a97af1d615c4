package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reWhitespaceRuns = regexp.MustCompile(`\s+`)
	reNonSlugRunes   = regexp.MustCompile(`[^a-z0-9]+`)
)

// StripDiacritics decomposes the input and removes combining marks, so
// "José" becomes "Jose". Base letters are kept untouched.
func StripDiacritics(input string) string {
	decomposed := norm.NFD.String(input)
	var builder strings.Builder
	builder.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// NormalizeForSearch lowers the case and strips diacritics. Both the free-text
// query and the searchable index go through this before matching.
func NormalizeForSearch(input string) string {
	return StripDiacritics(strings.ToLower(input))
}

// Slugify derives a URL-safe identifier: diacritics stripped, lowercased,
// every run of characters outside [a-z0-9] collapsed into a single hyphen,
// leading and trailing hyphens removed. Idempotent.
func Slugify(input string) string {
	slug := StripDiacritics(input)
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = reNonSlugRunes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// FormatFullName joins the name parts with a single space, collapsing any
// internal whitespace runs. Never stored, always recomputed.
func FormatFullName(firstName, lastName string) string {
	combined := firstName + " " + lastName
	combined = reWhitespaceRuns.ReplaceAllString(combined, " ")
	return strings.TrimSpace(combined)
}
