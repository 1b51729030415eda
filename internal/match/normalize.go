package match

import (
	"regexp"
	"strings"
)

var (
	// separatorRun matches runs of whitespace and hyphens inside a header.
	separatorRun = regexp.MustCompile(`[\s\-]+`)
	// nonSlugChars matches everything a slug may not contain.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Slugify normalizes a spreadsheet header into its slug form.
// The normalization pipeline:
// 1. Trim and case-fold to lower.
// 2. Collapse runs of whitespace and hyphens into a single underscore.
// 3. Drop every character outside [a-z0-9_].
//
// Slugify is idempotent: Slugify(Slugify(h)) == Slugify(h).
func Slugify(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = separatorRun.ReplaceAllString(s, "_")

	return nonSlugChars.ReplaceAllString(s, "")
}

// SlugifyAll slugifies every header, keeping positions.
func SlugifyAll(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = Slugify(h)
	}

	return out
}

// compact strips underscores so that "bullet_point1" and "bulletpoint1"
// compare equal when ranking suggestions.
func compact(slug string) string {
	return strings.ReplaceAll(slug, "_", "")
}
