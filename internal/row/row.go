// Package row reads canonical fields out of raw spreadsheet rows.
package row

import (
	"strings"

	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/value"
)

// Row is one data row keyed by header slug. Cells may hold empty or "nan"
// placeholders; accessors treat those as absent.
type Row map[string]string

// Get returns the first non-empty value among the columns resolving to
// canonical, in header order. A cell keyed by the canonical name itself is
// consulted after each mapped column.
func Get(r Row, hm *match.HeaderMap, canonical string) (string, bool) {
	for _, e := range hm.Entries() {
		if e.Canonical != canonical {
			continue
		}

		if v, ok := cell(r, e.Slug); ok {
			return v, true
		}

		if v, ok := cell(r, canonical); ok {
			return v, true
		}
	}

	return "", false
}

// GetOr returns the value of canonical or "" when absent.
func GetOr(r Row, hm *match.HeaderMap, canonical string) string {
	v, _ := Get(r, hm, canonical)
	return v
}

func cell(r Row, key string) (string, bool) {
	v, ok := r[key]
	if !ok || value.IsEmptyLike(v) {
		return "", false
	}

	return strings.TrimSpace(v), true
}

// Bullets returns bullet1..bullet5 in order, skipping empties.
func Bullets(r Row, hm *match.HeaderMap) []string {
	return collect(r, hm, mapping.BulletFields())
}

// Images returns main_image then other_image1..7, de-duplicated in
// first-seen order.
func Images(r Row, hm *match.HeaderMap) []string {
	return value.Dedupe(collect(r, hm, mapping.ImageFields()))
}

func collect(r Row, hm *match.HeaderMap, fields []string) []string {
	var out []string

	for _, f := range fields {
		if v, ok := Get(r, hm, f); ok {
			out = append(out, v)
		}
	}

	return out
}

// IsBlank reports whether every cell of r is empty-like.
func IsBlank(r Row) bool {
	return value.PruneEmpty(map[string]string(r)) == nil
}

// FromCells zips a header slug list with a row of cells. Missing trailing
// cells become empty strings; for repeated slugs the first non-empty cell
// is kept.
func FromCells(slugs []string, cells []string) Row {
	r := make(Row, len(slugs))

	for i, slug := range slugs {
		if slug == "" {
			continue
		}

		var v string
		if i < len(cells) {
			v = cells[i]
		}

		if existing, ok := r[slug]; ok && !value.IsEmptyLike(existing) {
			continue
		}

		r[slug] = v
	}

	return r
}
