package match

import "slices"

// SynonymSet lists the header slugs known to mean one canonical field.
type SynonymSet struct {
	Canonical string
	Slugs     []string
}

// Synonyms is an ordered synonym table. Order matters: when a slug appears in
// more than one set, the first set wins.
type Synonyms []SynonymSet

// Lookup returns the canonical field for an exact slug match.
func (s Synonyms) Lookup(slug string) (string, bool) {
	for _, set := range s {
		if slices.Contains(set.Slugs, slug) {
			return set.Canonical, true
		}
	}

	return "", false
}

// Canonicals returns the canonical names in table order.
func (s Synonyms) Canonicals() []string {
	out := make([]string, 0, len(s))
	for _, set := range s {
		out = append(out, set.Canonical)
	}

	return out
}

// Merge returns a copy of s where sets from other replace sets with the same
// canonical name, and new canonical names are appended.
func (s Synonyms) Merge(other Synonyms) Synonyms {
	out := make(Synonyms, 0, len(s)+len(other))
	for _, set := range s {
		out = append(out, SynonymSet{Canonical: set.Canonical, Slugs: slices.Clone(set.Slugs)})
	}

	for _, set := range other {
		idx := slices.IndexFunc(out, func(existing SynonymSet) bool {
			return existing.Canonical == set.Canonical
		})
		if idx >= 0 {
			out[idx].Slugs = slices.Clone(set.Slugs)
			continue
		}

		out = append(out, SynonymSet{Canonical: set.Canonical, Slugs: slices.Clone(set.Slugs)})
	}

	return out
}

// HeaderEntry is one column of a header map.
type HeaderEntry struct {
	Slug      string
	Canonical string
	// Mapped is false when no synonym matched and Canonical is the slug itself.
	Mapped bool
}

// HeaderMap resolves header slugs to canonical field names.
// Entries keep the header order of the table they were built from.
type HeaderMap struct {
	entries []HeaderEntry
	bySlug  map[string]int
}

// BuildHeaderMap resolves every slug through the synonym table.
// Slugs without a synonym map to themselves. Repeated slugs keep the
// position of their first occurrence.
func BuildHeaderMap(slugs []string, syn Synonyms) *HeaderMap {
	hm := &HeaderMap{bySlug: make(map[string]int, len(slugs))}

	for _, slug := range slugs {
		if slug == "" {
			continue
		}

		if _, ok := hm.bySlug[slug]; ok {
			continue
		}

		canonical, mapped := syn.Lookup(slug)
		if !mapped {
			canonical = slug
		}

		hm.bySlug[slug] = len(hm.entries)
		hm.entries = append(hm.entries, HeaderEntry{Slug: slug, Canonical: canonical, Mapped: mapped})
	}

	return hm
}

// Entries returns the header entries in order.
func (hm *HeaderMap) Entries() []HeaderEntry {
	return hm.entries
}

// Len returns the number of distinct header slugs.
func (hm *HeaderMap) Len() int {
	return len(hm.entries)
}

// Canonical returns the canonical name for a slug.
func (hm *HeaderMap) Canonical(slug string) (string, bool) {
	idx, ok := hm.bySlug[slug]
	if !ok {
		return "", false
	}

	return hm.entries[idx].Canonical, true
}

// SlugsFor returns, in header order, every slug resolving to canonical.
func (hm *HeaderMap) SlugsFor(canonical string) []string {
	var out []string

	for _, e := range hm.entries {
		if e.Canonical == canonical {
			out = append(out, e.Slug)
		}
	}

	return out
}

// Unmapped returns the slugs that did not match any synonym.
func (hm *HeaderMap) Unmapped() []string {
	var out []string

	for _, e := range hm.entries {
		if !e.Mapped {
			out = append(out, e.Slug)
		}
	}

	return out
}

