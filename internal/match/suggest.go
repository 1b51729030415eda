package match

import "sort"

// DefaultSuggestThreshold is the minimum similarity for a suggestion.
const DefaultSuggestThreshold = 0.8

// Suggestion proposes a canonical field for a header that matched no synonym.
type Suggestion struct {
	Slug      string  // the unmapped header slug
	Synonym   string  // the closest known synonym slug
	Canonical string  // the canonical field that synonym maps to
	Score     float64 // similarity in [0, 1]
}

// SuggestionList is a list of suggestions with ranking functionality.
type SuggestionList []Suggestion

// Rank scores slug against every synonym in the table.
// Returns suggestions sorted by score (descending).
func Rank(slug string, syn Synonyms) SuggestionList {
	var out SuggestionList

	for _, set := range syn {
		for _, known := range set.Slugs {
			out = append(out, Suggestion{
				Slug:      slug,
				Synonym:   known,
				Canonical: set.Canonical,
				Score:     SlugSimilarity(slug, known),
			})
		}
	}

	sort.Stable(out)

	return out
}

// Suggest returns the closest synonym for slug when it scores at least
// DefaultSuggestThreshold. Exact matches are not suggestions.
func Suggest(slug string, syn Synonyms) (Suggestion, bool) {
	best := Rank(slug, syn).Best()
	if best == nil || best.Score < DefaultSuggestThreshold || best.Synonym == slug {
		return Suggestion{}, false
	}

	return *best, true
}

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by synonym for determinism.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Synonym < s[j].Synonym
}

// Best returns the best suggestion, or nil if there are none.
func (s SuggestionList) Best() *Suggestion {
	if len(s) == 0 {
		return nil
	}

	return &s[0]
}
