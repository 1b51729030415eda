// Package match turns raw spreadsheet headers into canonical field names.
//
// Key functions:
//   - Slugify: normalizes a header into lowercase [a-z0-9_] form
//   - BuildHeaderMap: resolves slugs through an ordered synonym table
//   - Levenshtein / SlugSimilarity: edit distance between slugs
//   - Suggest: proposes the closest synonym for an unmapped header
package match
