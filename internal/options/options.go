// Package options derives variant option labels (ring size, metal type,
// karat) from a row.
package options

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/row"
	"inventory-converter/internal/value"
)

// genericKeys maps canonical columns onto the option key they feed.
var genericKeys = map[string]string{
	mapping.FieldSizeName:   mapping.OptionRingSize,
	mapping.FieldMetalType:  mapping.OptionMetalType,
	mapping.FieldColorName:  mapping.OptionMetalType,
	mapping.FieldMetalStamp: mapping.OptionKarat,
}

// karatPattern needs a non-digit before the number so "114K" is not read as 14k.
var karatPattern = regexp.MustCompile(`(?i)(?:^|\D)(10|14|18|22|24)\s?k`)

// Extract returns the option labels of r under the given rule set. The
// result is nil when no option is present.
func Extract(r row.Row, hm *match.HeaderMap, rules mapping.OptionRules) map[string]string {
	var opts map[string]string

	switch rules {
	case mapping.OptionsTemplate:
		opts = extractTemplate(r, hm)
	default:
		opts = extractGeneric(r, hm)
	}

	if len(opts) == 0 {
		return nil
	}

	return opts
}

// extractGeneric scans header columns in order; a later column feeding the
// same option key overwrites an earlier one.
func extractGeneric(r row.Row, hm *match.HeaderMap) map[string]string {
	opts := make(map[string]string)

	for _, e := range hm.Entries() {
		key, ok := genericKeys[e.Canonical]
		if !ok {
			continue
		}

		raw, ok := r[e.Slug]
		if !ok || value.IsEmptyLike(raw) {
			continue
		}

		label := strings.TrimSpace(raw)
		if key == mapping.OptionKarat {
			label = NormalizeKarat(label)
		}

		opts[key] = label
	}

	return opts
}

func extractTemplate(r row.Row, hm *match.HeaderMap) map[string]string {
	opts := make(map[string]string)

	if size, ok := row.Get(r, hm, mapping.FieldRingSize); ok {
		opts[mapping.OptionRingSize] = size
	} else if size, ok := row.Get(r, hm, mapping.FieldSizeName); ok {
		opts[mapping.OptionRingSize] = size
	} else if size, ok := InferRingSizeFromSKU(row.GetOr(r, hm, mapping.FieldSKU)); ok {
		opts[mapping.OptionRingSize] = size
	}

	if metal, ok := row.Get(r, hm, mapping.FieldMetalType); ok {
		opts[mapping.OptionMetalType] = metal
	}

	if karat, ok := ParseKarat(row.GetOr(r, hm, mapping.FieldMetalStamp)); ok {
		opts[mapping.OptionKarat] = karat
	}

	return opts
}

// NormalizeKarat lowercases a karat label, removes spaces, rewrites "kt"
// as "k" and appends "k" to a bare number: "14 KT" and "14" both give "14k".
func NormalizeKarat(s string) string {
	label := strings.ToLower(s)
	label = strings.ReplaceAll(label, " ", "")
	label = strings.ReplaceAll(label, "kt", "k")

	if label != "" && !strings.HasSuffix(label, "k") && isDigits(label) {
		label += "k"
	}

	return label
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// InferRingSizeFromSKU reads a ring size from a "-NN" or "-NNN" SKU suffix
// expressed in tenths: "ABC-45" is "4.5", "ABC-100" is "10".
func InferRingSizeFromSKU(sku string) (string, bool) {
	_, digits, ok := value.SplitNumericSuffix(sku)
	if !ok {
		return "", false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}

	return strconv.FormatFloat(float64(n)/10, 'f', -1, 64), true
}

// ParseKarat finds the first 10/14/18/22/24 karat mark in a metal stamp,
// e.g. "Stamped 14K gold" gives "14k".
func ParseKarat(stamp string) (string, bool) {
	m := karatPattern.FindStringSubmatch(stamp)
	if m == nil {
		return "", false
	}

	return m[1] + "k", true
}
