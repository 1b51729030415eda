package value

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"inventory-converter/internal/common"
)

// nonNumeric matches every character that cannot be part of a plain decimal number.
var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// currencySymbols are stripped when they lead a price cell.
const currencySymbols = "$£€¥"

// ToNumber parses a free-form price cell such as "$1,234.50".
// It never fails: empty or unparsable input yields nil.
func ToNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if IsEmptyLike(s) {
		return nil
	}

	// Accounting notation: "(5.00)" is -5.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	if strings.ContainsAny(s, "()") {
		return nil
	}

	s = strings.TrimLeft(s, currencySymbols)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	f, ok := parseFinite(s)
	if !ok {
		// Permissive pass: keep only numeric characters, e.g. "USD 12.99" or "12.99 ea".
		f, ok = parseFinite(nonNumeric.ReplaceAllString(s, ""))
	}

	if !ok {
		return nil
	}

	if negative {
		f = -f
	}

	return &f
}

func parseFinite(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// IsEmptyLike reports whether v carries no data: nil, a blank string,
// or the spreadsheet placeholder "nan" in any casing.
func IsEmptyLike(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(t)
		return s == "" || strings.EqualFold(s, "nan")
	case *string:
		return t == nil || IsEmptyLike(*t)
	case *float64:
		return t == nil
	default:
		return false
	}
}

// PruneEmpty removes empty-like values from a nested structure, depth-first.
// Containers that end up empty are removed from their parent; when the
// whole input is empty the result is nil.
func PruneEmpty(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if pruned := PruneEmpty(item); pruned != nil {
				out[k] = pruned
			}
		}

		if len(out) == 0 {
			return nil
		}

		return out

	case map[string]string:
		out := make(map[string]string, len(t))
		for k, item := range t {
			if !IsEmptyLike(item) {
				out[k] = item
			}
		}

		if len(out) == 0 {
			return nil
		}

		return out

	case []any:
		var out []any
		for _, item := range t {
			if pruned := PruneEmpty(item); pruned != nil {
				out = append(out, pruned)
			}
		}

		if len(out) == 0 {
			return nil
		}

		return out

	case []string:
		out := NonEmpty(t)
		if len(out) == 0 {
			return nil
		}

		return out

	default:
		if IsEmptyLike(v) {
			return nil
		}

		return v
	}
}

// NonEmpty returns the elements of s that are not empty-like, trimmed.
func NonEmpty(s []string) []string {
	var out []string

	for _, item := range s {
		if !IsEmptyLike(item) {
			out = append(out, strings.TrimSpace(item))
		}
	}

	return out
}

// Dedupe removes repeated strings, keeping the first occurrence of each.
func Dedupe(s []string) []string {
	if common.IsEmpty(s) {
		return nil
	}

	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// numericSuffix matches a trailing "-NN" or "-NNN" such as the size suffix
// of a variant SKU.
var numericSuffix = regexp.MustCompile(`^(.*)-(\d{2,3})$`)

// SplitNumericSuffix splits "ABC-45" into ("ABC", "45"). ok is false when s
// has no two- or three-digit suffix or nothing precedes it.
func SplitNumericSuffix(s string) (base, digits string, ok bool) {
	m := numericSuffix.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[1] == "" {
		return "", "", false
	}

	return m[1], m[2], true
}
