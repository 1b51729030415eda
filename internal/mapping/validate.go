package mapping

import (
	"fmt"

	"inventory-converter/internal/diagnostic"
)

// Validate checks a dialect for structural problems. Errors make the dialect
// unusable; warnings point at synonyms that can never take effect.
func Validate(d *Dialect) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if d == nil {
		res.AddError("dialect_is_nil", "dialect is nil", "", "")
		return res
	}

	if d.Header == HeaderFixed && d.HeaderRow < 0 {
		res.AddError("invalid_header_row", fmt.Sprintf("header row %d is not positive", d.HeaderRow+1), d.Name, "header_row")
	}

	if d.Header != HeaderAuto && d.Header != HeaderFixed {
		res.AddError("invalid_header_mode", fmt.Sprintf("unknown header mode %d", d.Header), d.Name, "header")
	}

	if !d.Options.IsValid() {
		res.AddError("invalid_options", fmt.Sprintf("unknown option rules %q (want %q or %q)",
			d.Options, OptionsGeneric, OptionsTemplate), d.Name, "options")
	}

	// The grouping engine cannot work without an identity column.
	if len(d.Synonyms) == 0 {
		res.AddError("no_synonyms", "dialect defines no synonyms", d.Name, "synonyms")
		return res
	}

	if !hasSynonymsFor(d, FieldSKU) {
		res.AddError("missing_identity_synonym", "no header resolves to sku", d.Name, FieldSKU)
	}

	if d.Identity != "" && !hasSynonymsFor(d, d.Identity) {
		res.AddError("missing_identity_synonym",
			fmt.Sprintf("identity field %q has no headers", d.Identity), d.Name, d.Identity)
	}

	seenCanonical := map[string]struct{}{}
	owner := map[string]string{}

	for _, set := range d.Synonyms {
		if _, ok := seenCanonical[set.Canonical]; ok {
			res.AddError("duplicate_canonical",
				fmt.Sprintf("canonical field %q listed twice", set.Canonical), d.Name, set.Canonical)

			continue
		}

		seenCanonical[set.Canonical] = struct{}{}

		if !IsCanonical(set.Canonical) {
			res.AddWarning("unknown_canonical",
				fmt.Sprintf("%q is not a canonical field; its columns pass through unused", set.Canonical),
				d.Name, set.Canonical)
		}

		for _, slug := range set.Slugs {
			if slug == "" {
				res.AddError("empty_synonym", "synonym slugifies to an empty string", d.Name, set.Canonical)
				continue
			}

			if first, ok := owner[slug]; ok {
				res.AddWarning("shadowed_synonym",
					fmt.Sprintf("header %q already resolves to %q", slug, first), d.Name, set.Canonical)

				continue
			}

			owner[slug] = set.Canonical
		}
	}

	return res
}

func hasSynonymsFor(d *Dialect, canonical string) bool {
	for _, set := range d.Synonyms {
		if set.Canonical == canonical && len(set.Slugs) > 0 {
			return true
		}
	}

	return false
}
