package mapping

import (
	"inventory-converter/internal/match"
)

// HeaderMode selects how the header row of a sheet is found.
type HeaderMode int

const (
	// HeaderAuto takes the first non-empty row of the sheet as the header.
	HeaderAuto HeaderMode = iota
	// HeaderFixed takes the row at Dialect.HeaderRow; data starts right after it.
	HeaderFixed
)

// String returns the YAML spelling of the mode.
func (m HeaderMode) String() string {
	switch m {
	case HeaderAuto:
		return "auto"
	case HeaderFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// OptionRules names the rule set used to derive variant options.
type OptionRules string

const (
	// OptionsGeneric maps size_name, metal_type/color_name and metal_stamp
	// straight onto option keys.
	OptionsGeneric OptionRules = "generic"
	// OptionsTemplate prefers a ring_size column, falls back to size_name and
	// the SKU suffix, and parses karat out of the metal stamp.
	OptionsTemplate OptionRules = "template"
)

// IsValid returns true if the rule set is a recognized value.
func (r OptionRules) IsValid() bool {
	return r == OptionsGeneric || r == OptionsTemplate
}

// Dialect describes one revision of the inventory template: where its
// header lives, which synonyms resolve its columns and which option rules
// apply to its rows. A single grouping engine serves every dialect.
type Dialect struct {
	// Name identifies the dialect in logs and diagnostics.
	Name string

	// Sheet is the sheet to read. Empty means auto-detect the first
	// non-empty sheet.
	Sheet string

	// Header selects header discovery.
	Header HeaderMode

	// HeaderRow is the 0-based header row index for HeaderFixed.
	HeaderRow int

	// Identity is the canonical field a data row must carry to be kept by
	// the table reader. Empty disables the check.
	Identity string

	// Options selects the option extraction rules.
	Options OptionRules

	// Synonyms resolves header slugs to canonical fields.
	Synonyms match.Synonyms
}

// Clone returns a deep copy of the dialect.
func (d *Dialect) Clone() *Dialect {
	c := *d
	c.Synonyms = match.Synonyms{}.Merge(d.Synonyms)

	return &c
}

// HeaderMap builds the header map for the given slugs using the dialect's
// synonym table.
func (d *Dialect) HeaderMap(slugs []string) *match.HeaderMap {
	return match.BuildHeaderMap(slugs, d.Synonyms)
}
