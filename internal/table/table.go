package table

import (
	"errors"
	"fmt"

	"inventory-converter/internal/common"
	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/row"
	"inventory-converter/internal/value"
)

var (
	// ErrSheetNotFound is returned when a named sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrUnsupportedFormat is returned for file extensions the reader cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoHeader is returned when a fixed header row lies past the end of the sheet.
	ErrNoHeader = errors.New("header row not found")
)

// Sheet is the raw cell grid of one worksheet.
type Sheet struct {
	Name  string
	Cells [][]string
}

// Table is a decoded sheet: header slugs, the header map resolved through
// the dialect, and the retained data rows in sheet order.
type Table struct {
	Sheet     string
	Headers   []string
	HeaderMap *match.HeaderMap
	Rows      []row.Row

	// Blank counts data rows dropped because every cell was empty.
	Blank int
	// MissingIdentity counts data rows dropped for lack of the dialect's identity field.
	MissingIdentity int
}

// FromSheets selects a sheet and decodes it with the dialect's header rules.
// The sheet argument overrides the dialect's sheet; when both are empty the
// first sheet with a non-empty row below its header is used.
func FromSheets(sheets []Sheet, d *mapping.Dialect, sheet string) (*Table, error) {
	selected, err := selectSheet(sheets, d, sheet)
	if err != nil {
		return nil, err
	}

	return FromSheet(selected, d)
}

func selectSheet(sheets []Sheet, d *mapping.Dialect, sheet string) (Sheet, error) {
	name := sheet
	if name == "" {
		name = d.Sheet
	}

	if name != "" {
		for _, s := range sheets {
			if s.Name == name {
				return s, nil
			}
		}

		return Sheet{}, fmt.Errorf("%w: %q (available: %v)", ErrSheetNotFound, name, sheetNames(sheets))
	}

	if len(sheets) == 0 {
		return Sheet{}, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}

	for _, s := range sheets {
		if hasDataRows(s.Cells) {
			return s, nil
		}
	}

	// No data anywhere: prefer a sheet with at least a header, else the first.
	for _, s := range sheets {
		if firstNonBlank(s.Cells) >= 0 {
			return s, nil
		}
	}

	return sheets[0], nil
}

// FromSheet decodes one sheet with the dialect's header rules.
func FromSheet(s Sheet, d *mapping.Dialect) (*Table, error) {
	t := &Table{Sheet: s.Name}

	headerIdx := firstNonBlank(s.Cells)

	if d.Header == mapping.HeaderFixed {
		if !common.IsIndex(d.HeaderRow, len(s.Cells)) {
			return nil, fmt.Errorf("%w: sheet %q has %d rows, header expected on row %d",
				ErrNoHeader, s.Name, len(s.Cells), d.HeaderRow+1)
		}

		headerIdx = d.HeaderRow
	}

	if headerIdx < 0 {
		t.HeaderMap = d.HeaderMap(nil)
		return t, nil
	}

	t.Headers = match.SlugifyAll(s.Cells[headerIdx])
	t.HeaderMap = d.HeaderMap(t.Headers)

	for _, cells := range s.Cells[headerIdx+1:] {
		r := row.FromCells(t.Headers, cells)

		if row.IsBlank(r) {
			t.Blank++
			continue
		}

		if d.Identity != "" {
			if _, ok := row.Get(r, t.HeaderMap, d.Identity); !ok {
				t.MissingIdentity++
				continue
			}
		}

		t.Rows = append(t.Rows, r)
	}

	return t, nil
}

// firstNonBlank returns the index of the first row with a non-empty cell, or -1.
func firstNonBlank(cells [][]string) int {
	for i, r := range cells {
		if value.PruneEmpty(r) != nil {
			return i
		}
	}

	return -1
}

// hasDataRows reports whether a non-empty row follows the first non-empty one.
func hasDataRows(cells [][]string) bool {
	header := firstNonBlank(cells)
	if header < 0 {
		return false
	}

	return firstNonBlank(cells[header+1:]) >= 0
}

func sheetNames(sheets []Sheet) []string {
	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Name)
	}

	return names
}
