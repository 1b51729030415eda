package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"inventory-converter/internal/mapping"
)

// ReadFile decodes an .xlsx/.xlsm workbook or a .csv file into a Table.
// sheet overrides the dialect's sheet selection; CSV files have a single
// sheet named after the file, read whatever sheet the dialect names.
func ReadFile(path string, d *mapping.Dialect, sheet string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return readWorkbook(path, d, sheet)
	case ".csv":
		s, err := readCSV(path)
		if err != nil {
			return nil, err
		}

		csvDialect := d.Clone()
		csvDialect.Sheet = ""

		return FromSheets([]Sheet{s}, csvDialect, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readWorkbook(path string, d *mapping.Dialect, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = d.Sheet
	}

	var sheets []Sheet

	for _, sn := range f.GetSheetList() {
		// A named sheet needs only that sheet's cells.
		if name != "" && sn != name {
			sheets = append(sheets, Sheet{Name: sn})
			continue
		}

		rows, err := f.GetRows(sn)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sn, path, err)
		}

		sheets = append(sheets, Sheet{Name: sn, Cells: rows})

		// Auto-detection stops at the first sheet holding data rows.
		if name == "" && hasDataRows(rows) {
			break
		}
	}

	return FromSheets(sheets, d, sheet)
}

func readCSV(path string) (Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var cells [][]string

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Sheet{}, fmt.Errorf("failed to read CSV file %s: %w", path, err)
		}

		cells = append(cells, record)
	}

	if len(cells) > 0 && len(cells[0]) > 0 {
		cells[0][0] = strings.TrimPrefix(cells[0][0], "\ufeff")
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return Sheet{Name: name, Cells: cells}, nil
}
