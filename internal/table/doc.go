// Package table decodes spreadsheet files into header slugs and raw rows.
//
// Two header discovery schemes are supported, chosen by the dialect:
//   - auto: the first sheet with any non-empty cell (unless a sheet is
//     named), header on its first non-empty row;
//   - fixed: a designated sheet with the header on a fixed row and data
//     right below it.
//
// Entirely empty rows are dropped in both schemes, as are rows missing the
// dialect's identity field. Structural problems (missing file or sheet,
// unknown format) are returned as errors; cell contents never are.
package table
