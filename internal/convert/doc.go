// Package convert runs the whole conversion: read a table, group its rows,
// assemble documents and collect diagnostics.
//
// Only structural problems (unreadable file, missing sheet, missing fixed
// header row) are returned as errors. Everything else degrades: rows are
// skipped, fields omitted, and the reason is recorded as a diagnostic.
package convert
