package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-converter/internal/common"
	"inventory-converter/internal/diagnostic"
	"inventory-converter/internal/document"
	"inventory-converter/internal/group"
	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/table"
)

// ErrNilTable is returned when Convert is handed no table.
var ErrNilTable = errors.New("nil table")

// Options configures a conversion run.
type Options struct {
	// Dialect selects header discovery, synonyms and option rules.
	// Nil means the generic dialect.
	Dialect *mapping.Dialect
	// Sheet overrides the dialect's sheet selection.
	Sheet string
	// InferSingle treats every unmarked row as a one-variant family.
	InferSingle bool
	// Now stamps createdAt. Defaults to time.Now.
	Now func() time.Time
	// OnDangling is called for each parent key with children but no parent row.
	OnDangling func(parentKey string, children int)
}

// Stats summarizes a conversion run.
type Stats struct {
	Rows            int
	Blank           int
	MissingIdentity int
	Skipped         int
	Parents         int
	Variants        int
	Dangling        int
	Duplicates      int
}

// Result is the outcome of a conversion run.
type Result struct {
	Sheet       string
	HeaderMap   *match.HeaderMap
	Documents   []document.Parent
	Diagnostics diagnostic.Diagnostics
	Stats       Stats
}

func (o Options) dialect() *mapping.Dialect {
	if o.Dialect == nil {
		return mapping.Generic()
	}

	return o.Dialect
}

// ConvertFile reads path with the configured dialect and converts it.
func ConvertFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := table.ReadFile(path, opts.dialect(), opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Convert(t, opts)
}

// Convert groups the rows of t and assembles documents. Data problems never
// fail the run; they are reported in Result.Diagnostics.
func Convert(t *table.Table, opts Options) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	d := opts.dialect()

	hm := t.HeaderMap
	if hm == nil {
		hm = d.HeaderMap(t.Headers)
	}

	res := &Result{
		Sheet:     t.Sheet,
		HeaderMap: hm,
		Stats: Stats{
			Rows:            len(t.Rows),
			Blank:           t.Blank,
			MissingIdentity: t.MissingIdentity,
		},
	}

	reportUnmapped(&res.Diagnostics, hm, d.Synonyms)

	if common.IsEmpty(t.Rows) {
		res.Diagnostics.AddWarning(diagnostic.CodeEmptyTable,
			fmt.Sprintf("sheet %q has no data rows", t.Sheet), "", "")
	}

	g := group.Group(t.Rows, hm, group.Options{
		InferSingle: opts.InferSingle,
		OnDangling: func(key string, children int) {
			res.Stats.Dangling++
			res.Diagnostics.AddWarning(diagnostic.CodeDanglingChildren,
				fmt.Sprintf("%d child row(s) reference a parent that never appears; dropped", children), key, "")

			if opts.OnDangling != nil {
				opts.OnDangling(key, children)
			}
		},
	})

	if g.Skipped() > 0 {
		res.Stats.Skipped = g.Skipped()
		res.Diagnostics.AddInfo(diagnostic.CodeSkippedRow,
			fmt.Sprintf("%d row(s) without a SKU skipped", g.Skipped()), "", mapping.FieldSKU)
	}

	for _, dup := range g.Duplicates() {
		res.Stats.Duplicates++
		res.Diagnostics.AddWarning(diagnostic.CodeDuplicateParent,
			"parent row repeats an existing key; first one kept", dup.Key, "")
	}

	a := &document.Assembler{Hm: hm, Rules: d.Options, Now: opts.Now}
	res.Documents = a.Assemble(g)

	res.Stats.Parents = len(res.Documents)
	for _, doc := range res.Documents {
		res.Stats.Variants += len(doc.Variants)
	}

	return res, nil
}

func reportUnmapped(diags *diagnostic.Diagnostics, hm *match.HeaderMap, syn match.Synonyms) {
	for _, slug := range hm.Unmapped() {
		if s, ok := match.Suggest(slug, syn); ok {
			diags.AddInfo(diagnostic.CodeUnmappedHeader,
				fmt.Sprintf("column is not mapped to a known field (closest: %s, %.0f%%)", s.Canonical, s.Score*100),
				"", slug, s.Synonym)

			continue
		}

		diags.AddInfo(diagnostic.CodeUnmappedHeader, "column is not mapped to a known field", "", slug)
	}
}
