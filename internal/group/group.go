package group

import (
	"strings"

	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/row"
	"inventory-converter/internal/value"
)

// Parentage marker values, compared case-insensitively.
const (
	MarkerParent = "parent"
	MarkerChild  = "child"
)

// Options tunes the grouping heuristics.
type Options struct {
	// InferSingle turns every row without a parentage marker into its own
	// one-variant family.
	InferSingle bool

	// OnDangling, when set, is called once per grouping key that received
	// child rows but never a parent row. Those children are not emitted.
	OnDangling func(parentKey string, children int)
}

// Duplicate records a parent row ignored because its key was already taken.
type Duplicate struct {
	Key string
	SKU string
}

// Groups is the outcome of grouping: parent rows and their child rows,
// indexed by grouping key.
type Groups struct {
	keys     []string
	parents  map[string]row.Row
	children map[string][]row.Row

	// childKeys keeps first-seen order of child list keys.
	childKeys []string
	// themes maps a lowercased variation theme to the latest parent key
	// registered with it.
	themes map[string]string

	skipped    int
	duplicates []Duplicate
}

// Group partitions rows into parents and children. Rows without a SKU are
// skipped. The first parent registered under a key is authoritative.
//
// Per row, the first matching rule applies:
//  1. parentage "parent": a parent under its own SKU.
//  2. parentage "child": a child of parent_sku, else of the latest parent
//     sharing its variation theme, else of its SKU minus a -NN/-NNN suffix,
//     else of its own SKU.
//  3. no marker and InferSingle: its own parent and its only child.
//  4. no marker and a parent_sku other than its SKU: a child of parent_sku.
//  5. otherwise: its own parent.
func Group(rows []row.Row, hm *match.HeaderMap, opts Options) *Groups {
	g := &Groups{
		parents:  make(map[string]row.Row),
		children: make(map[string][]row.Row),
		themes:   make(map[string]string),
	}

	for _, r := range rows {
		g.add(r, hm, opts)
	}

	if opts.OnDangling != nil {
		for _, key := range g.Dangling() {
			opts.OnDangling(key, len(g.children[key]))
		}
	}

	return g
}

func (g *Groups) add(r row.Row, hm *match.HeaderMap, opts Options) {
	sku, ok := row.Get(r, hm, mapping.FieldSKU)
	if !ok {
		g.skipped++
		return
	}

	parentSKU, hasParentSKU := row.Get(r, hm, mapping.FieldParentSKU)

	switch strings.ToLower(row.GetOr(r, hm, mapping.FieldParentage)) {
	case MarkerParent:
		g.registerParent(sku, sku, r, hm)
		g.ensureChildren(sku)

	case MarkerChild:
		g.addChild(g.childParentKey(r, hm, sku), r)

	default:
		switch {
		case opts.InferSingle:
			g.registerParent(sku, sku, r, hm)
			g.addChild(sku, r)
		case hasParentSKU && parentSKU != sku:
			g.addChild(parentSKU, r)
		default:
			g.registerParent(sku, sku, r, hm)
		}
	}
}

// childParentKey resolves the parent key of a row explicitly marked child.
func (g *Groups) childParentKey(r row.Row, hm *match.HeaderMap, sku string) string {
	if parentSKU, ok := row.Get(r, hm, mapping.FieldParentSKU); ok {
		return parentSKU
	}

	if theme, ok := row.Get(r, hm, mapping.FieldVariationTheme); ok {
		if key, ok := g.themes[strings.ToLower(theme)]; ok {
			return key
		}
	}

	if base, _, ok := value.SplitNumericSuffix(sku); ok {
		return base
	}

	return sku
}

func (g *Groups) registerParent(key, sku string, r row.Row, hm *match.HeaderMap) {
	if _, exists := g.parents[key]; exists {
		g.duplicates = append(g.duplicates, Duplicate{Key: key, SKU: sku})
		return
	}

	g.parents[key] = r
	g.keys = append(g.keys, key)

	if theme, ok := row.Get(r, hm, mapping.FieldVariationTheme); ok {
		g.themes[strings.ToLower(theme)] = key
	}
}

func (g *Groups) ensureChildren(key string) {
	if _, ok := g.children[key]; ok {
		return
	}

	g.children[key] = []row.Row{}
	g.childKeys = append(g.childKeys, key)
}

func (g *Groups) addChild(key string, r row.Row) {
	g.ensureChildren(key)
	g.children[key] = append(g.children[key], r)
}

// Keys returns parent keys in first-registration order.
func (g *Groups) Keys() []string {
	return g.keys
}

// Parent returns the parent row registered under key.
func (g *Groups) Parent(key string) (row.Row, bool) {
	r, ok := g.parents[key]
	return r, ok
}

// Children returns the child rows under key, in row order.
func (g *Groups) Children(key string) []row.Row {
	return g.children[key]
}

// Dangling returns, in first-seen order, the keys holding child rows but no
// parent row.
func (g *Groups) Dangling() []string {
	var out []string

	for _, key := range g.childKeys {
		if _, ok := g.parents[key]; ok {
			continue
		}

		if len(g.children[key]) > 0 {
			out = append(out, key)
		}
	}

	return out
}

// Skipped returns how many rows had no SKU.
func (g *Groups) Skipped() int {
	return g.skipped
}

// Duplicates returns the parent registrations that were ignored.
func (g *Groups) Duplicates() []Duplicate {
	return g.duplicates
}
