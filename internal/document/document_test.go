package document

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-converter/internal/group"
	"inventory-converter/internal/mapping"
	"inventory-converter/internal/row"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.FixedZone("EST", -5*3600))

func assemble(t *testing.T, headers []string, rows []row.Row) []Parent {
	t.Helper()

	d := mapping.Generic()
	hm := d.HeaderMap(headers)

	a := &Assembler{Hm: hm, Rules: d.Options, Now: func() time.Time { return fixedNow }}

	return a.Assemble(group.Group(rows, hm, group.Options{}))
}

func ptr(f float64) *float64 {
	return &f
}

func TestAssembleEndToEnd(t *testing.T) {
	headers := []string{"sku", "parentage", "parent_sku", "title", "standard_price", "size_name"}
	rows := []row.Row{
		{"sku": "P1", "parentage": "parent", "title": "Ring", "standard_price": "$50"},
		{"sku": "P1-C1", "parentage": "child", "parent_sku": "P1", "size_name": "7", "standard_price": "$55"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)

	expected := Parent{
		ID:           "P1",
		SKU:          "P1",
		Title:        "Ring",
		Price:        ptr(50),
		OptionSchema: map[string][]string{mapping.OptionRingSize: {"7"}},
		Variants: []Variant{
			{SKU: "P1-C1", Options: map[string]string{mapping.OptionRingSize: "7"}, Price: ptr(55)},
		},
		CreatedAt: "2024-03-09T19:05:06Z",
	}
	assert.Equal(t, expected, docs[0])

	data, err := json.Marshal(docs[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "P1",
		"sku": "P1",
		"title": "Ring",
		"price": 50,
		"optionSchema": {"ring_size": ["7"]},
		"variants": [{"sku": "P1-C1", "options": {"ring_size": "7"}, "price": 55}],
		"createdAt": "2024-03-09T19:05:06Z"
	}`, string(data))
}

func TestAssemblePriceFallback(t *testing.T) {
	headers := []string{"sku", "parentage", "parent_sku", "standard_price", "sale_price"}
	rows := []row.Row{
		{"sku": "P", "parentage": "parent"},
		{"sku": "P-1", "parentage": "child", "parent_sku": "P", "standard_price": "10"},
		{"sku": "P-2", "parentage": "child", "parent_sku": "P", "standard_price": "12", "sale_price": "8"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	require.NotNil(t, docs[0].Price)
	assert.InDelta(t, 8.0, *docs[0].Price, 1e-9)
}

func TestAssembleListPriceFallback(t *testing.T) {
	headers := []string{"sku", "list_price"}
	docs := assemble(t, headers, []row.Row{{"sku": "A", "list_price": "19.50"}})

	require.Len(t, docs, 1)
	require.NotNil(t, docs[0].Price)
	assert.InDelta(t, 19.5, *docs[0].Price, 1e-9)
}

func TestAssembleVariantListPrice(t *testing.T) {
	headers := []string{"sku", "parentage", "parent_sku", "list_price"}
	rows := []row.Row{
		{"sku": "P", "parentage": "parent"},
		{"sku": "P-1", "parentage": "child", "parent_sku": "P", "list_price": "30"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Variants, 1)
	require.NotNil(t, docs[0].Variants[0].Price)
	assert.InDelta(t, 30.0, *docs[0].Variants[0].Price, 1e-9)
	require.NotNil(t, docs[0].Price)
	assert.InDelta(t, 30.0, *docs[0].Price, 1e-9)
}

func TestOptionSchemaKnownKeysOnly(t *testing.T) {
	schema := optionSchema(map[string]map[string]struct{}{
		mapping.OptionKarat: {"18k": {}, "14k": {}},
		"engraving":         {"yes": {}},
	})

	assert.Equal(t, map[string][]string{mapping.OptionKarat: {"14k", "18k"}}, schema)
	assert.Nil(t, optionSchema(nil))
}

func TestAssembleNoPriceAnywhere(t *testing.T) {
	headers := []string{"sku", "parentage", "parent_sku", "standard_price"}
	rows := []row.Row{
		{"sku": "P", "parentage": "parent"},
		{"sku": "P-1", "parentage": "child", "parent_sku": "P", "standard_price": "n/a"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	assert.Nil(t, docs[0].Price)
	assert.Len(t, docs[0].Variants, 1)
}

func TestAssembleOptionSchemaSorted(t *testing.T) {
	headers := []string{"sku", "parentage", "parent_sku", "size_name", "metal_type"}
	rows := []row.Row{
		{"sku": "P", "parentage": "parent"},
		{"sku": "P-8", "parentage": "child", "parent_sku": "P", "size_name": "8", "metal_type": "gold"},
		{"sku": "P-6", "parentage": "child", "parent_sku": "P", "size_name": "6", "metal_type": "gold"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, map[string][]string{
		mapping.OptionRingSize:  {"6", "8"},
		mapping.OptionMetalType: {"gold"},
	}, docs[0].OptionSchema)
	assert.Equal(t, "P-8", docs[0].Variants[0].SKU)
}

func TestAssembleDuplicateParentKeepsFirst(t *testing.T) {
	headers := []string{"sku", "parentage", "title", "brand"}
	rows := []row.Row{
		{"sku": "P1", "parentage": "parent", "title": "First"},
		{"sku": "P1", "parentage": "parent", "title": "Second", "brand": "Acme"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, "First", docs[0].Title)
	assert.Empty(t, docs[0].Brand)
}

func TestAssembleParentWithoutChildren(t *testing.T) {
	headers := []string{"sku", "parentage", "bullet_point1", "bullet_point3", "main_image_url", "other_image_url1"}
	rows := []row.Row{
		{
			"sku": "P", "parentage": "PARENT",
			"bullet_point1": "one", "bullet_point3": "three",
			"main_image_url": "a.jpg", "other_image_url1": "a.jpg",
		},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"one", "three"}, docs[0].Bullets)
	assert.Equal(t, []string{"a.jpg"}, docs[0].Images)
	assert.Nil(t, docs[0].Variants)
	assert.Nil(t, docs[0].OptionSchema)
}

func TestAssembleDropsDanglingChildren(t *testing.T) {
	headers := []string{"sku", "parent_sku"}
	rows := []row.Row{
		{"sku": "C1", "parent_sku": "GHOST"},
		{"sku": "A"},
	}

	docs := assemble(t, headers, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, "A", docs[0].ID)
}

func TestAssembleOrderFollowsKeys(t *testing.T) {
	headers := []string{"sku"}
	docs := assemble(t, headers, []row.Row{{"sku": "B"}, {"sku": "A"}, {"sku": "C"}})

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	assert.Equal(t, []string{"B", "A", "C"}, ids)
}

func TestVariantIsEmpty(t *testing.T) {
	assert.True(t, Variant{}.IsEmpty())
	assert.False(t, Variant{Price: ptr(1)}.IsEmpty())
}
