package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
name: boutique
extends: template
sheet: Listings
header_row: 1
identity: sku
options: template
synonyms:
  sku: [Item SKU, seller-sku]
  title: Product Name
  gift_wrap: gift_wrap
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, df)

	assert.Equal(t, "1", df.Version)
	assert.Equal(t, "boutique", df.Name)
	assert.Equal(t, "template", df.Extends)
	assert.Equal(t, 1, df.HeaderRow)
	assert.Equal(t, OptionsTemplate, df.Options)

	require.Len(t, df.Synonyms, 3)
	assert.Equal(t, "sku", df.Synonyms[0].Canonical)
	assert.Equal(t, StringOrArray{"Item SKU", "seller-sku"}, df.Synonyms[0].Headers)
	assert.Equal(t, "title", df.Synonyms[1].Canonical)
	assert.Equal(t, StringOrArray{"Product Name"}, df.Synonyms[1].Headers)
	assert.Equal(t, "gift_wrap", df.Synonyms[2].Canonical)

	d, err := df.Dialect()
	require.NoError(t, err)

	assert.Equal(t, "boutique", d.Name)
	assert.Equal(t, "Listings", d.Sheet)
	assert.Equal(t, HeaderFixed, d.Header)
	assert.Equal(t, 0, d.HeaderRow)
	assert.Equal(t, FieldSKU, d.Identity)

	// overridden set, slugified
	c, ok := d.Synonyms.Lookup("item_sku")
	assert.True(t, ok)
	assert.Equal(t, FieldSKU, c)

	c, ok = d.Synonyms.Lookup("seller_sku")
	assert.True(t, ok)
	assert.Equal(t, FieldSKU, c)

	c, ok = d.Synonyms.Lookup("product_name")
	assert.True(t, ok)
	assert.Equal(t, FieldTitle, c)

	// the base item_name synonym was replaced
	_, ok = d.Synonyms.Lookup("item_name")
	assert.False(t, ok)

	// inherited from the base
	c, ok = d.Synonyms.Lookup("ring_size")
	assert.True(t, ok)
	assert.Equal(t, FieldRingSize, c)

	// appended
	c, ok = d.Synonyms.Lookup("gift_wrap")
	assert.True(t, ok)
	assert.Equal(t, "gift_wrap", c)
}

func TestParseMinimal(t *testing.T) {
	yaml := `
synonyms:
  sku: code
`

	df, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", df.Version) // Default version
	assert.Equal(t, "custom", df.Name)

	d, err := df.Dialect()
	require.NoError(t, err)

	assert.Equal(t, HeaderAuto, d.Header)
	assert.Equal(t, OptionsGeneric, d.Options)
	assert.Empty(t, d.Sheet)
	require.Len(t, d.Synonyms, 1)
	assert.Equal(t, []string{"code"}, d.Synonyms[0].Slugs)
}

func TestParseDefaultNameFromExtends(t *testing.T) {
	df, err := Parse([]byte("extends: generic\n"))
	require.NoError(t, err)
	assert.Equal(t, "generic-custom", df.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"synonyms not a mapping", "synonyms: [a, b]\n"},
		{"headers not strings", "synonyms:\n  sku: {a: b}\n"},
		{"broken yaml", "name: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDialectUnknownBase(t *testing.T) {
	df, err := Parse([]byte("extends: nope\n"))
	require.NoError(t, err)

	_, err = df.Dialect()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dialect.yaml")

	require.NoError(t, os.WriteFile(path, []byte("extends: generic\nsheet: Products\n"), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Products", d.Sheet)
	assert.Equal(t, OptionsGeneric, d.Options)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: fancy\nsynonyms:\n  title: name\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_options")
	assert.Contains(t, err.Error(), "missing_identity_synonym")
}

func TestExportRoundTrip(t *testing.T) {
	original := Template()

	data, err := Marshal(Export(original))
	require.NoError(t, err)
	assert.Contains(t, string(data), "header_row: 3")

	df, err := Parse(data)
	require.NoError(t, err)

	d, err := df.Dialect()
	require.NoError(t, err)

	assert.Equal(t, original.Sheet, d.Sheet)
	assert.Equal(t, original.Header, d.Header)
	assert.Equal(t, original.HeaderRow, d.HeaderRow)
	assert.Equal(t, original.Identity, d.Identity)
	assert.Equal(t, original.Options, d.Options)
	assert.Equal(t, original.Synonyms, d.Synonyms)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generic.yaml")
	require.NoError(t, WriteFile(Export(Generic()), path))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Generic().Synonyms, d.Synonyms)
	assert.Equal(t, HeaderAuto, d.Header)
}
