package mapping

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"inventory-converter/internal/match"
)

// Built-in dialect names.
const (
	DialectGeneric  = "generic"
	DialectTemplate = "template"
)

// ErrUnknownDialect is returned when a dialect name is neither built in nor
// a readable dialect file.
var ErrUnknownDialect = errors.New("unknown dialect")

// genericSynonyms covers the loosely named columns seen across template
// revisions. Order decides ties.
func genericSynonyms() match.Synonyms {
	return match.Synonyms{
		{Canonical: FieldSKU, Slugs: []string{"sku", "seller_sku", "item_sku"}},
		{Canonical: FieldParentSKU, Slugs: []string{"parent_sku", "parent", "parentage_sku", "parentsku"}},
		{Canonical: FieldParentage, Slugs: []string{"parentage"}},
		{Canonical: FieldVariationTheme, Slugs: []string{"variation_theme", "variationtheme"}},
		{Canonical: FieldTitle, Slugs: []string{"item_name", "item_title", "title", "itemname"}},
		{Canonical: FieldBrand, Slugs: []string{"brand_name", "brand"}},
		{Canonical: FieldDescription, Slugs: []string{"product_description", "item_description", "description"}},
		{Canonical: BulletField(1), Slugs: []string{"bullet_point1", "bulletpoint1"}},
		{Canonical: BulletField(2), Slugs: []string{"bullet_point2", "bulletpoint2"}},
		{Canonical: BulletField(3), Slugs: []string{"bullet_point3", "bulletpoint3"}},
		{Canonical: BulletField(4), Slugs: []string{"bullet_point4", "bulletpoint4"}},
		{Canonical: BulletField(5), Slugs: []string{"bullet_point5", "bulletpoint5"}},
		{Canonical: FieldMainImage, Slugs: []string{"main_image_url", "main_image", "main_image_link"}},
		{Canonical: OtherImageField(1), Slugs: []string{"other_image_url1"}},
		{Canonical: OtherImageField(2), Slugs: []string{"other_image_url2"}},
		{Canonical: OtherImageField(3), Slugs: []string{"other_image_url3"}},
		{Canonical: OtherImageField(4), Slugs: []string{"other_image_url4"}},
		{Canonical: OtherImageField(5), Slugs: []string{"other_image_url5"}},
		{Canonical: OtherImageField(6), Slugs: []string{"other_image_url6"}},
		{Canonical: OtherImageField(7), Slugs: []string{"other_image_url7"}},
		{Canonical: FieldStandardPrice, Slugs: []string{"standard_price", "price"}},
		{Canonical: FieldListPrice, Slugs: []string{"list_price"}},
		{Canonical: FieldSalePrice, Slugs: []string{"sale_price"}},
		{Canonical: FieldCurrency, Slugs: []string{"currency", "standard_price_currency"}},
		{Canonical: FieldSizeName, Slugs: []string{"size_name", "size"}},
		{Canonical: FieldMetalType, Slugs: []string{"metal_type", "material_type", "metal"}},
		{Canonical: FieldColorName, Slugs: []string{"color_name", "color"}},
		{Canonical: FieldMetalStamp, Slugs: []string{"metal_stamp", "metal_karat", "karat"}},
	}
}

// templateSynonyms covers the fixed marketplace template, whose third row
// carries machine attribute names.
func templateSynonyms() match.Synonyms {
	return match.Synonyms{
		{Canonical: FieldSKU, Slugs: []string{"item_sku"}},
		{Canonical: FieldParentSKU, Slugs: []string{"parent_sku"}},
		{Canonical: FieldParentage, Slugs: []string{"parent_child", "parentage"}},
		{Canonical: FieldVariationTheme, Slugs: []string{"variation_theme"}},
		{Canonical: FieldTitle, Slugs: []string{"item_name"}},
		{Canonical: FieldBrand, Slugs: []string{"brand_name"}},
		{Canonical: FieldDescription, Slugs: []string{"product_description"}},
		{Canonical: BulletField(1), Slugs: []string{"bullet_point1"}},
		{Canonical: BulletField(2), Slugs: []string{"bullet_point2"}},
		{Canonical: BulletField(3), Slugs: []string{"bullet_point3"}},
		{Canonical: BulletField(4), Slugs: []string{"bullet_point4"}},
		{Canonical: BulletField(5), Slugs: []string{"bullet_point5"}},
		{Canonical: FieldMainImage, Slugs: []string{"main_image_url"}},
		{Canonical: OtherImageField(1), Slugs: []string{"other_image_url1"}},
		{Canonical: OtherImageField(2), Slugs: []string{"other_image_url2"}},
		{Canonical: OtherImageField(3), Slugs: []string{"other_image_url3"}},
		{Canonical: OtherImageField(4), Slugs: []string{"other_image_url4"}},
		{Canonical: OtherImageField(5), Slugs: []string{"other_image_url5"}},
		{Canonical: OtherImageField(6), Slugs: []string{"other_image_url6"}},
		{Canonical: OtherImageField(7), Slugs: []string{"other_image_url7"}},
		{Canonical: FieldStandardPrice, Slugs: []string{"standard_price"}},
		{Canonical: FieldListPrice, Slugs: []string{"list_price", "list_price_with_tax"}},
		{Canonical: FieldSalePrice, Slugs: []string{"sale_price"}},
		{Canonical: FieldCurrency, Slugs: []string{"currency"}},
		{Canonical: FieldSizeName, Slugs: []string{"size_name"}},
		{Canonical: FieldRingSize, Slugs: []string{"ring_size"}},
		{Canonical: FieldMetalType, Slugs: []string{"metal_type"}},
		{Canonical: FieldColorName, Slugs: []string{"color_name"}},
		{Canonical: FieldMetalStamp, Slugs: []string{"metal_stamp"}},
	}
}

var builtins = map[string]func() *Dialect{
	DialectGeneric:  Generic,
	DialectTemplate: Template,
}

// Generic is the synonym-driven dialect: any sheet, header on the first
// non-empty row.
func Generic() *Dialect {
	return &Dialect{
		Name:     DialectGeneric,
		Header:   HeaderAuto,
		Options:  OptionsGeneric,
		Synonyms: genericSynonyms(),
	}
}

// Template is the fixed marketplace template: sheet "Template", attribute
// names on the third row, rows without item_sku discarded.
func Template() *Dialect {
	return &Dialect{
		Name:      DialectTemplate,
		Sheet:     "Template",
		Header:    HeaderFixed,
		HeaderRow: 2,
		Identity:  FieldSKU,
		Options:   OptionsTemplate,
		Synonyms:  templateSynonyms(),
	}
}

// Builtin returns a fresh copy of a built-in dialect.
func Builtin(name string) (*Dialect, error) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (built in: %v)", ErrUnknownDialect, name, BuiltinNames())
	}

	return ctor(), nil
}

// BuiltinNames returns the built-in dialect names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resolve returns the built-in dialect called ref, or loads ref as a YAML
// dialect file. An empty ref means the generic dialect.
func Resolve(ref string) (*Dialect, error) {
	if ref == "" {
		return Generic(), nil
	}

	if d, err := Builtin(ref); err == nil {
		return d, nil
	}

	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("%w: %q is neither built in (%v) nor a readable file", ErrUnknownDialect, ref, BuiltinNames())
	}

	return LoadFile(ref)
}
