package mapping

import (
	"fmt"
	"slices"
)

// Canonical field names. Headers that resolve to none of these keep their
// slug and pass through untouched.
const (
	FieldSKU            = "sku"
	FieldParentSKU      = "parent_sku"
	FieldParentage      = "parentage"
	FieldVariationTheme = "variation_theme"

	FieldTitle       = "title"
	FieldBrand       = "brand"
	FieldDescription = "description"
	FieldMainImage   = "main_image"

	FieldStandardPrice = "standard_price"
	FieldListPrice     = "list_price"
	FieldSalePrice     = "sale_price"
	FieldCurrency      = "currency"

	FieldSizeName   = "size_name"
	FieldRingSize   = "ring_size"
	FieldMetalType  = "metal_type"
	FieldColorName  = "color_name"
	FieldMetalStamp = "metal_stamp"
)

// Option keys shared by variant options and the parent option schema.
const (
	OptionRingSize  = "ring_size"
	OptionMetalType = "metal_type"
	OptionKarat     = "karat"
)

// Counts of the numbered canonical fields.
const (
	BulletCount     = 5
	OtherImageCount = 7
)

// OptionKeys lists the option keys in schema order.
func OptionKeys() []string {
	return []string{OptionRingSize, OptionMetalType, OptionKarat}
}

// BulletField returns the canonical name of bullet n (1-based).
func BulletField(n int) string {
	return fmt.Sprintf("bullet%d", n)
}

// OtherImageField returns the canonical name of additional image n (1-based).
func OtherImageField(n int) string {
	return fmt.Sprintf("other_image%d", n)
}

// BulletFields returns bullet1..bullet5 in order.
func BulletFields() []string {
	out := make([]string, 0, BulletCount)
	for i := 1; i <= BulletCount; i++ {
		out = append(out, BulletField(i))
	}

	return out
}

// ImageFields returns main_image followed by other_image1..7.
func ImageFields() []string {
	out := make([]string, 0, OtherImageCount+1)
	out = append(out, FieldMainImage)

	for i := 1; i <= OtherImageCount; i++ {
		out = append(out, OtherImageField(i))
	}

	return out
}

// CanonicalFields returns the closed set of canonical field names.
func CanonicalFields() []string {
	out := []string{
		FieldSKU, FieldParentSKU, FieldParentage, FieldVariationTheme,
		FieldTitle, FieldBrand, FieldDescription,
	}
	out = append(out, BulletFields()...)
	out = append(out, ImageFields()...)
	out = append(out,
		FieldStandardPrice, FieldListPrice, FieldSalePrice, FieldCurrency,
		FieldSizeName, FieldRingSize, FieldMetalType, FieldColorName, FieldMetalStamp,
	)

	return out
}

// IsCanonical reports whether name belongs to the canonical field set.
func IsCanonical(name string) bool {
	return slices.Contains(CanonicalFields(), name)
}
