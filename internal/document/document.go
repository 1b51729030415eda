package document

import (
	"sort"
	"time"

	"inventory-converter/internal/group"
	"inventory-converter/internal/mapping"
	"inventory-converter/internal/match"
	"inventory-converter/internal/options"
	"inventory-converter/internal/row"
	"inventory-converter/internal/value"
)

// TimeLayout renders createdAt: UTC, second precision, trailing "Z".
const TimeLayout = "2006-01-02T15:04:05Z"

// Variant is one purchasable child of a Parent.
type Variant struct {
	SKU       string            `json:"sku,omitempty" bson:"sku,omitempty"`
	Options   map[string]string `json:"options,omitempty" bson:"options,omitempty"`
	Price     *float64          `json:"price,omitempty" bson:"price,omitempty"`
	SalePrice *float64          `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
}

// IsEmpty reports whether no field of v survived.
func (v Variant) IsEmpty() bool {
	return v.SKU == "" && len(v.Options) == 0 && v.Price == nil && v.SalePrice == nil
}

// effectivePrice is the sale price when set, else the regular price.
func (v Variant) effectivePrice() *float64 {
	if v.SalePrice != nil {
		return v.SalePrice
	}

	return v.Price
}

// Parent is one product family. ID and SKU both carry the grouping key.
type Parent struct {
	ID           string              `json:"_id,omitempty" bson:"_id,omitempty"`
	SKU          string              `json:"sku,omitempty" bson:"sku,omitempty"`
	Title        string              `json:"title,omitempty" bson:"title,omitempty"`
	Brand        string              `json:"brand,omitempty" bson:"brand,omitempty"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty"`
	Bullets      []string            `json:"bullets,omitempty" bson:"bullets,omitempty"`
	Images       []string            `json:"images,omitempty" bson:"images,omitempty"`
	Price        *float64            `json:"price,omitempty" bson:"price,omitempty"`
	SalePrice    *float64            `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	OptionSchema map[string][]string `json:"optionSchema,omitempty" bson:"optionSchema,omitempty"`
	Variants     []Variant           `json:"variants,omitempty" bson:"variants,omitempty"`
	CreatedAt    string              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Assembler turns grouped rows into documents.
type Assembler struct {
	// Hm resolves canonical fields in the rows being assembled.
	Hm *match.HeaderMap
	// Rules selects the option extraction rule set.
	Rules mapping.OptionRules
	// Now stamps createdAt. Defaults to time.Now.
	Now func() time.Time
}

// Assemble builds one Parent per parent key, in first-registration order.
// Keys whose children never got a parent row produce nothing.
func (a *Assembler) Assemble(g *group.Groups) []Parent {
	createdAt := a.now().UTC().Truncate(time.Second).Format(TimeLayout)

	docs := make([]Parent, 0, len(g.Keys()))

	for _, key := range g.Keys() {
		prow, ok := g.Parent(key)
		if !ok {
			continue
		}

		doc := a.parent(key, prow, g.Children(key))
		doc.CreatedAt = createdAt
		docs = append(docs, doc)
	}

	return docs
}

func (a *Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}

	return a.Now()
}

func (a *Assembler) parent(key string, prow row.Row, children []row.Row) Parent {
	doc := Parent{
		ID:          key,
		SKU:         key,
		Title:       row.GetOr(prow, a.Hm, mapping.FieldTitle),
		Brand:       row.GetOr(prow, a.Hm, mapping.FieldBrand),
		Description: row.GetOr(prow, a.Hm, mapping.FieldDescription),
		Bullets:     row.Bullets(prow, a.Hm),
		Images:      row.Images(prow, a.Hm),
		Price:       a.price(prow),
		SalePrice:   value.ToNumber(row.GetOr(prow, a.Hm, mapping.FieldSalePrice)),
	}

	seen := make(map[string]map[string]struct{})

	for _, crow := range children {
		v := a.variant(crow)
		if v.IsEmpty() {
			continue
		}

		for k, label := range v.Options {
			if seen[k] == nil {
				seen[k] = make(map[string]struct{})
			}

			seen[k][label] = struct{}{}
		}

		doc.Variants = append(doc.Variants, v)
	}

	doc.OptionSchema = optionSchema(seen)

	if doc.Price == nil {
		doc.Price = minPrice(doc.Variants)
	}

	return doc
}

// price is standard_price, falling back to list_price. Variants use the
// same chain as parents, so list-price-only templates keep variant prices.
func (a *Assembler) price(r row.Row) *float64 {
	if p := value.ToNumber(row.GetOr(r, a.Hm, mapping.FieldStandardPrice)); p != nil {
		return p
	}

	return value.ToNumber(row.GetOr(r, a.Hm, mapping.FieldListPrice))
}

func (a *Assembler) variant(r row.Row) Variant {
	return Variant{
		SKU:       row.GetOr(r, a.Hm, mapping.FieldSKU),
		Options:   options.Extract(r, a.Hm, a.Rules),
		Price:     a.price(r),
		SalePrice: value.ToNumber(row.GetOr(r, a.Hm, mapping.FieldSalePrice)),
	}
}

func optionSchema(seen map[string]map[string]struct{}) map[string][]string {
	if len(seen) == 0 {
		return nil
	}

	schema := make(map[string][]string, len(seen))

	for _, k := range mapping.OptionKeys() {
		labels, ok := seen[k]
		if !ok {
			continue
		}

		values := make([]string, 0, len(labels))
		for label := range labels {
			values = append(values, label)
		}

		sort.Strings(values)
		schema[k] = values
	}

	return schema
}

func minPrice(variants []Variant) *float64 {
	var lowest *float64

	for _, v := range variants {
		p := v.effectivePrice()
		if p == nil {
			continue
		}

		if lowest == nil || *p < *lowest {
			f := *p
			lowest = &f
		}
	}

	return lowest
}
