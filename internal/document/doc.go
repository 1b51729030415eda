// Package document assembles parent/variant product documents from grouped
// rows.
//
// Documents are plain structs whose json and bson tags carry the output
// field names; every field is omitempty, so absent data never reaches the
// serialized form. A parent without its own price takes the lowest
// effective price (sale price when set) among its variants.
package document
