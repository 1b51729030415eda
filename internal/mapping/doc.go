// Package mapping defines template dialects: the canonical field set, the
// synonym tables that resolve raw headers onto it, and the YAML files that
// let users describe their own template revisions.
//
// # Built-in dialects
//
//   - generic: any sheet (the first non-empty one unless a sheet is named),
//     header on the first non-empty row, broad synonym table, option values
//     taken directly from size/metal/color/stamp columns.
//   - template: the fixed marketplace template. Sheet "Template", attribute
//     names on the third row, rows without item_sku discarded, ring size
//     inferred from the SKU suffix and karat parsed from the metal stamp.
//
// # Dialect files
//
//	version: "1"
//	name: boutique-2024
//	extends: template        # optional built-in base
//	sheet: Listings
//	header_row: 1            # 1-based; omit to keep the base discovery
//	identity: sku            # canonical field every kept row must carry
//	options: template        # generic | template
//	synonyms:                # replaces the base set per canonical field
//	  sku: [item_sku, seller_sku]
//	  title: Product Name    # single header shorthand
//
// Synonym headers are slugified when loaded, so they may be written the way
// they appear in the spreadsheet.
//
// # Priority Order
//
// When a slug is listed under several canonical fields the first one in
// table order wins; Validate reports the shadowed entries.
package mapping
