// Package group partitions template rows into product families: parent
// rows and the variant rows attached to them.
//
// Templates mark families in different ways across revisions: an explicit
// parentage column, a parent_sku column, a shared variation theme, or only
// a numeric size suffix on the variant SKU. Group applies these heuristics
// in a fixed precedence, the same way for every dialect. Explicit markers
// always take precedence over infer-single mode.
package group
