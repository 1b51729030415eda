// Package value holds the cell-level helpers shared by every conversion stage:
// lenient number parsing, emptiness detection and recursive pruning of
// empty values.
//
// Malformed cells never produce errors here. They degrade to nil so that the
// caller can simply omit the field.
package value
