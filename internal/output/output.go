// Package output serializes converted documents.
package output

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"inventory-converter/internal/document"
)

// Format is a serialization format for documents.
type Format string

const (
	// FormatJSON writes one JSON array.
	FormatJSON Format = "json"
	// FormatJSONL writes one compact JSON document per line.
	FormatJSONL Format = "jsonl"
	// FormatExtJSON writes one relaxed MongoDB Extended JSON document per
	// line, as read by mongoimport.
	FormatExtJSON Format = "extjson"
	// FormatBSON writes concatenated BSON documents, as read by mongorestore.
	FormatBSON Format = "bson"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONL, FormatExtJSON, FormatBSON}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))

	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, name, Formats())
}

// IsBinary reports whether f produces non-text output.
func (f Format) IsBinary() bool {
	return f == FormatBSON
}

// Write serializes docs to w. pretty indents the text formats that allow it
// (json and extjson).
func Write(w io.Writer, docs []document.Parent, format Format, pretty bool) error {
	bw := bufio.NewWriter(w)

	var err error

	switch format {
	case FormatJSON:
		err = writeJSON(bw, docs, pretty)
	case FormatJSONL:
		err = writeJSONL(bw, docs)
	case FormatExtJSON:
		err = writeExtJSON(bw, docs, pretty)
	case FormatBSON:
		err = writeBSON(bw, docs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return err
	}

	return bw.Flush()
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	// Image URLs carry query strings; keep '&' readable.
	enc.SetEscapeHTML(false)

	return enc
}

func writeJSON(w io.Writer, docs []document.Parent, pretty bool) error {
	if docs == nil {
		docs = []document.Parent{}
	}

	enc := newEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeJSONL(w io.Writer, docs []document.Parent) error {
	enc := newEncoder(w)

	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
		}
	}

	return nil
}

func writeExtJSON(w io.Writer, docs []document.Parent, pretty bool) error {
	for _, doc := range docs {
		var (
			data []byte
			err  error
		)

		if pretty {
			data, err = bson.MarshalExtJSONIndent(doc, false, false, "", "  ")
		} else {
			data, err = bson.MarshalExtJSON(doc, false, false)
		}

		if err != nil {
			return fmt.Errorf("failed to encode document %s as extended JSON: %w", doc.ID, err)
		}

		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}

	return nil
}

func writeBSON(w io.Writer, docs []document.Parent) error {
	for _, doc := range docs {
		data, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document %s as BSON: %w", doc.ID, err)
		}

		if _, err := w.Write(data); err != nil {
			return err
		}
	}

	return nil
}
