// Package main provides the CLI entrypoint for inventory-converter.
//
// inventory-converter turns a spreadsheet inventory template into
// parent/variant product documents:
//   - Reads xlsx or csv, auto-detecting the header or using a fixed template layout
//   - Maps column headers onto canonical fields through a dialect's synonym table
//   - Groups rows into parent products and variants
//   - Writes JSON, JSON lines, MongoDB extended JSON or BSON
package main

import (
	"context"
	"fmt"
	"os"

	"inventory-converter/internal/cli"
	"inventory-converter/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
