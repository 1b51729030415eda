package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inventory-converter/internal/mapping"
)

func newDialectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List, export and check template dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range mapping.BuiltinNames() {
				d, err := mapping.Builtin(name)
				if err != nil {
					return err
				}

				sheet := d.Sheet
				if sheet == "" {
					sheet = "(auto)"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-10s sheet=%s header=%s options=%s\n", d.Name, sheet, d.Header, d.Options)
			}

			return nil
		},
	}

	cmd.AddCommand(newDialectsExportCommand())
	cmd.AddCommand(newDialectsCheckCommand())

	return cmd
}

func newDialectsExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write a dialect as YAML, as a starting point for a custom dialect file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := mapping.Resolve(args[0])
			if err != nil {
				return err
			}

			df := mapping.Export(d)

			if out != "" {
				return mapping.WriteFile(df, out)
			}

			data, err := mapping.Marshal(df)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: standard output)")

	return cmd
}

func newDialectsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML dialect file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := mapping.Validate(d)
			for _, w := range diags.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), w.String())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d canonical fields)\n", d.Name, len(d.Synonyms))

			return nil
		},
	}
}
