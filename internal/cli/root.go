// Package cli wires the inventory-converter command line.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"inventory-converter/internal/config"
	"inventory-converter/internal/logger"
)

// ErrMissingCommand is returned when the root command runs without a subcommand.
var ErrMissingCommand = errors.New("missing command")

// NewRootCommand builds the command tree. cfg supplies flag defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.FromEnv()
	}

	var logLevel string

	root := &cobra.Command{
		Use:   "inventory-converter",
		Short: "Convert inventory templates into parent/variant product documents",
		Long: `inventory-converter reads a spreadsheet inventory template (xlsx or csv),
groups its rows into product families and writes one document per parent
product, ready to load into a document database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logLevel, cmd.ErrOrStderr())
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return ErrMissingCommand
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(newConvertCommand(cfg))
	root.AddCommand(newDialectsCommand())

	return root
}
