package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"inventory-converter/internal/config"
	"inventory-converter/internal/convert"
	"inventory-converter/internal/diagnostic"
	"inventory-converter/internal/logger"
	"inventory-converter/internal/mapping"
	"inventory-converter/internal/output"
)

type convertOptions struct {
	output      string
	sheet       string
	dialect     string
	format      string
	inferSingle bool
	pretty      bool
}

func newConvertCommand(cfg *config.Config) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an xlsx or csv inventory template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: standard output)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", cfg.Sheet, "Sheet name (default: dialect sheet or first sheet with data)")
	cmd.Flags().StringVar(&opts.dialect, "dialect", cfg.Dialect, "Template dialect: generic, template, or a YAML dialect file")
	cmd.Flags().StringVar(&opts.format, "format", cfg.Format, "Output format: json, jsonl, extjson, bson")
	cmd.Flags().BoolVar(&opts.inferSingle, "infer-single", cfg.InferSingle, "Treat every unmarked row as its own single-variant product")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")

	return cmd
}

func runConvert(ctx context.Context, stdout, stderr io.Writer, path string, opts convertOptions) error {
	log := logger.FromContext(ctx).With().Str("run_id", uuid.NewString()).Logger()

	d, err := mapping.Resolve(opts.dialect)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Str("dialect", d.Name).
		Str("format", string(format)).
		Bool("infer_single", opts.inferSingle).
		Msg("converting")

	res, err := convert.ConvertFile(ctx, path, convert.Options{
		Dialect:     d,
		Sheet:       opts.sheet,
		InferSingle: opts.inferSingle,
	})
	if err != nil {
		return err
	}

	if log.GetLevel() <= zerolog.DebugLevel {
		log.Debug().Str("sheet", res.Sheet).Msg("header map\n" + spew.Sdump(res.HeaderMap.Entries()))
	}

	logDiagnostics(log, res.Diagnostics)

	if opts.output == "" {
		if err := output.Write(stdout, res.Documents, format, opts.pretty); err != nil {
			return err
		}
	} else {
		if err := writeFile(opts.output, res, format, opts.pretty); err != nil {
			return err
		}

		fmt.Fprintf(stderr, "Wrote %d document(s) -> %s\n", len(res.Documents), opts.output)
	}

	log.Info().
		Str("sheet", res.Sheet).
		Int("rows", res.Stats.Rows).
		Int("parents", res.Stats.Parents).
		Int("variants", res.Stats.Variants).
		Int("skipped", res.Stats.Skipped).
		Int("dangling", res.Stats.Dangling).
		Msg("conversion finished")

	return nil
}

func writeFile(path string, res *convert.Result, format output.Format, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := output.Write(f, res.Documents, format, pretty); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

func logDiagnostics(log zerolog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var ev *zerolog.Event

		switch d.Severity {
		case diagnostic.SeverityError:
			ev = log.Error()
		case diagnostic.SeverityWarning:
			ev = log.Warn()
		default:
			ev = log.Info()
		}

		ev = ev.Str("code", d.Code)
		if d.Key != "" {
			ev = ev.Str("key", d.Key)
		}
		if d.Field != "" {
			ev = ev.Str("field", d.Field)
		}
		if len(d.Suggestions) > 0 {
			ev = ev.Strs("suggestions", d.Suggestions)
		}

		ev.Msg(d.Message)
	}
}
