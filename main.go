package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pivolan/stats_preprocess/config"
	"github.com/pivolan/stats_preprocess/gologger"
	"github.com/pivolan/stats_preprocess/summary"
)

var logger = gologger.NewLogger()

var ErrNoRequest = errors.New("a request argument, --input or --csv is required")

type options struct {
	input       string
	csv         string
	format      string
	chartDir    string
	chartFormat string
}

func main() {
	if err := newRootCommand(config.GetConfig()).Execute(); err != nil {
		logger.Error().Err(err).Msg("preprocess failed")
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "preprocess [request-json]",
		Short: "Sort, delete rows from or clean a record set and summarize it",
		Long: `preprocess reads {"data": [...], "operation": "...", "params": {...}} from its
single argument, applies sort, delete_row or clean, and prints one JSON line with
data, summary and missing_values.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := *cfg
			run.Format = opts.format
			run.ChartDir = opts.chartDir
			run.ChartFormat = opts.chartFormat
			if err := run.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}
			return execute(cmd.OutOrStdout(), args, opts, &run)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "read the request from a file (.gz, .lz4 and .zip are unpacked)")
	flags.StringVar(&opts.csv, "csv", "", "build the record set from a CSV file (.gz, .lz4 and .zip are unpacked)")
	flags.StringVar(&opts.format, "format", cfg.Format, "output format: json, table or markdown")
	flags.StringVar(&opts.chartDir, "chart-dir", cfg.ChartDir, "write a histogram per numeric column and a missing values chart here")
	flags.StringVar(&opts.chartFormat, "chart-format", cfg.ChartFormat, "chart format: png or html")
	return cmd
}

func execute(stdout io.Writer, args []string, opts options, cfg *config.Config) error {
	req, err := loadRequest(args, opts, cfg.MaxInputBytes)
	if err != nil {
		return err
	}

	table, res, err := handleRequest(req)
	if err != nil {
		return err
	}

	if cfg.ChartDir != "" {
		written, err := writeCharts(cfg.ChartDir, cfg.ChartFormat, table, res)
		if err != nil {
			return err
		}
		logger.Debug().Strs("files", written).Msg("charts written")
	}

	if cfg.Format == summary.FormatJSON {
		return writeJSON(stdout, res)
	}
	return summary.Render(stdout, res, summary.Analyze(table), cfg.Format)
}
