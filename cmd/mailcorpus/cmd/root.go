package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mailcorpus/internal/analyzer"
	"mailcorpus/internal/config"
	"mailcorpus/internal/contextutil"
	"mailcorpus/internal/logging"
	"mailcorpus/internal/source"
)

var (
	cfgFile string
	outDir  string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mailcorpus",
	Short: "Extract a normalized corpus from mail stores",
	Long: `mailcorpus walks a decoded mail store and writes every email, contact,
calendar event, task, note and journal entry it finds as a JSON document,
an emails CSV table and the attachment payloads.

Supported stores are SQLite dumps (.db, .sqlite, .sqlite3) and directories
of .eml and .mbox files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if outDir != "" {
			cfg.OutputDir = outDir
		}

		logger := logging.New(os.Stdout, logOptions())
		slog.SetDefault(logger)
		slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(contextutil.WithLogger(ctx, logger))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory (overrides output_dir)")
}

func logOptions() logging.Options {
	return logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}
}

func newAnalyzer() *analyzer.Analyzer {
	return analyzer.New(source.Default(), analyzer.Options{
		BodyLimit:  cfg.BodyPreviewChars,
		TopSenders: cfg.TopSenders,
		LogToFile:  cfg.LogToFile,
		Log:        logOptions(),
	})
}
