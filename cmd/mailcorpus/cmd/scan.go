package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Analyze every store in a directory",
	Long: `Analyze every recognised store directly inside a directory, one after
the other. Each store is written to its own sub-directory of the output
directory. The directory defaults to source_dir.

Example:
  mailcorpus scan ./data --out ./metadata`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.SourceDir
		if len(args) == 1 {
			dir = args[0]
		}

		processed := newAnalyzer().ScanDirectory(cmd.Context(), dir, cfg.OutputDir)
		for _, p := range processed {
			fmt.Fprintf(cmd.OutOrStdout(), "processed: %s\n", p)
		}
		if len(processed) == 0 {
			return errors.New("no store was processed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
