package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <source>",
	Short: "Analyze one mail store",
	Long: `Analyze one mail store and write its corpus to the output directory.

Example:
  mailcorpus analyze ./data/alice.db --out ./metadata/alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newAnalyzer().Run(cmd.Context(), args[0], cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("analysis of %s failed: %w", args[0], err)
		}

		st := report.Statistics
		fmt.Fprintf(cmd.OutOrStdout(), "emails: %d, contacts: %d, calendar: %d, tasks: %d, notes: %d, journal: %d, attachments: %d\n",
			st.TotalEmails, st.TotalContacts, st.TotalCalendarEvents, st.TotalTasks,
			st.TotalNotes, st.TotalJournalEntries, st.TotalAttachments)
		fmt.Fprintf(cmd.OutOrStdout(), "json: %s\ncsv:  %s\n", report.Paths.JSON, report.Paths.CSV)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
