package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailcorpus/internal/source"
	"mailcorpus/internal/storage"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> <database>",
	Short: "Copy a mail store into a SQLite database",
	Long: `Copy every folder, message, recipient and attachment of a mail store
into a SQLite database that analyze and scan can read back.

Example:
  mailcorpus convert ./maildir ./data/alice.db`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		src, err := source.Default().Open(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer func() {
			_ = src.Close()
		}()

		db, err := storage.New(args[1])
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			_ = db.Close()
		}()
		if err := storage.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		stats, err := storage.NewWriter(db, nil).Dump(ctx, src)
		if err != nil {
			return fmt.Errorf("failed to copy store: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "folders: %d, messages: %d, recipients: %d, attachments: %d, skipped: %d\n",
			stats.Folders, stats.Messages, stats.Recipients, stats.Attachments, stats.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
