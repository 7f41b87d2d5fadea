package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timecard/importer"
)

var (
	importInputs []string
	importFormat string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import entries from CSV/Excel back-fill files",
	Long: `Import entries from source files.

Rows either carry explicit start/end datetimes, or a date plus a minute
count. Expected columns (header names are matched case-insensitively):
project, start, end, date, minutes, notes. Rows that cannot be mapped are
skipped and reported.`,
	Example: `
  # Import a CSV back-fill file
  timecard import -i ./backfill.csv

  # Import several Excel exports
  timecard import -i ./january.xlsx -i ./february.xlsx --format excel
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(importInputs) == 0 {
			return fmt.Errorf("at least one --input file is required")
		}

		store, _, err := openStore(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := importer.ImportFiles(store, importInputs, importFormat)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Mapped: %d, Skipped: %d, Persisted: %d\n",
			stats.FilesProcessed,
			stats.RowsRead,
			stats.RowsMapped,
			stats.RowsSkipped,
			stats.RowsPersisted,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: csv|excel (optional, inferred from extension)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default from config)")
}
