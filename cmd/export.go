package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"timecard/output"
	"timecard/timesheet"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
	exportFrom   string
	exportTo     string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries or the summary grid to CSV/Excel",
	Long: `Export recorded entries.

Modes:
- raw: export each entry row
- summary: export the date-by-project grid for an inclusive date window

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export raw rows to CSV
  timecard export --mode raw --output ./entries.csv

  # Export the summary grid to Excel
  timecard export --mode summary --output ./timesheet.xlsx

  # Summary grid for an explicit window
  timecard export --mode summary --from 2026-03-01 --to 2026-03-07 --output ./week.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, cfg, err := openStore(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			entries, err := store.ListEntries()
			if err != nil {
				return err
			}
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(entries), format, exportOutput)
		case "summary":
			from, to, err := resolveSummaryWindow(cfg, exportFrom, exportTo)
			if err != nil {
				return err
			}
			entries, err := store.ListEntriesBetween(from, to)
			if err != nil {
				return err
			}
			summary := timesheet.BuildSummary(entries, from, to)
			if err := output.WriteSummary(exportOutput, format, summary); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: summary, Format: %s, File: %s\n", len(summary.Dates), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, summary)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Summary window start, format YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Summary window end, format YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = exportCmd.MarkFlagRequired("output")
}
