package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"timecard/timesheet"
)

var (
	summaryFrom      string
	summaryTo        string
	summaryDBPath    string
	summaryShowNotes bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the date-by-project timesheet grid",
	Long: `Aggregate recorded entries into a date-by-project grid of worked hours.

The window is inclusive on both ends. Without --from/--to it covers the
configured number of days ending today. Entries are attributed to the
calendar date they started on.`,
	Example: `
  # Last two weeks (configured default window)
  timecard summary

  # Explicit window with per-cell notes
  timecard summary --from 2026-03-01 --to 2026-03-07 --notes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore(summaryDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		from, to, err := resolveSummaryWindow(cfg, summaryFrom, summaryTo)
		if err != nil {
			return err
		}

		entries, err := store.ListEntriesBetween(from, to)
		if err != nil {
			return err
		}

		summary := timesheet.BuildSummary(entries, from, to)
		if len(summary.Dates) == 0 {
			fmt.Printf("No entries between %s and %s.\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
			return nil
		}

		fmt.Print(renderSummaryTable(summary))
		if summaryShowNotes {
			if notes := renderSummaryNotes(summary); notes != "" {
				fmt.Println()
				fmt.Print(notes)
			}
		}
		return nil
	},
}

func renderSummaryTable(summary timesheet.Summary) string {
	var buf bytes.Buffer
	writer := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprint(writer, "DATE")
	for _, project := range summary.Projects {
		fmt.Fprintf(writer, "\t%s", project)
	}
	fmt.Fprint(writer, "\tTOTAL\n")

	var total time.Duration
	for _, date := range summary.Dates {
		fmt.Fprint(writer, date)

		var dayTotal time.Duration
		for _, project := range summary.Projects {
			cell, ok := summary.Total(date, project)
			if !ok {
				fmt.Fprint(writer, "\t-")
				continue
			}
			dayTotal += cell.HoursWorked
			fmt.Fprintf(writer, "\t%.2f", cell.HoursWorked.Hours())
		}

		total += dayTotal
		fmt.Fprintf(writer, "\t%.2f\n", dayTotal.Hours())
	}

	fmt.Fprint(writer, "TOTAL")
	for range summary.Projects {
		fmt.Fprint(writer, "\t")
	}
	fmt.Fprintf(writer, "\t%.2f\n", total.Hours())

	_ = writer.Flush()
	return buf.String()
}

func renderSummaryNotes(summary timesheet.Summary) string {
	var builder strings.Builder
	for _, date := range summary.Dates {
		for _, project := range summary.Projects {
			cell, ok := summary.Total(date, project)
			if !ok || cell.Notes == "" {
				continue
			}
			for _, line := range strings.Split(cell.Notes, "\n") {
				fmt.Fprintf(&builder, "%s %s: %s\n", date, project, line)
			}
		}
	}
	return builder.String()
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Window start, format YYYY-MM-DD (default: configured days before --to)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "Window end, format YYYY-MM-DD (default today)")
	summaryCmd.Flags().BoolVar(&summaryShowNotes, "notes", false, "Print per-cell notes below the grid")
	summaryCmd.Flags().StringVar(&summaryDBPath, "db", "", "Path to local SQLite database (default from config)")
}
