package output

import (
	"fmt"
	"strings"
	"time"

	"timecard/timesheet"
)

// WriteSummary exports the date-by-project grid in the requested format.
func WriteSummary(path, format string, summary timesheet.Summary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeSummaryCSV(path, summary)
	case "excel", "xlsx":
		return writeSummaryExcel(path, summary)
	default:
		return fmt.Errorf("unsupported output format for summary: %s", format)
	}
}

// SummaryGridRows renders the summary as a rectangular grid: a header row of
// project names, then one row per date with hours per project and a trailing
// notes column. Cells without entries stay empty.
func SummaryGridRows(summary timesheet.Summary) [][]string {
	header := make([]string, 0, len(summary.Projects)+2)
	header = append(header, "Date")
	header = append(header, summary.Projects...)
	header = append(header, "Notes")

	rows := make([][]string, 0, len(summary.Dates)+1)
	rows = append(rows, header)

	for _, date := range summary.Dates {
		row := make([]string, 0, len(header))
		row = append(row, date)

		noteParts := make([]string, 0, 2)
		for _, project := range summary.Projects {
			total, ok := summary.Total(date, project)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatHours(total.HoursWorked))
			if total.Notes != "" {
				noteParts = append(noteParts, project+": "+total.Notes)
			}
		}

		row = append(row, strings.Join(noteParts, "\n"))
		rows = append(rows, row)
	}

	return rows
}

func formatHours(value time.Duration) string {
	return fmt.Sprintf("%.2f", value.Hours())
}
