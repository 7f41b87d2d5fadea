package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"timecard/timesheet"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, entries []timesheet.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Project", "Start", "End", "Hours", "Notes"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			entry.Project,
			entry.Start.Format(time.RFC3339),
			entry.End.Format(time.RFC3339),
			formatHours(entry.Duration()),
			entry.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
