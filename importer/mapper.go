package importer

import (
	"fmt"

	"timecard/timesheet"
)

// MapResult reports what happened to the rows of one file.
type MapResult struct {
	Entries []timesheet.Entry
	Skipped []SkippedRow
}

type SkippedRow struct {
	RowNumber int
	Reason    string
}

// MapRecords turns parsed rows into timesheet entries. A row either carries
// explicit start/end datetimes, or a date plus a minute count that is
// resolved through EntryFromMinutes. Rows without a project, or without
// either time form, are skipped with a reason instead of failing the whole
// file.
func MapRecords(records []Record) MapResult {
	result := MapResult{
		Entries: make([]timesheet.Entry, 0, len(records)),
	}

	for _, record := range records {
		if record.Project == "" {
			result.Skipped = append(result.Skipped, SkippedRow{
				RowNumber: record.RowNumber,
				Reason:    "missing project",
			})
			continue
		}

		if record.Start != "" || record.End != "" {
			entry, err := mapIntervalRow(record.Project, record.Start, record.End, record.Notes)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedRow{RowNumber: record.RowNumber, Reason: err.Error()})
				continue
			}
			result.Entries = append(result.Entries, entry)
			continue
		}

		if record.Date == "" || record.Minutes == "" {
			result.Skipped = append(result.Skipped, SkippedRow{
				RowNumber: record.RowNumber,
				Reason:    "needs start/end datetimes or date plus minutes",
			})
			continue
		}

		entry, err := mapMinutesRow(record.Project, record.Date, record.Minutes, record.Notes)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{RowNumber: record.RowNumber, Reason: err.Error()})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}

func mapIntervalRow(project, startRaw, endRaw, notes string) (timesheet.Entry, error) {
	start, err := parseDateTime(startRaw)
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := parseDateTime(endRaw)
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("invalid end: %w", err)
	}
	if end.Before(start) {
		return timesheet.Entry{}, fmt.Errorf("end before start")
	}

	return timesheet.Entry{
		Project: project,
		Start:   start,
		End:     end,
		Notes:   notes,
	}, nil
}

func mapMinutesRow(project, dateRaw, minutesRaw, notes string) (timesheet.Entry, error) {
	day, err := parseDate(dateRaw)
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("invalid date: %w", err)
	}
	minutes, err := parseMinutes(minutesRaw)
	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("invalid minutes: %w", err)
	}

	entry, err := timesheet.EntryFromMinutes(project, minutes, notes, day)
	if err != nil {
		return timesheet.Entry{}, err
	}
	return entry, nil
}
