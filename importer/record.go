package importer

import "strings"

// Record is one parsed import row with its cells assigned to the columns the
// mapper understands. Unrecognized columns are dropped at read time; values
// arrive trimmed.
type Record struct {
	RowNumber int
	Project   string
	Start     string
	End       string
	Date      string
	Minutes   string
	Notes     string
}

// fieldForHeader resolves a raw header cell to the Record field it fills.
// Matching ignores case, spaces, dashes and underscores, so "Start_Datetime"
// and "start datetime" both feed Start.
func fieldForHeader(header string) func(*Record, string) {
	normalized := strings.ToLower(header)
	for _, cut := range []string{" ", "-", "_"} {
		normalized = strings.ReplaceAll(normalized, cut, "")
	}

	switch normalized {
	case "project":
		return func(r *Record, v string) { r.Project = v }
	case "start", "startdatetime":
		return func(r *Record, v string) { r.Start = v }
	case "end", "enddatetime":
		return func(r *Record, v string) { r.End = v }
	case "date", "day":
		return func(r *Record, v string) { r.Date = v }
	case "minutes", "durationminutes":
		return func(r *Record, v string) { r.Minutes = v }
	case "notes", "description", "comment":
		return func(r *Record, v string) { r.Notes = v }
	default:
		return nil
	}
}

// recordsFromRows applies the header row to every following row. Rows shorter
// than the header leave the remaining fields empty. Row numbers count from 1
// at the header, matching what editors show.
func recordsFromRows(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}

	setters := make([]func(*Record, string), len(rows[0]))
	for i, header := range rows[0] {
		setters[i] = fieldForHeader(header)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record := Record{RowNumber: i + 2}
		for col, set := range setters {
			if set == nil || col >= len(row) {
				continue
			}
			set(&record, strings.TrimSpace(row[col]))
		}
		records = append(records, record)
	}

	return records
}
