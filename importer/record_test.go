package importer

import "testing"

func TestRecordsFromRows_HeaderAliases(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Project", "Start_Datetime", "End Datetime", "Description"},
		{" dev ", "2026-03-02 09:00", "2026-03-02 10:00", "review"},
	}

	records := recordsFromRows(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.Project != "dev" {
		t.Fatalf("expected trimmed project, got %q", record.Project)
	}
	if record.Start != "2026-03-02 09:00" || record.End != "2026-03-02 10:00" {
		t.Fatalf("datetime aliases did not map: %+v", record)
	}
	if record.Notes != "review" {
		t.Fatalf("description alias did not map to notes, got %q", record.Notes)
	}
	if record.RowNumber != 2 {
		t.Fatalf("expected row number 2, got %d", record.RowNumber)
	}
}

func TestRecordsFromRows_IgnoresUnknownColumns(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Project", "Billable", "Minutes"},
		{"dev", "yes", "30"},
	}

	records := recordsFromRows(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Project != "dev" || records[0].Minutes != "30" {
		t.Fatalf("known columns must still map: %+v", records[0])
	}
}

func TestRecordsFromRows_EmptyInput(t *testing.T) {
	t.Parallel()

	if records := recordsFromRows(nil); len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if records := recordsFromRows([][]string{{"Project"}}); len(records) != 0 {
		t.Fatalf("header-only input must yield no records, got %d", len(records))
	}
}
