package cmd

import (
	"strings"
	"testing"
	"time"

	"timecard/timesheet"
)

func summaryFixture(t *testing.T) timesheet.Summary {
	t.Helper()

	day := func(d, hour int) time.Time {
		return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
	}

	entries := []timesheet.Entry{
		{Project: "Backend", Start: day(2, 9), End: day(2, 11), Notes: "api work"},
		{Project: "Meetings", Start: day(2, 13), End: day(2, 14), Notes: ""},
		{Project: "Backend", Start: day(3, 9), End: day(3, 12), Notes: "review"},
	}

	return timesheet.BuildSummary(entries,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	)
}

func TestRenderSummaryTable(t *testing.T) {
	t.Parallel()

	rendered := renderSummaryTable(summaryFixture(t))

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, two date rows and a total row, got %d lines:\n%s", len(lines), rendered)
	}

	header := lines[0]
	for _, want := range []string{"DATE", "Backend", "Meetings", "TOTAL"} {
		if !strings.Contains(header, want) {
			t.Fatalf("header missing %q: %q", want, header)
		}
	}

	if !strings.Contains(lines[1], "2026-03-02") || !strings.Contains(lines[1], "2.00") || !strings.Contains(lines[1], "3.00") {
		t.Fatalf("unexpected first date row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "2026-03-03") || !strings.Contains(lines[2], "-") {
		t.Fatalf("empty cell should render as '-': %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "TOTAL") || !strings.Contains(lines[3], "6.00") {
		t.Fatalf("unexpected total row: %q", lines[3])
	}
}

func TestRenderSummaryNotesSkipsEmptyCells(t *testing.T) {
	t.Parallel()

	notes := renderSummaryNotes(summaryFixture(t))

	want := "2026-03-02 Backend: api work\n2026-03-03 Backend: review\n"
	if notes != want {
		t.Fatalf("unexpected notes output:\ngot  %q\nwant %q", notes, want)
	}
}
