package timesheet

import (
	"sort"
	"time"

	"timecard/internal/timeutil"
)

// ProjectDayTotal is one aggregated cell: the total worked duration and the
// newline-joined notes for one project on one day.
type ProjectDayTotal struct {
	HoursWorked time.Duration
	Notes       string
}

// Summary is the aggregated date-by-project view over an inclusive date
// window. Dates and Projects list the distinct in-window values, both sorted
// ascending. A Summary is built once per call and never mutated afterwards.
type Summary struct {
	ByDateProject map[string]map[string]ProjectDayTotal
	Dates         []string
	Projects      []string
}

// Total returns the cell for an ISO date and project name. The second return
// value is false when no in-window entry produced that cell.
func (s Summary) Total(date, project string) (ProjectDayTotal, bool) {
	day, ok := s.ByDateProject[date]
	if !ok {
		return ProjectDayTotal{}, false
	}
	total, ok := day[project]
	return total, ok
}

// BuildSummary groups entries by calendar date and project and sums their
// durations. An entry belongs to the calendar date of its Start; intervals
// that cross midnight stay entirely on the start date. Entries whose date
// falls outside the inclusive [startDate, endDate] window are skipped and
// contribute nothing, not even their project or date names. Non-empty notes
// are appended per cell, one per line, in slice order.
//
// The transform is pure and total: it never fails, holds no state between
// calls, and only reads the entries slice.
func BuildSummary(entries []Entry, startDate, endDate time.Time) Summary {
	byDateProject := make(map[string]map[string]ProjectDayTotal)
	dateSet := make(map[string]struct{})
	projectSet := make(map[string]struct{})

	// ISO day keys compare correctly as strings, so the window filter is a
	// plain string range check.
	windowStart := timeutil.FormatDay(startDate)
	windowEnd := timeutil.FormatDay(endDate)

	for _, entry := range entries {
		dateWorked := timeutil.FormatDay(entry.Start)
		if dateWorked < windowStart || dateWorked > windowEnd {
			continue
		}

		dateSet[dateWorked] = struct{}{}
		projectSet[entry.Project] = struct{}{}

		day, ok := byDateProject[dateWorked]
		if !ok {
			day = make(map[string]ProjectDayTotal)
			byDateProject[dateWorked] = day
		}

		cell := day[entry.Project]
		cell.HoursWorked += entry.Duration()
		if entry.Notes != "" {
			if cell.Notes == "" {
				cell.Notes = entry.Notes
			} else {
				cell.Notes += "\n" + entry.Notes
			}
		}
		day[entry.Project] = cell
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	projects := make([]string, 0, len(projectSet))
	for project := range projectSet {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	return Summary{
		ByDateProject: byDateProject,
		Dates:         dates,
		Projects:      projects,
	}
}
