package web

import (
	"fmt"
	"math"
	"time"

	"timecard/internal/timeutil"
	"timecard/timesheet"
)

type SummaryPage struct {
	Title      string
	From       string
	To         string
	Projects   []string
	Rows       []SummaryRow
	TotalHours string
}

type SummaryRow struct {
	Date     string
	Cells    []SummaryCell
	DayHours string
}

type SummaryCell struct {
	Hours string
	Notes string
}

// BuildSummaryPage turns the aggregated summary into the template view: one
// row per date, one cell per project column, with per-day and overall totals.
func BuildSummaryPage(summary timesheet.Summary, from, to time.Time) SummaryPage {
	page := SummaryPage{
		Title:    "timecard summary",
		From:     timeutil.FormatDay(from),
		To:       timeutil.FormatDay(to),
		Projects: summary.Projects,
		Rows:     make([]SummaryRow, 0, len(summary.Dates)),
	}

	var total time.Duration
	for _, date := range summary.Dates {
		row := SummaryRow{
			Date:  date,
			Cells: make([]SummaryCell, 0, len(summary.Projects)),
		}

		var dayTotal time.Duration
		for _, project := range summary.Projects {
			cell, ok := summary.Total(date, project)
			if !ok {
				row.Cells = append(row.Cells, SummaryCell{})
				continue
			}
			dayTotal += cell.HoursWorked
			row.Cells = append(row.Cells, SummaryCell{
				Hours: formatHours(cell.HoursWorked),
				Notes: cell.Notes,
			})
		}

		row.DayHours = formatHours(dayTotal)
		total += dayTotal
		page.Rows = append(page.Rows, row)
	}

	page.TotalHours = formatHours(total)
	return page
}

type SummaryResponse struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Dates    []string          `json:"dates"`
	Projects []string          `json:"projects"`
	Cells    []SummaryCellJSON `json:"cells"`
}

type SummaryCellJSON struct {
	Date    string  `json:"date"`
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
	Notes   string  `json:"notes,omitempty"`
}

// BuildSummaryResponse flattens the nested mapping for the JSON API: one
// element per populated (date, project) cell, in deterministic order.
func BuildSummaryResponse(summary timesheet.Summary, from, to time.Time) SummaryResponse {
	response := SummaryResponse{
		From:     timeutil.FormatDay(from),
		To:       timeutil.FormatDay(to),
		Dates:    summary.Dates,
		Projects: summary.Projects,
		Cells:    make([]SummaryCellJSON, 0, len(summary.Dates)*2),
	}

	for _, date := range summary.Dates {
		for _, project := range summary.Projects {
			cell, ok := summary.Total(date, project)
			if !ok {
				continue
			}
			response.Cells = append(response.Cells, SummaryCellJSON{
				Date:    date,
				Project: project,
				Hours:   roundHours(cell.HoursWorked),
				Notes:   cell.Notes,
			})
		}
	}

	return response
}

func formatHours(value time.Duration) string {
	return fmt.Sprintf("%.2f", value.Hours())
}

func roundHours(value time.Duration) float64 {
	return math.Round(value.Hours()*100) / 100
}
