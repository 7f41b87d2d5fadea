// Package timesheet holds the aggregation core: work entries and the
// date-by-project summary built from them. It performs no I/O; persistence
// and presentation live in the surrounding packages.
package timesheet

import (
	"errors"
	"math"
	"time"

	"timecard/internal/timeutil"
)

// MaxManualMinutes bounds minute-based manual entries to less than one day.
const MaxManualMinutes = 24 * 60

var ErrMinutesOutOfRange = errors.New("minutes must be less than 24 hours")

// Entry is one recorded work interval for one project. Entries are treated
// as immutable values once created.
type Entry struct {
	ID      int64
	Project string
	Start   time.Time
	End     time.Time
	Notes   string
}

// Duration returns End minus Start. An interval with End before Start yields
// a negative duration; BuildSummary passes such values through unchanged.
func (e Entry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// EntryFromMinutes builds a manual back-fill entry starting at midnight of
// day and lasting the given number of minutes. Whole minutes map to
// hour/minute fields, the fractional part is rounded to whole seconds.
// Negative minutes clamp to a zero-length interval. Values that reach 24
// hours, before or after rounding, are rejected.
func EntryFromMinutes(project string, minutes float64, notes string, day time.Time) (Entry, error) {
	if minutes >= MaxManualMinutes {
		return Entry{}, ErrMinutesOutOfRange
	}

	start := timeutil.StartOfDay(day)
	end := start
	if minutes >= 0 {
		whole := int(math.Floor(minutes))
		seconds := int(math.Round((minutes - math.Floor(minutes)) * 60))
		// Rounding can push the seconds into the next minute.
		if seconds == 60 {
			whole++
			seconds = 0
		}
		if whole >= MaxManualMinutes {
			return Entry{}, ErrMinutesOutOfRange
		}
		end = time.Date(day.Year(), day.Month(), day.Day(), whole/60, whole%60, seconds, 0, day.Location())
	}

	return Entry{
		Project: project,
		Start:   start,
		End:     end,
		Notes:   notes,
	}, nil
}
