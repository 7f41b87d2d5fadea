package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timecard/internal/timeutil"
	"timecard/timesheet"
)

var (
	addProject string
	addMinutes float64
	addDate    string
	addNotes   string
	addDBPath  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Back-fill an entry by minutes for a given day",
	Long: `Record a manual entry without running the timer.

The entry starts at midnight of the given day and lasts the given number of
minutes (fractions are rounded to whole seconds). Minutes must stay below
24 hours.`,
	Example: `
  # 90 minutes of meetings today
  timecard add --project "Meetings" --minutes 90

  # Back-fill a past day with notes
  timecard add --project "Backend" --minutes 45.5 --date 2026-03-02 --notes "code review"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveEntryDay(addDate, time.Now())
		if err != nil {
			return err
		}

		entry, err := timesheet.EntryFromMinutes(addProject, addMinutes, addNotes, day)
		if err != nil {
			return err
		}

		store, _, err := openStore(addDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.AddProject(addProject); err != nil {
			return err
		}
		if _, err := store.InsertEntry(entry); err != nil {
			return err
		}

		fmt.Printf("Added %s on %q for %s\n",
			formatElapsed(entry.Duration()),
			entry.Project,
			timeutil.FormatDay(entry.Start),
		)
		return nil
	},
}

func resolveEntryDay(raw string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return timeutil.StartOfDay(fallback), nil
	}

	day, err := timeutil.ParseDay(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date value %q (expected YYYY-MM-DD)", raw)
	}
	return day, nil
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "Project the entry belongs to")
	addCmd.Flags().Float64VarP(&addMinutes, "minutes", "m", 0, "Worked minutes (may be fractional)")
	addCmd.Flags().StringVar(&addDate, "date", "", "Day of the entry, format YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Notes for the entry")
	addCmd.Flags().StringVar(&addDBPath, "db", "", "Path to local SQLite database (default from config)")

	_ = addCmd.MarkFlagRequired("project")
	_ = addCmd.MarkFlagRequired("minutes")
}
