package cmd

import (
	"fmt"
	"strings"
	"time"

	"timecard/config"
	"timecard/internal/timeutil"
	"timecard/storage"
)

// openStore loads the validated config and opens the SQLite store, seeding
// the project registry with the configured defaults. An explicit --db value
// overrides the configured path.
func openStore(pathOverride string) (*storage.SQLiteStore, *config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Database.Path
	if strings.TrimSpace(pathOverride) != "" {
		path = pathOverride
	}

	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}

	if err := store.EnsureProjects(cfg.Projects.Defaults); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return store, cfg, nil
}

// resolveSummaryWindow turns optional --from/--to values into the inclusive
// date window, defaulting to the configured number of days ending today.
func resolveSummaryWindow(cfg *config.Config, fromRaw, toRaw string) (time.Time, time.Time, error) {
	today := timeutil.StartOfDay(time.Now())

	windowDays := cfg.Summary.WindowDays
	if windowDays < 1 {
		windowDays = 1
	}

	from := today.AddDate(0, 0, -(windowDays - 1))
	to := today

	if strings.TrimSpace(fromRaw) != "" {
		parsed, err := timeutil.ParseDay(fromRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from value %q (expected YYYY-MM-DD)", fromRaw)
		}
		from = parsed
	}
	if strings.TrimSpace(toRaw) != "" {
		parsed, err := timeutil.ParseDay(toRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to value %q (expected YYYY-MM-DD)", toRaw)
		}
		to = parsed
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range: --from must be <= --to")
	}

	return from, to, nil
}

func formatElapsed(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	totalMinutes := int(value.Minutes())
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}
