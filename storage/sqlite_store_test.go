package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"timecard/timesheet"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "timecard_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustParseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestSQLiteStore_InsertAndListEntries(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	second := timesheet.Entry{
		Project: "meetings",
		Start:   mustParseRFC3339(t, "2026-01-23T10:00:00+01:00"),
		End:     mustParseRFC3339(t, "2026-01-23T11:00:00+01:00"),
		Notes:   "standup",
	}
	first := timesheet.Entry{
		Project: "dev",
		Start:   mustParseRFC3339(t, "2026-01-23T08:00:00+01:00"),
		End:     mustParseRFC3339(t, "2026-01-23T09:30:00+01:00"),
	}

	// Insert out of order; listing must come back ordered by start time.
	if _, err := store.InsertEntry(second); err != nil {
		t.Fatalf("insert entry: %v", err)
	}
	if _, err := store.InsertEntry(first); err != nil {
		t.Fatalf("insert entry: %v", err)
	}

	entries, err := store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Project != "dev" || entries[1].Project != "meetings" {
		t.Fatalf("unexpected order: %s, %s", entries[0].Project, entries[1].Project)
	}
	if !entries[0].Start.Equal(first.Start) || !entries[0].End.Equal(first.End) {
		t.Fatalf("timestamps did not round-trip: %+v", entries[0])
	}
	if entries[1].Notes != "standup" {
		t.Fatalf("unexpected notes: %q", entries[1].Notes)
	}
	if entries[0].ID <= 0 || entries[1].ID <= 0 {
		t.Fatalf("expected positive row ids, got %d and %d", entries[0].ID, entries[1].ID)
	}
}

func TestSQLiteStore_InsertEntriesBatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	entries := []timesheet.Entry{
		{
			Project: "dev",
			Start:   mustParseRFC3339(t, "2026-01-24T08:00:00+01:00"),
			End:     mustParseRFC3339(t, "2026-01-24T09:00:00+01:00"),
		},
		{
			Project: "dev",
			Start:   mustParseRFC3339(t, "2026-01-24T09:30:00+01:00"),
			End:     mustParseRFC3339(t, "2026-01-24T10:00:00+01:00"),
		},
	}

	inserted, err := store.InsertEntries(entries)
	if err != nil {
		t.Fatalf("insert entries: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}
}

func TestSQLiteStore_ListEntriesBetween(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	days := []string{
		"2026-01-22T09:00:00+01:00",
		"2026-01-23T09:00:00+01:00",
		"2026-01-24T23:30:00+01:00",
		"2026-01-25T09:00:00+01:00",
	}
	for _, day := range days {
		start := mustParseRFC3339(t, day)
		if _, err := store.InsertEntry(timesheet.Entry{
			Project: "dev",
			Start:   start,
			End:     start.Add(time.Hour),
		}); err != nil {
			t.Fatalf("insert entry: %v", err)
		}
	}

	from := mustParseRFC3339(t, "2026-01-23T15:00:00+01:00")
	to := mustParseRFC3339(t, "2026-01-24T08:00:00+01:00")

	entries, err := store.ListEntriesBetween(from, to)
	if err != nil {
		t.Fatalf("list entries between: %v", err)
	}

	// Window is inclusive per calendar date: the 23rd morning entry and the
	// 24th late-evening entry are in, the 22nd and 25th are out.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Start.Day() != 23 || entries[1].Start.Day() != 24 {
		t.Fatalf("unexpected window contents: %v, %v", entries[0].Start, entries[1].Start)
	}
}

func TestSQLiteStore_DeleteEntry(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	id, err := store.InsertEntry(timesheet.Entry{
		Project: "dev",
		Start:   mustParseRFC3339(t, "2026-01-23T08:00:00+01:00"),
		End:     mustParseRFC3339(t, "2026-01-23T09:00:00+01:00"),
	})
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}

	if err := store.DeleteEntry(id); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if err := store.DeleteEntry(id); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestSQLiteStore_ProjectRegistry(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	added, err := store.AddProject("lunch")
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	if !added {
		t.Fatalf("expected project to be added")
	}

	added, err = store.AddProject("lunch")
	if err != nil {
		t.Fatalf("add duplicate project: %v", err)
	}
	if added {
		t.Fatalf("expected duplicate add to be ignored")
	}

	if err := store.EnsureProjects([]string{"meetings", "lunch"}); err != nil {
		t.Fatalf("ensure projects: %v", err)
	}

	names, err := store.ListProjects()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(names) != 2 || names[0] != "lunch" || names[1] != "meetings" {
		t.Fatalf("unexpected projects: %v", names)
	}

	has, err := store.HasProject("lunch")
	if err != nil {
		t.Fatalf("has project: %v", err)
	}
	if !has {
		t.Fatalf("expected lunch to be registered")
	}

	removed, err := store.RemoveProject("lunch")
	if err != nil {
		t.Fatalf("remove project: %v", err)
	}
	if !removed {
		t.Fatalf("expected lunch to be removed")
	}

	has, err = store.HasProject("lunch")
	if err != nil {
		t.Fatalf("has project: %v", err)
	}
	if has {
		t.Fatalf("expected lunch to be gone")
	}
}

func TestSQLiteStore_CompleteSession(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	start := mustParseRFC3339(t, "2026-01-23T08:00:00+01:00")
	if err := store.StartSession(Session{Project: "dev", Start: start}); err != nil {
		t.Fatalf("start session: %v", err)
	}

	entry := timesheet.Entry{
		Project: "dev",
		Start:   start,
		End:     start.Add(time.Hour),
	}
	id, err := store.CompleteSession(entry)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive row id, got %d", id)
	}

	_, running, err := store.ActiveSession()
	if err != nil {
		t.Fatalf("active session: %v", err)
	}
	if running {
		t.Fatalf("expected session to be cleared")
	}

	entries, err := store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", len(entries))
	}

	// Without a session the entry must not be written either.
	if _, err := store.CompleteSession(entry); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	entries, err = store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected still 1 entry, got %d", len(entries))
	}
}

func TestSQLiteStore_SingleActiveSession(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	start := mustParseRFC3339(t, "2026-01-23T08:00:00+01:00")
	if err := store.StartSession(Session{Project: "dev", Start: start, Notes: "focus"}); err != nil {
		t.Fatalf("start session: %v", err)
	}

	err := store.StartSession(Session{Project: "meetings", Start: start})
	if !errors.Is(err, ErrSessionRunning) {
		t.Fatalf("expected ErrSessionRunning, got %v", err)
	}

	session, running, err := store.ActiveSession()
	if err != nil {
		t.Fatalf("active session: %v", err)
	}
	if !running {
		t.Fatalf("expected a running session")
	}
	if session.Project != "dev" || !session.Start.Equal(start) || session.Notes != "focus" {
		t.Fatalf("unexpected session: %+v", session)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if err := store.ClearSession(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	_, running, err = store.ActiveSession()
	if err != nil {
		t.Fatalf("active session: %v", err)
	}
	if running {
		t.Fatalf("expected no running session")
	}
}
