package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timecard/internal/timeutil"
	"timecard/timesheet"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrSessionRunning = errors.New("a work session is already running")
	ErrNoSession      = errors.New("no work session is running")
)

// Session is the ephemeral in-progress timer. It is kept apart from the
// persisted entry model; stopping a session is what creates an entry.
type Session struct {
	Project string
	Start   time.Time
	Notes   string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project TEXT NOT NULL CHECK(project <> ''),
	start_datetime TEXT NOT NULL,
	end_datetime TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
	name TEXT PRIMARY KEY CHECK(name <> '')
);

CREATE TABLE IF NOT EXISTS active_session (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	project TEXT NOT NULL CHECK(project <> ''),
	start_datetime TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertEntry stores one entry and returns its row ID.
func (s *SQLiteStore) InsertEntry(entry timesheet.Entry) (int64, error) {
	const insertStmt = `
INSERT INTO entries (project, start_datetime, end_datetime, notes)
VALUES (?, ?, ?, ?);`

	res, err := s.db.Exec(
		insertStmt,
		entry.Project,
		entry.Start.Format(time.RFC3339),
		entry.End.Format(time.RFC3339),
		entry.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}
	return id, nil
}

// InsertEntries stores a batch of entries in one transaction and returns the
// number of rows written.
func (s *SQLiteStore) InsertEntries(entries []timesheet.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO entries (project, start_datetime, end_datetime, notes)
VALUES (?, ?, ?, ?);`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, entry := range entries {
		if _, err := stmt.Exec(
			entry.Project,
			entry.Start.Format(time.RFC3339),
			entry.End.Format(time.RFC3339),
			entry.Notes,
		); err != nil {
			_ = tx.Rollback()
			return inserted, fmt.Errorf("insert entry: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}

// ListEntries returns all entries ordered by start time, then insertion
// order.
func (s *SQLiteStore) ListEntries() ([]timesheet.Entry, error) {
	const query = `
SELECT id, project, start_datetime, end_datetime, notes
FROM entries
ORDER BY start_datetime, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListEntriesBetween returns entries whose start falls on a calendar date
// within the inclusive [from, to] window, ordered like ListEntries. Starts
// are stored as RFC3339 text in one zone, so the window is the text range
// from from's midnight up to the midnight after to.
func (s *SQLiteStore) ListEntriesBetween(from, to time.Time) ([]timesheet.Entry, error) {
	const query = `
SELECT id, project, start_datetime, end_datetime, notes
FROM entries
WHERE start_datetime >= ? AND start_datetime < ?
ORDER BY start_datetime, id;
`

	lower := timeutil.StartOfDay(from).Format(time.RFC3339)
	upper := timeutil.StartOfDay(to).AddDate(0, 0, 1).Format(time.RFC3339)

	rows, err := s.db.Query(query, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("query entries between %s and %s: %w", lower, upper, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]timesheet.Entry, error) {
	entries := make([]timesheet.Entry, 0, 256)
	for rows.Next() {
		var (
			entry    timesheet.Entry
			startRaw string
			endRaw   string
			err      error
		)
		if err := rows.Scan(&entry.ID, &entry.Project, &startRaw, &endRaw, &entry.Notes); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		entry.Start, err = time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return nil, fmt.Errorf("parse start datetime %q: %w", startRaw, err)
		}
		entry.End, err = time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return nil, fmt.Errorf("parse end datetime %q: %w", endRaw, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// DeleteEntry removes the entry with the given ID.
func (s *SQLiteStore) DeleteEntry(id int64) error {
	if id <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}

	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// AddProject registers a project name. The second return value is false when
// the name was already registered.
func (s *SQLiteStore) AddProject(name string) (bool, error) {
	res, err := s.db.Exec(`INSERT OR IGNORE INTO projects (name) VALUES (?);`, name)
	if err != nil {
		return false, fmt.Errorf("add project %q: %w", name, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read inserted row count: %w", err)
	}
	return rowsAffected > 0, nil
}

// EnsureProjects registers any of the given names that are missing. Used to
// seed the registry with configured defaults.
func (s *SQLiteStore) EnsureProjects(names []string) error {
	for _, name := range names {
		if _, err := s.AddProject(name); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) ListProjects() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM projects ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return names, nil
}

func (s *SQLiteStore) HasProject(name string) (bool, error) {
	var found int
	err := s.db.QueryRow(`SELECT 1 FROM projects WHERE name = ?;`, name).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query project %q: %w", name, err)
	}
	return true, nil
}

// RemoveProject unregisters a project name. Existing entries keep their
// project label; the registry only drives selection for new work.
func (s *SQLiteStore) RemoveProject(name string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE name = ?;`, name)
	if err != nil {
		return false, fmt.Errorf("remove project %q: %w", name, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rowsAffected > 0, nil
}

// StartSession records the in-progress timer. Only one session may run at a
// time.
func (s *SQLiteStore) StartSession(session Session) error {
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO active_session (id, project, start_datetime, notes) VALUES (1, ?, ?, ?);`,
		session.Project,
		session.Start.Format(time.RFC3339),
		session.Notes,
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read inserted row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSessionRunning
	}
	return nil
}

// ActiveSession returns the running session, if any.
func (s *SQLiteStore) ActiveSession() (Session, bool, error) {
	var (
		session  Session
		startRaw string
	)

	err := s.db.QueryRow(`SELECT project, start_datetime, notes FROM active_session WHERE id = 1;`).
		Scan(&session.Project, &startRaw, &session.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("query active session: %w", err)
	}

	session.Start, err = time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return Session{}, false, fmt.Errorf("parse session start %q: %w", startRaw, err)
	}

	return session, true, nil
}

// CompleteSession clears the running session and persists the entry built
// from it in one transaction, returning the entry's row ID. Either both
// happen or neither does.
func (s *SQLiteStore) CompleteSession(entry timesheet.Entry) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM active_session WHERE id = 1;`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("clear session: %w", err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read deleted row count: %w", err)
	}
	if rowsAffected == 0 {
		_ = tx.Rollback()
		return 0, ErrNoSession
	}

	res, err = tx.Exec(
		`INSERT INTO entries (project, start_datetime, end_datetime, notes) VALUES (?, ?, ?, ?);`,
		entry.Project,
		entry.Start.Format(time.RFC3339),
		entry.End.Format(time.RFC3339),
		entry.Notes,
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// ClearSession removes the running session.
func (s *SQLiteStore) ClearSession() error {
	res, err := s.db.Exec(`DELETE FROM active_session WHERE id = 1;`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNoSession
	}
	return nil
}
