// Package tracker implements the start/stop work timer on top of the store.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"timecard/storage"
	"timecard/timesheet"
)

var (
	ErrSessionRunning  = errors.New("a work session is already running")
	ErrNoActiveSession = errors.New("no work session is running")
	ErrUnknownProject  = errors.New("project is not registered")
)

type Service struct {
	store *storage.SQLiteStore
}

func NewService(store *storage.SQLiteStore) *Service {
	return &Service{store: store}
}

// Start begins tracking work on a registered project. Only one session can
// run at a time.
func (s *Service) Start(project, notes string, now time.Time) error {
	known, err := s.store.HasProject(project)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownProject, project)
	}

	err = s.store.StartSession(storage.Session{Project: project, Start: now, Notes: notes})
	if errors.Is(err, storage.ErrSessionRunning) {
		return ErrSessionRunning
	}
	return err
}

// Stop closes the running session into a persisted entry and returns it.
// Clearing the session and persisting the entry happen in one transaction,
// so a failed stop can be retried without recording the interval twice.
func (s *Service) Stop(now time.Time) (timesheet.Entry, error) {
	session, running, err := s.store.ActiveSession()
	if err != nil {
		return timesheet.Entry{}, err
	}
	if !running {
		return timesheet.Entry{}, ErrNoActiveSession
	}

	entry := timesheet.Entry{
		Project: session.Project,
		Start:   session.Start,
		End:     now,
		Notes:   session.Notes,
	}

	id, err := s.store.CompleteSession(entry)
	if errors.Is(err, storage.ErrNoSession) {
		return timesheet.Entry{}, ErrNoActiveSession
	}
	if err != nil {
		return timesheet.Entry{}, err
	}
	entry.ID = id
	return entry, nil
}

// Status describes the running session at a point in time.
type Status struct {
	Project string
	Start   time.Time
	Elapsed time.Duration
	Notes   string
}

func (s *Service) Status(now time.Time) (Status, error) {
	session, running, err := s.store.ActiveSession()
	if err != nil {
		return Status{}, err
	}
	if !running {
		return Status{}, ErrNoActiveSession
	}

	return Status{
		Project: session.Project,
		Start:   session.Start,
		Elapsed: now.Sub(session.Start),
		Notes:   session.Notes,
	}, nil
}
