// Package web serves a localhost-only single-user summary view; it
// intentionally has no auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"timecard/config"
	"timecard/internal/timeutil"
	"timecard/storage"
	"timecard/timesheet"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store *storage.SQLiteStore
	cfg   config.Config
	mux   *http.ServeMux
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) http.Handler {
	server := &Server{
		store: store,
		cfg:   cfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /summary", server.handleSummary)
	mux.HandleFunc("GET /api/summary", server.handleAPISummary)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/summary", http.StatusFound)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	window, err := s.resolveWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := s.buildSummary(window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := BuildSummaryPage(summary, window.from, window.to)
	if err := renderTemplate(w, "summary.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	window, err := s.resolveWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := s.buildSummary(window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BuildSummaryResponse(summary, window.from, window.to)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type summaryWindow struct {
	from time.Time
	to   time.Time
}

// resolveWindow reads from/to query parameters (YYYY-MM-DD). Missing values
// default to the configured window ending today.
func (s *Server) resolveWindow(r *http.Request) (summaryWindow, error) {
	today := timeutil.StartOfDay(time.Now())

	windowDays := s.cfg.Summary.WindowDays
	if windowDays < 1 {
		windowDays = 1
	}

	window := summaryWindow{
		from: today.AddDate(0, 0, -(windowDays - 1)),
		to:   today,
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		parsed, err := timeutil.ParseDay(raw)
		if err != nil {
			return summaryWindow{}, fmt.Errorf("invalid from date (expected YYYY-MM-DD): %s", raw)
		}
		window.from = parsed
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		parsed, err := timeutil.ParseDay(raw)
		if err != nil {
			return summaryWindow{}, fmt.Errorf("invalid to date (expected YYYY-MM-DD): %s", raw)
		}
		window.to = parsed
	}

	if window.to.Before(window.from) {
		return summaryWindow{}, fmt.Errorf("invalid range: from must be <= to")
	}

	return window, nil
}

func (s *Server) buildSummary(window summaryWindow) (timesheet.Summary, error) {
	entries, err := s.store.ListEntriesBetween(window.from, window.to)
	if err != nil {
		return timesheet.Summary{}, fmt.Errorf("load entries: %w", err)
	}
	return timesheet.BuildSummary(entries, window.from, window.to), nil
}

func renderTemplate(w http.ResponseWriter, name string, data any) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}
	return nil
}
