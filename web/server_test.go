package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"timecard/config"
	"timecard/storage"
	"timecard/timesheet"
)

func openTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "web_test.db")
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func insertEntries(t *testing.T, store *storage.SQLiteStore, entries []timesheet.Entry) {
	t.Helper()

	if _, err := store.InsertEntries(entries); err != nil {
		t.Fatalf("insert entries: %v", err)
	}
}

func testConfig() config.Config {
	return config.Config{
		Database: config.DatabaseConfig{Path: "unused"},
		Summary:  config.SummaryConfig{WindowDays: 14},
	}
}

func TestServer_SummaryPageRendersGrid(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	insertEntries(t, store, []timesheet.Entry{
		{
			Project: "dev",
			Start:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			End:     time.Date(2026, 3, 2, 11, 0, 0, 0, time.Local),
			Notes:   "review",
		},
	})

	ts := httptest.NewServer(NewServer(store, testConfig()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/summary?from=2026-03-01&to=2026-03-07")
	if err != nil {
		t.Fatalf("request summary page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)
	if !strings.Contains(page, "2026-03-02") {
		t.Fatalf("expected date in page, got:\n%s", page)
	}
	if !strings.Contains(page, "dev") || !strings.Contains(page, "2.00") {
		t.Fatalf("expected project column with hours, got:\n%s", page)
	}
}

func TestServer_SummaryPageRejectsInvalidRange(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(openTestStore(t), testConfig()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/summary?from=2026-03-07&to=2026-03-01")
	if err != nil {
		t.Fatalf("request summary page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServer_SummaryPageRejectsMalformedDate(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(openTestStore(t), testConfig()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/summary?from=03.01.2026")
	if err != nil {
		t.Fatalf("request summary page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServer_APISummaryReturnsCells(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	insertEntries(t, store, []timesheet.Entry{
		{
			Project: "dev",
			Start:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
			End:     time.Date(2026, 3, 2, 10, 30, 0, 0, time.Local),
		},
		{
			// Outside the requested window; must not show up.
			Project: "old",
			Start:   time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local),
			End:     time.Date(2026, 1, 10, 10, 0, 0, 0, time.Local),
		},
	})

	ts := httptest.NewServer(NewServer(store, testConfig()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/summary?from=2026-03-01&to=2026-03-07")
	if err != nil {
		t.Fatalf("request api summary: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var decoded SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(decoded.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %+v", decoded.Cells)
	}
	cell := decoded.Cells[0]
	if cell.Project != "dev" || cell.Hours != 1.5 {
		t.Fatalf("unexpected cell: %+v", cell)
	}
	if len(decoded.Projects) != 1 || decoded.Projects[0] != "dev" {
		t.Fatalf("out-of-window project leaked: %v", decoded.Projects)
	}
}

func TestServer_RootRedirectsToSummary(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(openTestStore(t), testConfig()))
	defer ts.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("request root: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/summary" {
		t.Fatalf("unexpected redirect target: %s", got)
	}
}
