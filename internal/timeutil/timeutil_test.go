package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	input := time.Date(2026, 3, 1, 14, 37, 9, 123, time.Local)
	got := StartOfDay(input)

	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("unexpected date: %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	b := time.Date(2026, 3, 1, 18, 30, 0, 0, time.Local)
	c := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatalf("expected same day for %v and %v", a, b)
	}
	if SameDay(a, c) {
		t.Fatalf("expected different days for %v and %v", a, c)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	t.Parallel()

	day, err := ParseDay("2026-03-01")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if got := FormatDay(day); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
	if day.Hour() != 0 || day.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", day)
	}
}

func TestParseDayRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := ParseDay("01.03.2026"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}
