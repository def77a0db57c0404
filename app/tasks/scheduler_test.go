package tasks

import (
	"testing"
	"time"
)

func TestNextRunLaterToday(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}

	now := time.Date(2026, 3, 10, 6, 0, 0, 0, loc)
	next := nextRun(now, 7, 30)

	expected := time.Date(2026, 3, 10, 7, 30, 0, 0, loc)
	if !next.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, next)
	}
}

func TestNextRunRollsToTomorrow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, loc)
	next := nextRun(now, 7, 30)

	expected := time.Date(2026, 3, 11, 7, 30, 0, 0, loc)
	if !next.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, next)
	}
}

func TestNextRunExactFireTimeRollsOver(t *testing.T) {
	now := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
	next := nextRun(now, 7, 30)

	if !next.After(now) {
		t.Errorf("Expected next run strictly after now, got %v", next)
	}
	if next.Day() != 11 {
		t.Errorf("Expected rollover to next day, got %v", next)
	}
}
