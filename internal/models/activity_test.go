// ABOUTME: Tests for the Activity model.
// ABOUTME: Validates constructor defaults and builder methods.
package models

import (
	"testing"
	"time"
)

func TestNewActivity(t *testing.T) {
	a := NewActivity("Running", 30, 300)

	if a.ID != 0 {
		t.Errorf("ID = %d, want 0 (unassigned)", a.ID)
	}
	if a.Type != "Running" {
		t.Errorf("Type = %s, want Running", a.Type)
	}
	if a.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %d, want 30", a.DurationMinutes)
	}
	if a.CaloriesBurned != 300 {
		t.Errorf("CaloriesBurned = %d, want 300", a.CaloriesBurned)
	}
	if a.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if a.DistanceKm != nil {
		t.Error("expected DistanceKm to default to nil")
	}
	if a.Steps != nil {
		t.Error("expected Steps to default to nil")
	}
}

func TestNewActivityTimestampMillisecondPrecision(t *testing.T) {
	a := NewActivity("Running", 30, 300)

	if a.Timestamp.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("Timestamp has sub-millisecond precision: %v", a.Timestamp)
	}
}

func TestActivityBuilders(t *testing.T) {
	ts := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)
	a := NewActivity("Running", 30, 300).
		WithDistance(5.0).
		WithSteps(6500).
		WithNotes("morning run").
		WithTimestamp(ts)

	if a.DistanceKm == nil || *a.DistanceKm != 5.0 {
		t.Error("expected DistanceKm to be 5.0")
	}
	if a.Steps == nil || *a.Steps != 6500 {
		t.Error("expected Steps to be 6500")
	}
	if a.Notes == nil || *a.Notes != "morning run" {
		t.Error("expected Notes to be set")
	}
	if !a.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", a.Timestamp, ts)
	}
}

func TestWithTimestampTruncates(t *testing.T) {
	ts := time.Date(2025, 6, 1, 7, 30, 0, 123456789, time.UTC)
	a := NewActivity("Running", 30, 300).WithTimestamp(ts)

	want := time.Date(2025, 6, 1, 7, 30, 0, 123000000, time.UTC)
	if !a.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", a.Timestamp, want)
	}
}
