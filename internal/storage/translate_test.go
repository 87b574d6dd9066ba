// ABOUTME: Tests for the translation layer.
// ABOUTME: Verifies exact round-trips in both directions.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

func sampleActivity() *models.Activity {
	distance := 5.0
	steps := 6500
	notes := "morning run"
	return &models.Activity{
		ID:              7,
		Type:            "Running",
		DurationMinutes: 30,
		CaloriesBurned:  300,
		DistanceKm:      &distance,
		Steps:           &steps,
		Timestamp:       time.Date(2026, 8, 30, 7, 15, 0, 250*int(time.Millisecond), time.UTC),
		Notes:           &notes,
	}
}

func activitiesEqual(a, b *models.Activity) bool {
	if a.ID != b.ID || a.Type != b.Type ||
		a.DurationMinutes != b.DurationMinutes || a.CaloriesBurned != b.CaloriesBurned {
		return false
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return false
	}
	if (a.DistanceKm == nil) != (b.DistanceKm == nil) ||
		(a.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm) {
		return false
	}
	if (a.Steps == nil) != (b.Steps == nil) ||
		(a.Steps != nil && *a.Steps != *b.Steps) {
		return false
	}
	if (a.Notes == nil) != (b.Notes == nil) ||
		(a.Notes != nil && *a.Notes != *b.Notes) {
		return false
	}
	return true
}

func TestRoundTripActivityToRecordAndBack(t *testing.T) {
	a := sampleActivity()
	got := ToActivity(ToRecord(a))
	if !activitiesEqual(a, got) {
		t.Errorf("round trip changed value:\n  in:  %+v\n  out: %+v", a, got)
	}
}

func TestRoundTripWithNilOptionals(t *testing.T) {
	a := models.NewActivity("Yoga", 45, 120)
	got := ToActivity(ToRecord(a))
	if !activitiesEqual(a, got) {
		t.Errorf("round trip changed value:\n  in:  %+v\n  out: %+v", a, got)
	}
	if got.DistanceKm != nil || got.Steps != nil || got.Notes != nil {
		t.Error("nil optional fields did not survive the round trip as nil")
	}
}

func TestRoundTripRecordToActivityAndBack(t *testing.T) {
	distance := 12.5
	notes := "long ride"
	r := &store.ActivityRecord{
		ID:              3,
		Type:            "Cycling",
		DurationMinutes: 90,
		CaloriesBurned:  840,
		DistanceKm:      &distance,
		TimestampMs:     1756500000000,
		Notes:           &notes,
	}

	got := ToRecord(ToActivity(r))
	if got.ID != r.ID || got.Type != r.Type ||
		got.DurationMinutes != r.DurationMinutes || got.CaloriesBurned != r.CaloriesBurned ||
		got.TimestampMs != r.TimestampMs {
		t.Errorf("round trip changed value:\n  in:  %+v\n  out: %+v", r, got)
	}
	if got.DistanceKm == nil || *got.DistanceKm != distance {
		t.Errorf("DistanceKm = %v, want %v", got.DistanceKm, distance)
	}
	if got.Steps != nil {
		t.Errorf("Steps = %v, want nil", *got.Steps)
	}
	if got.Notes == nil || *got.Notes != notes {
		t.Errorf("Notes = %v, want %q", got.Notes, notes)
	}
}

func TestTranslationDoesNotAliasPointers(t *testing.T) {
	a := sampleActivity()
	r := ToRecord(a)
	*r.DistanceKm = 99.0
	if *a.DistanceKm != 5.0 {
		t.Error("mutating the record's distance mutated the source activity")
	}
}

func TestToActivitiesEmptySnapshotIsEmptySlice(t *testing.T) {
	got := toActivities(nil)
	if got == nil {
		t.Error("toActivities(nil) = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
