// ABOUTME: Tests for aggregate scalar queries.
// ABOUTME: Verifies zero-over-empty and null-distance exclusion.
package store

import (
	"context"
	"testing"
	"time"
)

func TestAggregatesOverEmptyTableAreZero(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	calories, err := s.TotalCalories(ctx)
	if err != nil {
		t.Fatalf("TotalCalories failed: %v", err)
	}
	if calories != 0 {
		t.Errorf("TotalCalories = %d, want 0", calories)
	}

	distance, err := s.TotalDistance(ctx)
	if err != nil {
		t.Fatalf("TotalDistance failed: %v", err)
	}
	if distance != 0.0 {
		t.Errorf("TotalDistance = %f, want 0.0", distance)
	}

	duration, err := s.TotalDuration(ctx)
	if err != nil {
		t.Fatalf("TotalDuration failed: %v", err)
	}
	if duration != 0 {
		t.Errorf("TotalDuration = %d, want 0", duration)
	}

	count, err := s.ActivityCount(ctx)
	if err != nil {
		t.Fatalf("ActivityCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("ActivityCount = %d, want 0", count)
	}

	ranged, err := s.CaloriesBetween(ctx, 0, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("CaloriesBetween failed: %v", err)
	}
	if ranged != 0 {
		t.Errorf("CaloriesBetween = %d, want 0", ranged)
	}
}

func TestAggregatesAfterInsert(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	distance := 5.0
	steps := 6500
	r := testRecord("Running", time.Now())
	r.DistanceKm = &distance
	r.Steps = &steps

	id, err := s.Insert(ctx, r)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id < 1 {
		t.Errorf("assigned id = %d, want >= 1", id)
	}

	calories, _ := s.TotalCalories(ctx)
	if calories != 300 {
		t.Errorf("TotalCalories = %d, want 300", calories)
	}
	count, _ := s.ActivityCount(ctx)
	if count != 1 {
		t.Errorf("ActivityCount = %d, want 1", count)
	}
	total, _ := s.TotalDistance(ctx)
	if total != 5.0 {
		t.Errorf("TotalDistance = %f, want 5.0", total)
	}
	duration, _ := s.TotalDuration(ctx)
	if duration != 30 {
		t.Errorf("TotalDuration = %d, want 30", duration)
	}
}

func TestTotalDistanceExcludesNullRows(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	distance := 10.0
	withDistance := testRecord("Running", time.Now())
	withDistance.DistanceKm = &distance
	if _, err := s.Insert(ctx, withDistance); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	// Yoga has no distance; it must not drag the sum to NULL or add zero.
	if _, err := s.Insert(ctx, testRecord("Yoga", time.Now())); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	total, err := s.TotalDistance(ctx)
	if err != nil {
		t.Fatalf("TotalDistance failed: %v", err)
	}
	if total != 10.0 {
		t.Errorf("TotalDistance = %f, want 10.0", total)
	}
}

func TestCaloriesBetweenRespectsRange(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		r := testRecord("Running", base.AddDate(0, 0, i))
		r.CaloriesBurned = 100 * (i + 1)
		if _, err := s.Insert(ctx, r); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := s.CaloriesBetween(ctx, base.UnixMilli(), base.AddDate(0, 0, 1).UnixMilli())
	if err != nil {
		t.Fatalf("CaloriesBetween failed: %v", err)
	}
	if got != 300 {
		t.Errorf("CaloriesBetween = %d, want 300", got)
	}
}
