// ABOUTME: Aggregate scalar queries over the activities table.
// ABOUTME: Every aggregate yields zero over an empty set, never NULL.
package store

import (
	"context"
	"fmt"
)

// TotalCalories returns the sum of calories across all rows.
func (s *Store) TotalCalories(ctx context.Context) (int64, error) {
	return s.scalarInt(ctx, "SELECT COALESCE(SUM(calories_burned), 0) FROM activities")
}

// TotalDistance returns the sum of distance in kilometers across all
// rows. Rows without a distance are excluded, not treated as zero.
func (s *Store) TotalDistance(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(distance_km), 0.0) FROM activities WHERE distance_km IS NOT NULL").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total distance: %w", err)
	}
	return total, nil
}

// TotalDuration returns the sum of duration in minutes across all rows.
func (s *Store) TotalDuration(ctx context.Context) (int64, error) {
	return s.scalarInt(ctx, "SELECT COALESCE(SUM(duration_minutes), 0) FROM activities")
}

// ActivityCount returns the number of rows.
func (s *Store) ActivityCount(ctx context.Context) (int64, error) {
	return s.scalarInt(ctx, "SELECT COUNT(*) FROM activities")
}

// CaloriesBetween returns the sum of calories for rows whose timestamp
// falls within [fromMs, toMs].
func (s *Store) CaloriesBetween(ctx context.Context, fromMs, toMs int64) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(calories_burned), 0) FROM activities WHERE timestamp >= ? AND timestamp <= ?",
		fromMs, toMs).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("calories between: %w", err)
	}
	return total, nil
}

func (s *Store) scalarInt(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("aggregate query: %w", err)
	}
	return total, nil
}
