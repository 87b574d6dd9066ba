// ABOUTME: Live query feeds over the activities table.
// ABOUTME: Each feed emits a snapshot on subscription and after every write.
package store

import (
	"context"

	"github.com/harperreed/fitlog/internal/live"
)

// WatchActivities returns a live feed of the rows matching the filter,
// ordered by timestamp descending. The first snapshot arrives immediately
// after subscription; a fresh snapshot follows every table write, even
// when the result content is unchanged. The feed stops when ctx is
// cancelled, its Close is called, or the store shuts down.
func (s *Store) WatchActivities(ctx context.Context, f Filter) *live.Feed[[]*ActivityRecord] {
	return live.NewFeed(ctx, s.hub, func(ctx context.Context) ([]*ActivityRecord, error) {
		return s.Activities(ctx, f)
	})
}

// WatchTotalCalories returns a live feed of the total-calories aggregate.
func (s *Store) WatchTotalCalories(ctx context.Context) *live.Feed[int64] {
	return live.NewFeed(ctx, s.hub, s.TotalCalories)
}

// WatchTotalDistance returns a live feed of the total-distance aggregate.
func (s *Store) WatchTotalDistance(ctx context.Context) *live.Feed[float64] {
	return live.NewFeed(ctx, s.hub, s.TotalDistance)
}

// WatchTotalDuration returns a live feed of the total-duration aggregate.
func (s *Store) WatchTotalDuration(ctx context.Context) *live.Feed[int64] {
	return live.NewFeed(ctx, s.hub, s.TotalDuration)
}

// WatchActivityCount returns a live feed of the row count.
func (s *Store) WatchActivityCount(ctx context.Context) *live.Feed[int64] {
	return live.NewFeed(ctx, s.hub, s.ActivityCount)
}

// WatchCaloriesBetween returns a live feed of the calories aggregate
// restricted to [fromMs, toMs].
func (s *Store) WatchCaloriesBetween(ctx context.Context, fromMs, toMs int64) *live.Feed[int64] {
	return live.NewFeed(ctx, s.hub, func(ctx context.Context) (int64, error) {
		return s.CaloriesBetween(ctx, fromMs, toMs)
	})
}
