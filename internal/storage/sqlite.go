// ABOUTME: SQLite-backed Repository implementation over the record store.
// ABOUTME: Applies the translation layer; scalars pass through untouched.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// SQLiteRepository implements Repository over internal/store.
type SQLiteRepository struct {
	store *store.Store
}

var _ Repository = (*SQLiteRepository)(nil)

// Open opens (or creates) the activity database in dataDir. Pass
// ":memory:" for an in-memory repository (used by tests).
func Open(dataDir string) (*SQLiteRepository, error) {
	s, err := store.Open(dataDir)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepository{store: s}, nil
}

var (
	shared     *SQLiteRepository
	sharedOnce sync.Once
	sharedErr  error
)

// Shared returns the process-wide repository, opening it on first call.
// Later calls return the same instance regardless of dataDir; the store
// is never recreated for the process lifetime. Safe under concurrent
// first access.
func Shared(dataDir string) (Repository, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = Open(dataDir)
	})
	return shared, sharedErr
}

// Close closes the underlying store. Live feeds observing it terminate.
func (r *SQLiteRepository) Close() error {
	return r.store.Close()
}

// Save persists an activity and returns the assigned id. An activity
// carrying an existing id replaces that row.
func (r *SQLiteRepository) Save(ctx context.Context, a *models.Activity) (int64, error) {
	record := ToRecord(a)
	id, err := r.store.Insert(ctx, record)
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

// SaveAll persists activities in one all-or-nothing transaction.
func (r *SQLiteRepository) SaveAll(ctx context.Context, activities []*models.Activity) ([]int64, error) {
	records := make([]*store.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		records = append(records, ToRecord(a))
	}
	ids, err := r.store.InsertBatch(ctx, records)
	if err != nil {
		return nil, err
	}
	for i, a := range activities {
		a.ID = ids[i]
	}
	return ids, nil
}

// Update rewrites the row matching the activity's id; absent ids are a
// silent no-op.
func (r *SQLiteRepository) Update(ctx context.Context, a *models.Activity) error {
	return r.store.Update(ctx, ToRecord(a))
}

// Delete removes the row matching every field of the activity.
func (r *SQLiteRepository) Delete(ctx context.Context, a *models.Activity) error {
	return r.store.Delete(ctx, ToRecord(a))
}

// DeleteByID removes the row with the given id; absent ids are a silent
// no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, id)
}

// DeleteBefore removes activities older than the cutoff and returns the
// number removed.
func (r *SQLiteRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.store.DeleteBefore(ctx, cutoff.UnixMilli())
}

// DeleteAll removes every activity.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

// Activity retrieves one activity by id. Returns ErrNotFound when absent.
func (r *SQLiteRepository) Activity(ctx context.Context, id int64) (*models.Activity, error) {
	record, err := r.store.ActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToActivity(record), nil
}

// ListActivities returns a snapshot of activities matching the filter,
// most recent first.
func (r *SQLiteRepository) ListActivities(ctx context.Context, f ListFilter) ([]*models.Activity, error) {
	records, err := r.store.Activities(ctx, toStoreFilter(f))
	if err != nil {
		return nil, err
	}
	return toActivities(records), nil
}

// ActivitiesByType returns a point-in-time snapshot of all activities of
// one type, for batch operations that do not need live observation.
func (r *SQLiteRepository) ActivitiesByType(ctx context.Context, activityType string) ([]*models.Activity, error) {
	records, err := r.store.ActivitiesByType(ctx, activityType)
	if err != nil {
		return nil, err
	}
	return toActivities(records), nil
}

// Stats returns a snapshot of all aggregates.
func (r *SQLiteRepository) Stats(ctx context.Context) (*Stats, error) {
	calories, err := r.store.TotalCalories(ctx)
	if err != nil {
		return nil, err
	}
	distance, err := r.store.TotalDistance(ctx)
	if err != nil {
		return nil, err
	}
	duration, err := r.store.TotalDuration(ctx)
	if err != nil {
		return nil, err
	}
	count, err := r.store.ActivityCount(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalCalories:        calories,
		TotalDistanceKm:      distance,
		TotalDurationMinutes: duration,
		ActivityCount:        count,
	}, nil
}

// WatchActivities returns a live feed of activities matching the filter.
func (r *SQLiteRepository) WatchActivities(ctx context.Context, f ListFilter) *live.Feed[[]*models.Activity] {
	return live.Map(r.store.WatchActivities(ctx, toStoreFilter(f)), toActivities)
}

// WatchTotalCalories returns a live feed of the total-calories aggregate.
func (r *SQLiteRepository) WatchTotalCalories(ctx context.Context) *live.Feed[int64] {
	return r.store.WatchTotalCalories(ctx)
}

// WatchTotalDistance returns a live feed of the total-distance aggregate.
func (r *SQLiteRepository) WatchTotalDistance(ctx context.Context) *live.Feed[float64] {
	return r.store.WatchTotalDistance(ctx)
}

// WatchTotalDuration returns a live feed of the total-duration aggregate.
func (r *SQLiteRepository) WatchTotalDuration(ctx context.Context) *live.Feed[int64] {
	return r.store.WatchTotalDuration(ctx)
}

// WatchActivityCount returns a live feed of the activity count.
func (r *SQLiteRepository) WatchActivityCount(ctx context.Context) *live.Feed[int64] {
	return r.store.WatchActivityCount(ctx)
}

// WatchCaloriesBetween returns a live feed of the calories aggregate
// restricted to [from, to].
func (r *SQLiteRepository) WatchCaloriesBetween(ctx context.Context, from, to time.Time) *live.Feed[int64] {
	return r.store.WatchCaloriesBetween(ctx, from.UnixMilli(), to.UnixMilli())
}

// toStoreFilter maps the repository filter onto the store's, leaving
// zero-time bounds open.
func toStoreFilter(f ListFilter) store.Filter {
	sf := store.Filter{Type: f.Type, Limit: f.Limit}
	if !f.Since.IsZero() {
		from := f.Since.UnixMilli()
		sf.FromMs = &from
	}
	if !f.Until.IsZero() {
		to := f.Until.UnixMilli()
		sf.ToMs = &to
	}
	return sf
}
