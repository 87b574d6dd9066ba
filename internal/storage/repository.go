// ABOUTME: Repository interface for activity data access.
// ABOUTME: The sole contract presentation logic uses to reach persisted data.
package storage

import (
	"context"
	"time"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// ErrNotFound is returned when a requested activity does not exist.
var ErrNotFound = store.ErrNotFound

// ListFilter narrows activity queries. Zero values mean "no constraint".
type ListFilter struct {
	Type  string
	Since time.Time
	Until time.Time
	Limit int
}

// Stats is a point-in-time snapshot of the aggregate queries.
type Stats struct {
	TotalCalories        int64   `json:"total_calories"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDurationMinutes int64   `json:"total_duration_minutes"`
	ActivityCount        int64   `json:"activity_count"`
}

// Repository defines the data-access interface for activities. It accepts
// and emits only models.Activity; the storage shape never crosses it.
// This interface allows swapping implementations (e.g., for testing).
//
// Writes carry no caching, no retry, and no locking beyond the store's
// own serialization. Every write already visible to the store re-fires
// every live feed watching an affected query.
type Repository interface {
	// Writes
	Save(ctx context.Context, a *models.Activity) (int64, error)
	SaveAll(ctx context.Context, activities []*models.Activity) ([]int64, error)
	Update(ctx context.Context, a *models.Activity) error
	Delete(ctx context.Context, a *models.Activity) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) error

	// One-shot reads
	Activity(ctx context.Context, id int64) (*models.Activity, error)
	ListActivities(ctx context.Context, f ListFilter) ([]*models.Activity, error)
	ActivitiesByType(ctx context.Context, activityType string) ([]*models.Activity, error)
	Stats(ctx context.Context) (*Stats, error)

	// Live reads
	WatchActivities(ctx context.Context, f ListFilter) *live.Feed[[]*models.Activity]
	WatchTotalCalories(ctx context.Context) *live.Feed[int64]
	WatchTotalDistance(ctx context.Context) *live.Feed[float64]
	WatchTotalDuration(ctx context.Context) *live.Feed[int64]
	WatchActivityCount(ctx context.Context) *live.Feed[int64]
	WatchCaloriesBetween(ctx context.Context, from, to time.Time) *live.Feed[int64]

	// Lifecycle
	Close() error
}
