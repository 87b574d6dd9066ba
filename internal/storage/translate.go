// ABOUTME: Translation between storage records and domain activity values.
// ABOUTME: Pure, total, field-for-field mappings that round-trip exactly.
package storage

import (
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/store"
)

// ToRecord converts a domain activity into its storage shape. The mapping
// is total: there is no input it cannot convert and no failure path.
func ToRecord(a *models.Activity) *store.ActivityRecord {
	return &store.ActivityRecord{
		ID:              a.ID,
		Type:            a.Type,
		DurationMinutes: a.DurationMinutes,
		CaloriesBurned:  a.CaloriesBurned,
		DistanceKm:      copyFloat(a.DistanceKm),
		Steps:           copyInt(a.Steps),
		TimestampMs:     a.Timestamp.UnixMilli(),
		Notes:           copyString(a.Notes),
	}
}

// ToActivity converts a storage record into its domain shape.
func ToActivity(r *store.ActivityRecord) *models.Activity {
	return &models.Activity{
		ID:              r.ID,
		Type:            r.Type,
		DurationMinutes: r.DurationMinutes,
		CaloriesBurned:  r.CaloriesBurned,
		DistanceKm:      copyFloat(r.DistanceKm),
		Steps:           copyInt(r.Steps),
		Timestamp:       time.UnixMilli(r.TimestampMs),
		Notes:           copyString(r.Notes),
	}
}

// toActivities converts a snapshot of records. Returns an empty slice,
// not nil, so list consumers always render a list.
func toActivities(records []*store.ActivityRecord) []*models.Activity {
	activities := make([]*models.Activity, 0, len(records))
	for _, r := range records {
		activities = append(activities, ToActivity(r))
	}
	return activities
}

// The optional fields are copied to fresh pointers so the two shapes
// never alias each other's memory.

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
