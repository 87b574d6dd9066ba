// ABOUTME: Activity model for logged fitness sessions.
// ABOUTME: IDs are store-assigned; optional fields are pointers (nil = not tracked).
package models

import "time"

// Activity represents a single logged fitness session.
//
// ID is zero until the store assigns one on first save and is immutable
// afterwards. DistanceKm is nil when distance does not apply to the
// activity type (distinct from 0.0), and Steps is nil when steps were
// not tracked.
type Activity struct {
	ID              int64
	Type            string
	DurationMinutes int
	CaloriesBurned  int
	DistanceKm      *float64
	Steps           *int
	Timestamp       time.Time
	Notes           *string
}

// NewActivity creates an Activity timestamped now. The timestamp is
// truncated to millisecond precision, matching what the store persists,
// so a saved activity reads back exactly equal.
func NewActivity(activityType string, durationMinutes, caloriesBurned int) *Activity {
	return &Activity{
		Type:            activityType,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
		Timestamp:       time.Now().Truncate(time.Millisecond),
	}
}

// WithDistance sets the distance covered in kilometers.
func (a *Activity) WithDistance(km float64) *Activity {
	a.DistanceKm = &km
	return a
}

// WithSteps sets the step count.
func (a *Activity) WithSteps(steps int) *Activity {
	a.Steps = &steps
	return a
}

// WithNotes sets notes on the activity.
func (a *Activity) WithNotes(notes string) *Activity {
	a.Notes = &notes
	return a
}

// WithTimestamp sets a custom timestamp, truncated to millisecond precision.
func (a *Activity) WithTimestamp(t time.Time) *Activity {
	a.Timestamp = t.Truncate(time.Millisecond)
	return a
}
