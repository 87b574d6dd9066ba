// ABOUTME: ActivityRecord is the storage shape of a logged activity.
// ABOUTME: Mirrors the activities table; nullable columns are pointers.
package store

// ActivityRecord is one row of the activities table. ID 0 means the
// store has not assigned an identifier yet. DistanceKm is nil when
// distance does not apply (distinct from 0.0); Steps is nil when steps
// were not tracked. TimestampMs counts milliseconds since the Unix epoch.
type ActivityRecord struct {
	ID              int64
	Type            string
	DurationMinutes int
	CaloriesBurned  int
	DistanceKm      *float64
	Steps           *int
	TimestampMs     int64
	Notes           *string
}

// Filter narrows activity queries. Zero values mean "no constraint":
// an empty Type matches all types, nil bounds leave the timestamp range
// open, and Limit 0 returns every matching row.
type Filter struct {
	Type   string
	FromMs *int64
	ToMs   *int64
	Limit  int
}
