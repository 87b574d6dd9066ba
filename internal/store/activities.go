// ABOUTME: Activity row CRUD for the SQLite store.
// ABOUTME: Every successful write notifies hub observers before returning.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const activityColumns = "id, activity_type, duration_minutes, calories_burned, distance_km, steps, timestamp, notes"

// Insert stores a record and returns the assigned id. A record with
// ID 0 gets a fresh store-assigned id; a record carrying an existing id
// replaces that row.
func (s *Store) Insert(ctx context.Context, r *ActivityRecord) (int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	query := `
		INSERT OR REPLACE INTO activities (id, activity_type, duration_minutes, calories_burned, distance_km, steps, timestamp, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, insertArgs(r)...)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	r.ID = id

	s.hub.Broadcast()
	return id, nil
}

// InsertBatch stores all records in a single transaction. Either every
// record is persisted or none are. Returns the assigned ids in order.
func (s *Store) InsertBatch(ctx context.Context, records []*ActivityRecord) ([]int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch insert: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO activities (id, activity_type, duration_minutes, calories_burned, distance_km, steps, timestamp, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		result, err := tx.ExecContext(ctx, query, insertArgs(r)...)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("batch insert activity: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("batch insert activity: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch insert: %w", err)
	}

	for i, r := range records {
		r.ID = ids[i]
	}

	s.hub.Broadcast()
	return ids, nil
}

// Update rewrites the row matching the record's id. Updating an absent
// id is a silent no-op.
func (s *Store) Update(ctx context.Context, r *ActivityRecord) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	query := `
		UPDATE activities
		SET activity_type = ?, duration_minutes = ?, calories_burned = ?, distance_km = ?, steps = ?, timestamp = ?, notes = ?
		WHERE id = ?
	`
	_, err := s.db.ExecContext(ctx, query,
		r.Type, r.DurationMinutes, r.CaloriesBurned, r.DistanceKm, r.Steps, r.TimestampMs, r.Notes, r.ID)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	s.hub.Broadcast()
	return nil
}

// Delete removes the row matching every field of the record. Nullable
// columns match with IS so nil compares equal to NULL.
func (s *Store) Delete(ctx context.Context, r *ActivityRecord) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	query := `
		DELETE FROM activities
		WHERE id = ? AND activity_type = ? AND duration_minutes = ? AND calories_burned = ?
		  AND distance_km IS ? AND steps IS ? AND timestamp = ? AND notes IS ?
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Type, r.DurationMinutes, r.CaloriesBurned, r.DistanceKm, r.Steps, r.TimestampMs, r.Notes)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.hub.Broadcast()
	return nil
}

// DeleteByID removes the row with the given id. Deleting an absent id
// is a silent no-op.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete activity by id: %w", err)
	}

	s.hub.Broadcast()
	return nil
}

// DeleteBefore removes every row older than the given threshold
// (milliseconds since the Unix epoch). Returns the number of rows removed.
func (s *Store) DeleteBefore(ctx context.Context, thresholdMs int64) (int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, "DELETE FROM activities WHERE timestamp < ?", thresholdMs)
	if err != nil {
		return 0, fmt.Errorf("delete activities before threshold: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete activities before threshold: %w", err)
	}

	s.hub.Broadcast()
	return affected, nil
}

// DeleteAll removes every row.
func (s *Store) DeleteAll(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM activities"); err != nil {
		return fmt.Errorf("delete all activities: %w", err)
	}

	s.hub.Broadcast()
	return nil
}

// ActivityByID retrieves a single row. Returns ErrNotFound when the id
// does not exist.
func (s *Store) ActivityByID(ctx context.Context, id int64) (*ActivityRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM activities WHERE id = ?", activityColumns)
	r, err := scanActivity(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return r, nil
}

// Activities returns the rows matching the filter, ordered by timestamp
// descending (most recent first).
func (s *Store) Activities(ctx context.Context, f Filter) ([]*ActivityRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM activities", activityColumns)
	var clauses []string
	var args []interface{}

	if f.Type != "" {
		clauses = append(clauses, "LOWER(activity_type) = LOWER(?)")
		args = append(args, f.Type)
	}
	if f.FromMs != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, *f.FromMs)
	}
	if f.ToMs != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, *f.ToMs)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY timestamp DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ActivitiesByType returns a point-in-time snapshot of all rows with the
// given type, used by batch operations that do not need live observation.
func (s *Store) ActivitiesByType(ctx context.Context, activityType string) ([]*ActivityRecord, error) {
	return s.Activities(ctx, Filter{Type: activityType})
}

// insertArgs builds the bind arguments for an insert, mapping ID 0 to
// NULL so SQLite assigns the next identifier.
func insertArgs(r *ActivityRecord) []interface{} {
	var id interface{}
	if r.ID != 0 {
		id = r.ID
	}
	return []interface{}{id, r.Type, r.DurationMinutes, r.CaloriesBurned, r.DistanceKm, r.Steps, r.TimestampMs, r.Notes}
}

// scanActivity scans a single row into an ActivityRecord.
func scanActivity(row *sql.Row) (*ActivityRecord, error) {
	var r ActivityRecord
	var distance sql.NullFloat64
	var steps sql.NullInt64
	var notes sql.NullString

	err := row.Scan(&r.ID, &r.Type, &r.DurationMinutes, &r.CaloriesBurned, &distance, &steps, &r.TimestampMs, &notes)
	if err != nil {
		return nil, err
	}

	applyNullables(&r, distance, steps, notes)
	return &r, nil
}

// scanActivities scans multiple rows into a slice of ActivityRecords.
func scanActivities(rows *sql.Rows) ([]*ActivityRecord, error) {
	var records []*ActivityRecord

	for rows.Next() {
		var r ActivityRecord
		var distance sql.NullFloat64
		var steps sql.NullInt64
		var notes sql.NullString

		err := rows.Scan(&r.ID, &r.Type, &r.DurationMinutes, &r.CaloriesBurned, &distance, &steps, &r.TimestampMs, &notes)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		applyNullables(&r, distance, steps, notes)
		records = append(records, &r)
	}

	return records, rows.Err()
}

func applyNullables(r *ActivityRecord, distance sql.NullFloat64, steps sql.NullInt64, notes sql.NullString) {
	if distance.Valid {
		d := distance.Float64
		r.DistanceKm = &d
	}
	if steps.Valid {
		n := int(steps.Int64)
		r.Steps = &n
	}
	if notes.Valid {
		r.Notes = &notes.String
	}
}
