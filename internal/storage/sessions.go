package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meltforce/repflow/internal/models"
)

// SaveWorkoutSession upserts a finished session keyed by its client-generated
// id. Re-saving the same session is a no-op overwrite, which makes device
// migration safe to repeat.
func (db *DB) SaveWorkoutSession(ctx context.Context, userID int64, s *models.WorkoutSession) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO workout_sessions
			(user_id, id, session_date, workout_type, total_duration, total_calories, total_sets, total_reps, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, id) DO UPDATE SET
			session_date = EXCLUDED.session_date,
			workout_type = EXCLUDED.workout_type,
			total_duration = EXCLUDED.total_duration,
			total_calories = EXCLUDED.total_calories,
			total_sets = EXCLUDED.total_sets,
			total_reps = EXCLUDED.total_reps,
			payload = EXCLUDED.payload
	`, userID, s.ID, s.Date, s.WorkoutType, s.TotalDuration, s.TotalCalories, s.TotalSets, s.TotalReps, payload)
	if err != nil {
		return fmt.Errorf("saving workout session: %w", err)
	}
	return nil
}

// ListWorkoutSessions returns all of a user's sessions, newest first. A user
// with no sessions gets an empty slice, not an error.
func (db *DB) ListWorkoutSessions(ctx context.Context, userID int64) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT payload FROM workout_sessions
		WHERE user_id = $1
		ORDER BY session_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workout sessions: %w", err)
	}
	defer rows.Close()

	return scanSessionPayloads(rows)
}

// ListWorkoutSessionsByDate returns the user's sessions for one calendar day
// (date in YYYY-MM-DD form).
func (db *DB) ListWorkoutSessionsByDate(ctx context.Context, userID int64, date string) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT payload FROM workout_sessions
		WHERE user_id = $1 AND session_date = $2
		ORDER BY id DESC
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("querying workout sessions by date: %w", err)
	}
	defer rows.Close()

	return scanSessionPayloads(rows)
}

// GetWorkoutSession returns one session by id.
func (db *DB) GetWorkoutSession(ctx context.Context, userID int64, id string) (*models.WorkoutSession, error) {
	var payload []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT payload FROM workout_sessions WHERE user_id = $1 AND id = $2
	`, userID, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout session: %w", err)
	}
	var s models.WorkoutSession
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &s, nil
}

// DeleteWorkoutSession removes one session. Returns ErrNotFound when the id
// does not exist for this user.
func (db *DB) DeleteWorkoutSession(ctx context.Context, userID int64, id string) error {
	tag, err := db.Pool.Exec(ctx, `
		DELETE FROM workout_sessions WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting workout session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllWorkoutSessions clears the user's entire history.
func (db *DB) DeleteAllWorkoutSessions(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM workout_sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting workout sessions: %w", err)
	}
	return nil
}

func scanSessionPayloads(rows pgx.Rows) ([]models.WorkoutSession, error) {
	sessions := []models.WorkoutSession{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		var s models.WorkoutSession
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
