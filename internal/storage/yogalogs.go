package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meltforce/repflow/internal/models"
)

// YogaStore is the persistence surface for yoga session logs. It is satisfied
// both by the Postgres store (scope "user") and the per-device SQLite store
// (scope "device").
type YogaStore interface {
	SaveYogaLog(ctx context.Context, userID int64, log *models.YogaSessionLog) error
	ListYogaLogs(ctx context.Context, userID int64) ([]models.YogaSessionLog, error)
	DeleteYogaLog(ctx context.Context, userID int64, id string) error
	DeleteAllYogaLogs(ctx context.Context, userID int64) error
}

// SaveYogaLog upserts a yoga session log keyed by its client-generated id.
func (db *DB) SaveYogaLog(ctx context.Context, userID int64, log *models.YogaSessionLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encoding yoga log: %w", err)
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO yoga_session_logs (user_id, id, category, completed_at, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, id) DO UPDATE SET
			category = EXCLUDED.category,
			completed_at = EXCLUDED.completed_at,
			payload = EXCLUDED.payload
	`, userID, log.ID, log.Category, log.CompletedAt, payload)
	if err != nil {
		return fmt.Errorf("saving yoga log: %w", err)
	}
	return nil
}

// ListYogaLogs returns all of a user's yoga logs, newest first.
func (db *DB) ListYogaLogs(ctx context.Context, userID int64) ([]models.YogaSessionLog, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT payload FROM yoga_session_logs
		WHERE user_id = $1
		ORDER BY completed_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying yoga logs: %w", err)
	}
	defer rows.Close()

	logs := []models.YogaSessionLog{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning yoga log: %w", err)
		}
		var l models.YogaSessionLog
		if err := json.Unmarshal(payload, &l); err != nil {
			return nil, fmt.Errorf("decoding yoga log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// DeleteYogaLog removes one log. Returns ErrNotFound when the id does not
// exist for this user.
func (db *DB) DeleteYogaLog(ctx context.Context, userID int64, id string) error {
	tag, err := db.Pool.Exec(ctx, `
		DELETE FROM yoga_session_logs WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting yoga log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllYogaLogs clears the user's yoga history.
func (db *DB) DeleteAllYogaLogs(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM yoga_session_logs WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting yoga logs: %w", err)
	}
	return nil
}
