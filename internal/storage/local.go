package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/meltforce/repflow/internal/models"
)

// LocalStore keeps yoga session logs in a per-device SQLite file. It is the
// default yoga backend (storage scope "device") and the source read by the
// migrate command when a device's history moves into Postgres.
type LocalStore struct {
	db *sql.DB
}

// OpenLocal opens (or creates) the SQLite store at the given path.
func OpenLocal(path string) (*LocalStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS yoga_session_logs (
		user_id      INTEGER NOT NULL,
		id           TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		completed_at TEXT NOT NULL,
		payload      TEXT NOT NULL,
		PRIMARY KEY (user_id, id)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating yoga log table: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Close closes the store.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// SaveYogaLog upserts a log keyed by its client-generated id.
func (s *LocalStore) SaveYogaLog(ctx context.Context, userID int64, log *models.YogaSessionLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encoding yoga log: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO yoga_session_logs (user_id, id, category, completed_at, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, log.ID, log.Category, log.CompletedAt, string(payload))
	if err != nil {
		return fmt.Errorf("saving yoga log: %w", err)
	}
	return nil
}

// ListYogaLogs returns the user's logs, newest first.
func (s *LocalStore) ListYogaLogs(ctx context.Context, userID int64) ([]models.YogaSessionLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM yoga_session_logs
		 WHERE user_id = ?
		 ORDER BY completed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying yoga logs: %w", err)
	}
	defer rows.Close()

	logs := []models.YogaSessionLog{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning yoga log: %w", err)
		}
		var l models.YogaSessionLog
		if err := json.Unmarshal([]byte(payload), &l); err != nil {
			return nil, fmt.Errorf("decoding yoga log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// DeleteYogaLog removes one log.
func (s *LocalStore) DeleteYogaLog(ctx context.Context, userID int64, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM yoga_session_logs WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting yoga log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllYogaLogs clears the user's yoga history.
func (s *LocalStore) DeleteAllYogaLogs(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM yoga_session_logs WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting yoga logs: %w", err)
	}
	return nil
}

// MigrateYogaLogs copies every log for the user into dst, re-saving by id so
// re-running the migration cannot duplicate entries. Returns the number of
// logs copied.
func (s *LocalStore) MigrateYogaLogs(ctx context.Context, userID int64, dst YogaStore) (int, error) {
	logs, err := s.ListYogaLogs(ctx, userID)
	if err != nil {
		return 0, err
	}
	for i := range logs {
		if err := dst.SaveYogaLog(ctx, userID, &logs[i]); err != nil {
			return i, fmt.Errorf("copying yoga log %s: %w", logs[i].ID, err)
		}
	}
	return len(logs), nil
}

var _ YogaStore = (*LocalStore)(nil)
var _ YogaStore = (*DB)(nil)
