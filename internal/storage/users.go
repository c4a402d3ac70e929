package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meltforce/repflow/internal/models"
)

const uniqueViolation = "23505"

// CreateUser inserts a new account. Returns ErrDuplicate when the email is
// already registered.
func (db *DB) CreateUser(ctx context.Context, email, displayName, passwordHash string) (*models.User, error) {
	u := &models.User{Email: email, DisplayName: displayName, PasswordHash: passwordHash}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, display_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, last_seen
	`, email, displayName, passwordHash).Scan(&u.ID, &u.CreatedAt, &u.LastSeen)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail looks up an account for login. Returns ErrNotFound when no
// account matches.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, display_name, password_hash, created_at, last_seen
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt, &u.LastSeen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}
	return u, nil
}

// GetUser looks up an account by id.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u := &models.User{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, display_name, password_hash, created_at, last_seen
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt, &u.LastSeen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// TouchUser records activity on the account.
func (db *DB) TouchUser(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `UPDATE users SET last_seen = NOW() WHERE id = $1`, id)
	return err
}
