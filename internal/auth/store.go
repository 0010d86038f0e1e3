package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopfront/internal/domain"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS auth_tokens (
	slot     INTEGER PRIMARY KEY CHECK (slot = 1),
	token    TEXT NOT NULL,
	username TEXT NOT NULL
);
`

// TokenStore keeps the single persisted session
type TokenStore struct {
	db *sql.DB
}

// NewTokenStore creates the session table on db if needed
func NewTokenStore(ctx context.Context, db *sql.DB) (*TokenStore, error) {
	if _, err := db.ExecContext(ctx, sessionSchema); err != nil {
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}
	return &TokenStore{db: db}, nil
}

// Save replaces the stored session
func (s *TokenStore) Save(ctx context.Context, session domain.Session) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO auth_tokens (slot, token, username) VALUES (1, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET token = excluded.token, username = excluded.username`,
		session.Token, session.User.Username,
	); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored session, if any
func (s *TokenStore) Load(ctx context.Context) (domain.Session, bool, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT token, username FROM auth_tokens WHERE slot = 1`,
	).Scan(&session.Token, &session.User.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	session.User.ID = session.User.Username
	return session, true, nil
}

// Clear removes the stored session
func (s *TokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM auth_tokens`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
