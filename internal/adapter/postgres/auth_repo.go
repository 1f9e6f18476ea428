package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"babylog/internal/domain"
)

// GetByUsername retrieves a caregiver by username, nil if absent.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.Caregiver, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM caregivers WHERE username = $1;", username)

	var c domain.Caregiver
	if err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a caregiver by id, nil if absent.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.Caregiver, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM caregivers WHERE id = $1;", id)

	var c domain.Caregiver
	if err := row.Scan(&c.ID, &c.Username, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create adds a new caregiver account.
func (d *DB) Create(ctx context.Context, username, passwordHash string) (*domain.Caregiver, error) {
	c := domain.Caregiver{Username: username, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO caregivers(username, password_hash, created_at) VALUES($1, $2, $3) RETURNING id;",
		username, passwordHash, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Count returns the number of caregiver accounts.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(1) FROM caregivers;").Scan(&n)
	return n, err
}

// SessionRepo is the session repository backed by the same database.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo returns the session repository view of the DB.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.CaregiverRepository = (*DB)(nil)
var _ domain.SnapshotRepository = (*DB)(nil)

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, caregiverID int64, token, userAgent string, expiresAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions(token, caregiver_id, user_agent, expires_at, created_at) VALUES($1, $2, $3, $4, $5);",
		token, caregiverID, userAgent, expiresAt.UTC(), time.Now().UTC())
	return err
}

// GetByToken retrieves a session, nil if absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT token, caregiver_id, user_agent, expires_at, created_at FROM sessions WHERE token = $1;", token)

	var s domain.Session
	if err := row.Scan(&s.Token, &s.CaregiverID, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1;", token)
	return err
}
