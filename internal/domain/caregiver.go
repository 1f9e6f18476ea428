package domain

import (
	"context"
	"time"
)

// Caregiver is an account allowed to read and write the household ledger.
// All caregivers see the same data; auth gates access, not partitioning.
type Caregiver struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is an active login session bound to the user agent that opened it.
type Session struct {
	Token       string
	CaregiverID int64
	UserAgent   string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// CaregiverRepository is the port for caregiver account persistence.
type CaregiverRepository interface {
	GetByUsername(ctx context.Context, username string) (*Caregiver, error)
	GetByID(ctx context.Context, id int64) (*Caregiver, error)
	Create(ctx context.Context, username, passwordHash string) (*Caregiver, error)
	Count(ctx context.Context) (int, error)
}

// SessionRepository is the port for session persistence.
type SessionRepository interface {
	Create(ctx context.Context, caregiverID int64, token, userAgent string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
