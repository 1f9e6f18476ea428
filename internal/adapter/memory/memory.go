// Package memory implements in-memory collaborators for development and
// testing: the snapshot blob store and the caregiver/session repositories.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"babylog/internal/domain"
)

// DB holds all in-memory collaborator state.
type DB struct {
	mu         sync.Mutex
	snapshots  map[string][]byte
	caregivers []*domain.Caregiver
	sessions   map[string]*domain.Session

	caregiverIDCounter int64
}

// New creates an empty in-memory DB.
func New() *DB {
	return &DB{
		snapshots: make(map[string][]byte),
		sessions:  make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.SnapshotRepository = (*DB)(nil)
var _ domain.CaregiverRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- SnapshotRepository ---

// Get returns the blob stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	blob, ok := db.snapshots[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, true, nil
}

// Set stores the blob under key, replacing any previous value.
func (db *DB) Set(ctx context.Context, key string, blob []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := make([]byte, len(blob))
	copy(cp, blob)
	db.snapshots[key] = cp
	return nil
}

// --- CaregiverRepository ---

// GetByUsername retrieves a caregiver by username, nil if absent.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.Caregiver, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, c := range db.caregivers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a caregiver by id, nil if absent.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.Caregiver, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, c := range db.caregivers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Create adds a new caregiver account.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.Caregiver, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, c := range db.caregivers {
		if c.Username == username {
			return nil, errors.New("caregiver already exists")
		}
	}
	db.caregiverIDCounter++
	c := &domain.Caregiver{
		ID:           db.caregiverIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.caregivers = append(db.caregivers, c)
	return c, nil
}

// Count returns the number of caregiver accounts.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.caregivers), nil
}

// --- SessionRepository ---

// SessionRepo is the session repository view of the DB. It is a separate
// type because the caregiver repository already owns the Create name.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo returns the session repository view of the DB.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, caregiverID int64, token, userAgent string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:       token,
		CaregiverID: caregiverID,
		UserAgent:   userAgent,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session, nil if absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}
