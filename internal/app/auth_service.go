package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"babylog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates the session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates the session is no longer valid.
	ErrSessionExpired = errors.New("session expired")
)

const sessionTTL = 24 * time.Hour

// AuthService handles caregiver authentication and session management.
type AuthService struct {
	caregivers domain.CaregiverRepository
	sessions   domain.SessionRepository
}

// NewAuthService creates an AuthService over the given repositories.
func NewAuthService(caregivers domain.CaregiverRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{caregivers: caregivers, sessions: sessions}
}

// Login verifies the password and opens a session bound to the user agent.
func (s *AuthService) Login(ctx context.Context, username, password, userAgent string) (string, error) {
	cg, err := s.caregivers.GetByUsername(ctx, username)
	if err != nil || cg == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cg.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.openSession(ctx, cg.ID, userAgent)
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a token to its caregiver. Expired sessions and
// user-agent mismatches invalidate the session.
func (s *AuthService) ValidateSession(ctx context.Context, token, userAgent string) (*domain.Caregiver, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) || session.UserAgent != userAgent {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return s.caregivers.GetByID(ctx, session.CaregiverID)
}

// CreateInitialCaregiver creates the first account; it refuses to run once
// any account exists.
func (s *AuthService) CreateInitialCaregiver(ctx context.Context, username, password string) error {
	count, err := s.caregivers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("setup already completed")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.caregivers.Create(ctx, username, string(hash))
	return err
}

// ValidateForwardAuth accepts the Remote-User header set by a trusted
// forward-auth proxy, auto-provisioning the caregiver on first sight.
func (s *AuthService) ValidateForwardAuth(ctx context.Context, remoteUser string) (*domain.Caregiver, error) {
	if remoteUser == "" {
		return nil, errors.New("no remote user")
	}
	return s.getOrProvision(ctx, remoteUser)
}

// SSOLogin opens a session for an identity already verified upstream (OIDC).
// The caregiver is auto-provisioned with no local password.
func (s *AuthService) SSOLogin(ctx context.Context, username, userAgent string) (string, error) {
	cg, err := s.getOrProvision(ctx, username)
	if err != nil {
		return "", err
	}
	return s.openSession(ctx, cg.ID, userAgent)
}

func (s *AuthService) getOrProvision(ctx context.Context, username string) (*domain.Caregiver, error) {
	cg, err := s.caregivers.GetByUsername(ctx, username)
	if err == nil && cg != nil {
		return cg, nil
	}
	return s.caregivers.Create(ctx, username, "")
}

func (s *AuthService) openSession(ctx context.Context, caregiverID int64, userAgent string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, caregiverID, token, userAgent, time.Now().Add(sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
