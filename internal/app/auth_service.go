// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"pastebin/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateUser indicates that the username is already registered.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the presented token was never issued.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// SessionTTL is how long an issued token stays valid.
const SessionTTL = 60 * 24 * time.Hour

// AuthService handles registration, authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new user and immediately issues a session for it.
// The bcrypt hash embeds a fresh random salt per call, so two users with the
// same password never share a stored hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if _, err := s.users.Create(ctx, username, string(hash)); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", ErrDuplicateUser
		}
		return "", err
	}

	return s.issueSession(ctx, username)
}

// Login authenticates a user and issues a new session. Prior sessions for the
// same user stay valid until their own expiry. Unknown username, wrong
// password and a malformed stored hash all collapse into
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueSession(ctx, username)
}

// ValidateSession resolves a token to its username. Expired sessions are
// reported but not removed; the inert records stay until the process restarts.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		return "", ErrSessionExpired
	}

	return session.Username, nil
}

// LoginWithUser issues a session for an already authenticated user (e.g. via
// SSO), provisioning the account on first sight. SSO accounts get an empty
// password hash, which never verifies, so they cannot log in with a password.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		if _, err := s.users.Create(ctx, username, ""); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
	}

	return s.issueSession(ctx, username)
}

func (s *AuthService) issueSession(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(SessionTTL)
	if err := s.sessions.Create(ctx, username, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}
