package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/chayapatp/topupstore/internal/dependencies/clock"
	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/services/directory"
)

// Errors
var (
	ErrInvalidCredentials = directory.ErrInvalidCredentials
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Session represents an authenticated API session
type Session struct {
	Token     string
	AccountID model.AccountID
	Account   model.Account
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service issues and validates bearer-token sessions for the JSON API.
// The browser surface does not use these; it keeps its state in the
// storefront controller and its persistence shim.
type Service struct {
	directory *directory.Service
	clock     clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(dir *directory.Service, clk clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		directory:       dir,
		clock:           clk,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Login authenticates against the member directory and creates a session
func (s *Service) Login(email, password string) (*Session, error) {
	account, err := s.directory.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return s.createSession(account), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// GetAccount returns the account for a session token
func (s *Service) GetAccount(token string) (*model.Account, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return &session.Account, nil
}

// createSession creates a new session for an account
func (s *Service) createSession(account *model.Account) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		AccountID: account.ID,
		Account:   *account,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
