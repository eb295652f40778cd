package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

// SessionManager holds the process-wide session singleton and keeps it in
// sync with durable storage. It is the single writer of session state.
type SessionManager struct {
	repo   ports.SessionRepository
	logger zerolog.Logger

	mu      sync.Mutex
	current *domain.Session
}

func NewSessionManager(repo ports.SessionRepository, logger zerolog.Logger) *SessionManager {
	return &SessionManager{repo: repo, logger: logger}
}

// Restore loads a previously persisted session at process start. A stored
// token is trusted without network validation; validity is discovered
// lazily on the first authenticated request.
func (m *SessionManager) Restore() {
	session, err := m.repo.Load()
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to restore session from storage")
		return
	}
	if session == nil || session.Token == "" {
		return
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	m.logger.Info().Str("email", session.User.Email).Msg("session restored")
}

// Establish replaces the current session and persists it. A persistence
// failure keeps the in-memory session; the operator stays logged in for
// this process lifetime.
func (m *SessionManager) Establish(session *domain.Session) {
	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	if err := m.repo.Save(session); err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist session")
	}
}

// Logout destroys the session in memory and in storage. Idempotent.
func (m *SessionManager) Logout() {
	if m.wipe() {
		m.logger.Info().Msg("logged out")
	}
}

// Clear wipes the session without ceremony. The transport adapter calls
// this when the backend answers 401.
func (m *SessionManager) Clear() {
	if m.wipe() {
		m.logger.Warn().Msg("session cleared after unauthorized response")
	}
}

// wipe reports whether a session was actually present.
func (m *SessionManager) wipe() bool {
	m.mu.Lock()
	had := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if err := m.repo.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}
	return had
}

// Token returns the current bearer token, or "" when logged out.
func (m *SessionManager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// IsAuthenticated is true iff a token exists in memory.
func (m *SessionManager) IsAuthenticated() bool {
	return m.Token() != ""
}

// Current returns a copy of the active session.
func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domain.Session{}, false
	}
	return *m.current, true
}
