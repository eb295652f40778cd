package ports

import (
	"context"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

// SessionRepository persists the operator session to durable local
// storage. Load returns (nil, nil) when no session is stored.
type SessionRepository interface {
	Save(session *domain.Session) error
	Load() (*domain.Session, error)
	Clear() error
}

// SessionManager owns the process-wide session singleton. It is the only
// writer of session state; the transport adapter reads the token through
// it and calls Clear when the backend rejects the credential.
type SessionManager interface {
	Restore()
	Establish(session *domain.Session)
	Logout()
	Clear()
	Token() string
	IsAuthenticated() bool
	Current() (domain.Session, bool)
}

// AuthService runs the login flow against the backend and hands the
// resulting session to the SessionManager.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}
