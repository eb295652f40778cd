package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

// emailRx is the deliberately simple local@domain.tld check used for both
// login and booking forms.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements the login flow: client-side validation, the
// backend call, and session establishment.
type AuthService struct {
	backend  ports.BackendClient
	sessions ports.SessionManager
	logger   zerolog.Logger
}

func NewAuthService(backend ports.BackendClient, sessions ports.SessionManager, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, sessions: sessions, logger: logger}
}

// Login authenticates the operator. A response without a token fails with
// ErrInvalidCredentials and leaves session state and storage untouched.
// When the backend omits the user profile, a minimal one is synthesized
// from the submitted email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)

	fields := make(map[string]string)
	switch {
	case email == "":
		fields["email"] = "email is required"
	case !emailRx.MatchString(email):
		fields["email"] = "must be a valid email address"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		// A 401 from the login endpoint means bad credentials, not an
		// expired session.
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, fmt.Errorf("login rejected: %w", domain.ErrInvalidCredentials)
		}
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login response missing token: %w", domain.ErrInvalidCredentials)
	}

	user := result.User
	if user == nil {
		user = &domain.User{ID: email, Email: email}
	}

	session := &domain.Session{Token: result.Token, User: *user}
	s.sessions.Establish(session)

	s.logger.Info().Str("email", user.Email).Msg("login successful")
	return session, nil
}
