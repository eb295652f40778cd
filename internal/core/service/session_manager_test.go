package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub session repository
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	stored   *domain.Session
	saves    int
	clears   int
	loadErr  error
	saveErr  error
	clearErr error
}

func (r *stubSessionRepo) Save(session *domain.Session) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *session
	r.stored = &clone
	return nil
}

func (r *stubSessionRepo) Load() (*domain.Session, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.stored == nil {
		return nil, nil
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSessionRepo) Clear() error {
	r.clears++
	if r.clearErr != nil {
		return r.clearErr
	}
	r.stored = nil
	return nil
}

func TestSessionManager_RestoreWithStoredToken(t *testing.T) {
	repo := &stubSessionRepo{stored: &domain.Session{
		Token: "tok123",
		User:  domain.User{ID: "u1", Email: "staff@example.com"},
	}}
	m := NewSessionManager(repo, zerolog.Nop())

	m.Restore()

	if !m.IsAuthenticated() {
		t.Fatalf("expected authenticated after restore")
	}
	if m.Token() != "tok123" {
		t.Fatalf("unexpected token: %q", m.Token())
	}
	session, ok := m.Current()
	if !ok || session.User.Email != "staff@example.com" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestSessionManager_RestoreEmptyStorage(t *testing.T) {
	m := NewSessionManager(&stubSessionRepo{}, zerolog.Nop())
	m.Restore()
	if m.IsAuthenticated() {
		t.Fatalf("expected logged out with empty storage")
	}
}

func TestSessionManager_RestoreStorageError(t *testing.T) {
	repo := &stubSessionRepo{loadErr: errors.New("disk on fire")}
	m := NewSessionManager(repo, zerolog.Nop())
	m.Restore()
	if m.IsAuthenticated() {
		t.Fatalf("expected logged out when storage is unreadable")
	}
}

func TestSessionManager_EstablishPersists(t *testing.T) {
	repo := &stubSessionRepo{}
	m := NewSessionManager(repo, zerolog.Nop())

	m.Establish(&domain.Session{Token: "tok", User: domain.User{Email: "a@b.co"}})

	if !m.IsAuthenticated() {
		t.Fatalf("expected authenticated")
	}
	if repo.stored == nil || repo.stored.Token != "tok" {
		t.Fatalf("expected session persisted, got %+v", repo.stored)
	}
}

func TestSessionManager_EstablishSurvivesSaveFailure(t *testing.T) {
	repo := &stubSessionRepo{saveErr: errors.New("read-only fs")}
	m := NewSessionManager(repo, zerolog.Nop())

	m.Establish(&domain.Session{Token: "tok"})

	if !m.IsAuthenticated() {
		t.Fatalf("in-memory session must survive a persistence failure")
	}
}

func TestSessionManager_LogoutIsIdempotent(t *testing.T) {
	repo := &stubSessionRepo{}
	m := NewSessionManager(repo, zerolog.Nop())
	m.Establish(&domain.Session{Token: "tok"})

	m.Logout()
	if m.IsAuthenticated() {
		t.Fatalf("expected logged out")
	}
	if repo.stored != nil {
		t.Fatalf("expected persisted session cleared")
	}

	m.Logout() // second call is a no-op
	if m.IsAuthenticated() || repo.clears != 2 {
		t.Fatalf("expected idempotent logout, clears=%d", repo.clears)
	}
}

func TestSessionManager_ClearWipesEverything(t *testing.T) {
	repo := &stubSessionRepo{}
	m := NewSessionManager(repo, zerolog.Nop())
	m.Establish(&domain.Session{Token: "tok"})

	m.Clear()

	if m.IsAuthenticated() {
		t.Fatalf("expected logged out after clear")
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("expected no current session")
	}
	if repo.stored != nil {
		t.Fatalf("expected storage cleared")
	}
}
