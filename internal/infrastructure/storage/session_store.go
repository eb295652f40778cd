// Package storage persists the operator session to the local filesystem,
// the console's durable local storage.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

// Fixed storage keys: the token on its own, the profile as JSON. Both are
// written and cleared together.
const (
	tokenFile = "auth_token"
	userFile  = "auth_user.json"
)

// SessionStore keeps the session under a state directory, readable only
// by the owning user.
type SessionStore struct {
	dir    string
	logger zerolog.Logger
}

func NewSessionStore(dir string, logger zerolog.Logger) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return &SessionStore{dir: dir, logger: logger}, nil
}

func (s *SessionStore) Save(session *domain.Session) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(session.Token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), user, 0o600); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	return nil
}

// Load reads the stored session. No token file, or an empty one, means no
// session: (nil, nil). A corrupt user file is tolerated — the token alone
// still restores the session.
func (s *SessionStore) Load() (*domain.Session, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if len(token) == 0 {
		return nil, nil
	}

	session := &domain.Session{Token: string(token)}

	user, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err == nil {
		if uerr := json.Unmarshal(user, &session.User); uerr != nil {
			s.logger.Warn().Err(uerr).Msg("stored user profile is corrupt, keeping token only")
			session.User = domain.User{}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn().Err(err).Msg("failed to read stored user profile")
	}

	return session, nil
}

// Clear removes both files. Idempotent: missing files are not an error.
func (s *SessionStore) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}
