// Package session persists the authenticated identity across CLI invocations.
// The on-disk shape mirrors the web client's tf_auth storage key so both
// clients can share a home directory.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/team13/tutorfind-cli/internal/config"
	"github.com/team13/tutorfind-cli/internal/domain"
	"github.com/team13/tutorfind-cli/internal/logging"
)

// state is the persisted session file shape.
type state struct {
	User  *domain.UserSummary `json:"user,omitempty"`
	Token string              `json:"token,omitempty"`
}

// legacyState is the pre-token file shape kept for migration. It carried a
// single name and a lowercase role.
type legacyState struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	ID    int64  `json:"id"`
}

// Store holds the in-memory session and its backing file.
type Store struct {
	path  string
	state state
	log   *logging.Logger
}

// New creates a store backed by the configured auth file.
func New() *Store {
	return NewAt(config.GetPaths().AuthFile)
}

// NewAt creates a store backed by an explicit file path.
func NewAt(path string) *Store {
	return &Store{path: path, log: logging.New("session")}
}

// Load reads the session file. A missing file yields an empty session. An
// unparsable file is removed and also yields an empty session; corruption is
// never surfaced as an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.state = state{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	var st state
	if jsonErr := json.Unmarshal(data, &st); jsonErr != nil || (st.User == nil && st.Token == "") {
		if legacy, ok := parseLegacy(data); ok {
			s.state = legacy
			return nil
		}
		s.log.Warn("session_corrupt", map[string]any{"path": s.path}, jsonErr)
		_ = os.Remove(s.path)
		s.state = state{}
		return nil
	}

	if st.User != nil {
		st.User.Role = domain.ParseRole(string(st.User.Role))
	}
	s.state = st
	return nil
}

// parseLegacy maps the old {name,email,role,id} shape onto the current one:
// name becomes firstName, lastName is empty, the role is normalized, and no
// token is recovered. The file is left as-is until the next login rewrites it.
func parseLegacy(data []byte) (state, bool) {
	var legacy legacyState
	if err := json.Unmarshal(data, &legacy); err != nil {
		return state{}, false
	}
	if legacy.Email == "" || legacy.Role == "" {
		return state{}, false
	}
	return state{
		User: &domain.UserSummary{
			ID:        legacy.ID,
			Email:     legacy.Email,
			FirstName: legacy.Name,
			LastName:  "",
			Role:      domain.ParseRole(legacy.Role),
		},
	}, true
}

// Login replaces the whole session. The file is written before memory is
// updated, so a crash mid-login never leaves memory claiming a session the
// disk doesn't have.
func (s *Store) Login(user domain.UserSummary, token string) error {
	if token != "" && user.Email == "" {
		return errors.New("token without user identity")
	}
	user.Role = domain.ParseRole(string(user.Role))

	next := state{User: &user, Token: token}
	if err := s.write(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// write persists st atomically: temp file in the same directory, then rename.
func (s *Store) write(st state) error {
	if err := config.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tf_auth-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return os.Chmod(s.path, 0600)
}

// Logout clears memory and removes the file. A missing file is not an error.
func (s *Store) Logout() error {
	s.state = state{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// User returns the logged-in identity, or nil.
func (s *Store) User() *domain.UserSummary {
	return s.state.User
}

// Token returns the bearer token, or "".
func (s *Store) Token() string {
	return s.state.Token
}

// Role returns the logged-in role, or RoleNone.
func (s *Store) Role() domain.Role {
	if s.state.User == nil {
		return domain.RoleNone
	}
	return s.state.User.Role
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.state.Token != ""
}
