// Package session holds the explicit session context passed to client
// components, replacing ambient global token storage with a value that has
// a load/save/clear lifecycle.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
)

// ErrNoSession is returned when no stored session exists.
var ErrNoSession = errors.New("no stored session")

// Profile is the identity slice of the signed-in account kept client-side.
type Profile struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// Session is the authenticated context: the bearer token plus the profile
// it was issued for.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == domain.RoleAdmin
}

// Store persists sessions across runs.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore builds a store rooted at the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored session, or ErrNoSession when absent.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save writes the session atomically.
func (f *FileStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes any stored session.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
