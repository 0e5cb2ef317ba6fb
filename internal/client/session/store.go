// Package session persists the logged-in identity across runs. The browser
// equivalent is origin-scoped local storage holding the token and username;
// here it is a small JSON file next to the app config.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

// Store holds the current identity. Get reports absent for any identity
// missing either field, so a half-written session can never be acted on.
type Store interface {
	Set(id models.Identity) error
	Get() (models.Identity, bool)
	Clear() error
}

// DefaultPath returns the session file location, creating its directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	boardDir := filepath.Join(configDir, "corkboard")
	if err := os.MkdirAll(boardDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(boardDir, "session.json"), nil
}

// FileStore keeps the identity in a JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Set(id models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileStore) Get() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.Identity{}, false
	}

	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return models.Identity{}, false
	}
	if !id.Present() {
		return models.Identity{}, false
	}
	return id, true
}

// Clear logs the identity out. Removing an already-missing file is fine, so
// repeated logouts are no-ops.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu sync.Mutex
	id models.Identity
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Set(id models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

func (s *MemStore) Get() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.id.Present() {
		return models.Identity{}, false
	}
	return s.id, true
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = models.Identity{}
	return nil
}
