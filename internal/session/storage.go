package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Snapshot is the persisted subset of a session: exactly the token and the
// user. UI state never reaches storage.
type Snapshot struct {
	Token string       `json:"token"`
	User  *SessionUser `json:"user"`
}

// Storage is the durable backing for session snapshots.
type Storage interface {
	Load() (*Snapshot, error)
	Save(Snapshot) error
}

// FileStorage persists snapshots as a JSON file, the local analog of the
// browser's durable storage.
type FileStorage struct {
	path string
}

// NewFileStorage builds a file-backed storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the last snapshot. A missing file yields an empty snapshot.
func (s *FileStorage) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot atomically via a rename.
func (s *FileStorage) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// MemoryStorage keeps the snapshot in memory. Used by tests and callers that
// opt out of persistence.
type MemoryStorage struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewMemoryStorage builds an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the current snapshot.
func (s *MemoryStorage) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snap
	return &snap, nil
}

// Save replaces the current snapshot.
func (s *MemoryStorage) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}
