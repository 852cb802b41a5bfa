package portfolio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Store persists the content document as a single JSON file. Every operation
// loads the document fresh and writes it back in full; Update serializes the
// whole read-modify-write cycle behind a mutex so concurrent requests within
// this process cannot lose each other's writes. Saves go through a temp file
// and rename, so readers never observe a torn document. A second process
// writing the same file is not coordinated.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store at path, ensuring the data directory exists.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return &Store{path: path}, nil
}

// Load reads the document from disk. A missing file yields an empty store.
func (s *Store) Load() (ContentStore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ContentStore{Posts: []PostRecord{}, Papers: []PaperRecord{}}, nil
		}
		return ContentStore{}, &StorageError{Op: "load", Err: err}
	}
	var cs ContentStore
	if err := json.Unmarshal(data, &cs); err != nil {
		return ContentStore{}, &StorageError{Op: "load", Err: err, Corrupt: true}
	}
	if cs.Posts == nil {
		cs.Posts = []PostRecord{}
	}
	if cs.Papers == nil {
		cs.Papers = []PaperRecord{}
	}
	return cs, nil
}

// Save serializes the full store and overwrites the document atomically.
func (s *Store) Save(cs ContentStore) error {
	data, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Update runs fn against a freshly loaded document and saves the result.
// The store stays untouched when fn returns an error.
func (s *Store) Update(fn func(*ContentStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(&cs); err != nil {
		return err
	}
	return s.Save(cs)
}

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}
