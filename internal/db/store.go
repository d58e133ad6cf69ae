package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a requested record does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when creating a record whose ID is already taken.
var ErrDuplicateID = errors.New("record with this id already exists")

// ErrCorruptCollection is returned when a collection file exists but cannot be
// parsed. The file is deliberately never rewritten as empty: auto-repairing a
// corrupt collection would silently destroy data on the next save.
var ErrCorruptCollection = errors.New("collection file is corrupt")

// storeSchemaVersion is written into every collection envelope so the format
// can evolve without guessing.
const storeSchemaVersion = 1

// envelope is the on-disk representation of a collection.
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Records       json.RawMessage `json:"records"`
}

// Store persists ordered collections of JSON records, one file per collection,
// under a single data directory. Every mutation rewrites the whole file; a
// per-collection mutex serializes writers within the process.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store rooted there.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: data directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating data directory %q: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// WithLock runs fn while holding the collection's write lock. Repositories use
// it to make a load-modify-save cycle atomic with respect to other writers in
// this process.
func (s *Store) WithLock(collection string, fn func() error) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Load reads a collection into out, which must be a pointer to a slice.
// A missing file leaves out empty and returns nil. Both the current envelope
// format and a legacy bare JSON array are accepted. A file that parses as
// neither is reported as ErrCorruptCollection and left untouched.
func (s *Store) Load(collection string, out interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("store: reading collection %q: %w", collection, err)
	}
	if len(data) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Records != nil {
		if err := json.Unmarshal(env.Records, out); err != nil {
			return fmt.Errorf("store: %w: collection %q records: %v", ErrCorruptCollection, collection, err)
		}
		return nil
	}
	// Legacy format: a bare array at the top level.
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: %w: collection %q: %v", ErrCorruptCollection, collection, err)
	}
	return nil
}

// Save overwrites a collection with the given records. The file is written to
// a temporary sibling and renamed into place so readers never observe a
// truncated collection.
func (s *Store) Save(collection string, records interface{}) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding collection %q: %w", collection, err)
	}
	env, err := json.MarshalIndent(envelope{SchemaVersion: storeSchemaVersion, Records: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding envelope for %q: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("store: creating temp file for %q: %w", collection, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(env); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: writing collection %q: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: closing temp file for %q: %w", collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replacing collection %q: %w", collection, err)
	}
	return nil
}
