package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// Storage is the persistence boundary: whole-collection reads and writes
// against a single durable unit. Every write rewrites the full file, so cost
// is O(total store size), not O(changed records). There are no partial
// writes and no transactions spanning collections.
type Storage interface {
	// ReadCollection returns a snapshot of the named collection. An unknown
	// name yields an empty collection, not an error.
	ReadCollection(ctx context.Context, name string) ([]Document, error)

	// WriteCollection replaces the named collection and flushes the store.
	WriteCollection(ctx context.Context, name string, docs []Document) error

	// Update runs fn on the current contents of the named collection and
	// persists whatever fn returns, all under the exclusive writer lock.
	// This is the only safe way to do read-modify-write: two concurrent
	// Updates never interleave, so the classic lost-update race between
	// "read collection" and "write collection" cannot happen.
	Update(ctx context.Context, name string, fn func(docs []Document) ([]Document, error)) error

	Close() error
}

// storeFile is the on-disk layout: named collections plus store metadata.
type storeFile struct {
	Collections map[string][]Document `json:"collections"`
	Metadata    storeMetadata         `json:"metadata"`
}

type storeMetadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// jsonFileStorage implements Storage against one JSON file. A sync.RWMutex
// serializes in-process callers; a sidecar flock excludes other processes.
type jsonFileStorage struct {
	path     string
	fileLock *flock.Flock
	mu       sync.RWMutex
}

const lockAcquireTimeout = 3 * time.Second

// OpenJSONStorage opens (or creates) the store file at path and guarantees
// the given collections exist. It fails fast when the file cannot be read,
// parsed or created: a store that cannot be opened is fatal, never a silent
// empty store.
func OpenJSONStorage(path string, collections ...string) (Storage, error) {
	s := &jsonFileStorage{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockAcquireTimeout)
	defer cancel()
	unlock, err := s.lockFile(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	// Seed missing collections so readers never see an absent name.
	changed := false
	for _, name := range collections {
		if _, ok := data.Collections[name]; !ok {
			data.Collections[name] = []Document{}
			changed = true
		}
	}
	if changed {
		if err := s.save(data); err != nil {
			return nil, fmt.Errorf("failed to initialize store %s: %w", path, err)
		}
	}

	return s, nil
}

// lockFile acquires the cross-process lock and returns its release func.
func (s *jsonFileStorage) lockFile(ctx context.Context) (func(), error) {
	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock for %s", s.path)
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}

// load reads and parses the store file. Caller must hold locks. A missing or
// empty file is a fresh store; a corrupt file is an error.
func (s *jsonFileStorage) load() (*storeFile, error) {
	fresh := &storeFile{
		Collections: map[string][]Document{},
		Metadata: storeMetadata{
			Version:   "1.0",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		},
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(raw) == 0 {
		return fresh, nil
	}

	var data storeFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if data.Collections == nil {
		data.Collections = map[string][]Document{}
	}
	return &data, nil
}

// save writes the store file atomically (temp file then rename). Caller must
// hold locks.
func (s *jsonFileStorage) save(data *storeFile) error {
	data.Metadata.UpdatedAt = time.Now().UTC()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

func (s *jsonFileStorage) ReadCollection(ctx context.Context, name string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Collections[name], nil
}

func (s *jsonFileStorage) WriteCollection(ctx context.Context, name string, docs []Document) error {
	return s.Update(ctx, name, func([]Document) ([]Document, error) {
		return docs, nil
	})
}

func (s *jsonFileStorage) Update(ctx context.Context, name string, fn func(docs []Document) ([]Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	docs, err := fn(data.Collections[name])
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []Document{}
	}
	data.Collections[name] = docs

	return s.save(data)
}

func (s *jsonFileStorage) Close() error {
	return nil
}
