// Package filestore implements the flat-file persistence fallback: one JSON
// array-of-objects file per collection, rewritten wholesale on every write.
// It answers every repository call when no database is configured, producing
// the same document shapes as the gorm-backed repositories.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names shared by every domain repository.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionReviews  = "reviews"
	CollectionCarts    = "carts"
	CollectionOrders   = "orders"
	CollectionPayments = "payments"
)

// Store reads and writes JSON collections under a single directory.
// Writes are full-file replaces; concurrent writers are serialized per
// store, the last writer wins.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// New creates the store, creating the data directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read unmarshals the whole collection into dest (a pointer to a slice).
// A missing collection file is created empty on first read.
func (s *Store) Read(collection string, dest interface{}) error {
	s.mu.RLock()
	data, err := os.ReadFile(s.path(collection))
	s.mu.RUnlock()

	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("filestore: read %s: %w", collection, err)
		}
		// Lazily create the empty collection so later reads are uniform.
		if err := s.Write(collection, []struct{}{}); err != nil {
			return err
		}
		data = []byte("[]")
	}

	if len(data) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("filestore: decode %s: %w", collection, err)
	}
	return nil
}

// Write replaces the whole collection with records (a slice).
func (s *Store) Write(collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to a temp file and rename so readers never observe a torn file.
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", collection, err)
	}
	return nil
}
