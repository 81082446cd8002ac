package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vecsim/internal/domain"
)

// RecordSuffix is appended to a document identifier to name its record.
const RecordSuffix = ".embeddings"

// FileStore persists one record per document identifier as a sibling file
// named `<id>.embeddings`. The payload is a bare JSON array of floats, so
// records written by other tooling against the same layout stay readable.
//
// Records are write-once. Saving an id that already has a record leaves the
// existing record untouched, which makes recomputation a cheap no-op and
// means a changed source document is NOT re-embedded until its record is
// deleted externally.
type FileStore struct {
	suffix string
}

// NewFileStore creates a store using the default record suffix.
func NewFileStore() *FileStore {
	return &FileStore{suffix: RecordSuffix}
}

// RecordPath returns the artifact path for a document identifier.
func (s *FileStore) RecordPath(id string) string {
	return id + s.suffix
}

// Exists reports whether a record is already persisted for id.
func (s *FileStore) Exists(id string) bool {
	info, err := os.Stat(s.RecordPath(id))
	return err == nil && !info.IsDir()
}

// Load reads and parses the persisted vector for id.
func (s *FileStore) Load(id string) (domain.Vector, error) {
	data, err := os.ReadFile(s.RecordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read record for %s: %w", id, err)
	}

	var vector domain.Vector
	if err := json.Unmarshal(data, &vector); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", id, domain.ErrCorruptRecord, err)
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("%s: %w: empty vector", id, domain.ErrCorruptRecord)
	}

	return vector, nil
}

// Save persists the vector for id. A record that already exists is left
// as-is. The payload is written to a temp file in the destination
// directory and renamed into place, so a concurrent Load or Exists never
// observes a partially written record.
func (s *FileStore) Save(id string, vector domain.Vector) error {
	path := s.RecordPath(id)
	if s.Exists(id) {
		return nil
	}

	data, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("encode vector for %s: %w", id, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp record for %s: %w", id, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write record for %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write record for %s: %w", id, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish record for %s: %w", id, err)
	}

	return nil
}
