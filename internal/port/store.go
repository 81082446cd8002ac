package port

import "vecsim/internal/domain"

// EmbeddingStore persists one vector per document identifier.
//
// Records are write-once: a Save for an id that already has a record is a
// no-op, so a record's value never changes after it is first written. A
// changed source document keeps its old vector until the record is removed
// externally.
type EmbeddingStore interface {
	// Exists reports whether a record is already persisted for id.
	Exists(id string) bool

	// Load reads the persisted vector for id. It fails with
	// domain.ErrNotFound if no record exists and domain.ErrCorruptRecord
	// if the payload cannot be parsed as a numeric vector.
	Load(id string) (domain.Vector, error)

	// Save persists the vector for id. The write is atomic with respect
	// to concurrent Load/Exists calls on the same id.
	Save(id string, vector domain.Vector) error
}
