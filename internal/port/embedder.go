package port

import "vecsim/internal/domain"

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed generates embeddings for the given texts.
	// Returns a slice of vectors, one per input text.
	Embed(texts []string) ([]domain.Vector, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}

// TextExtractor turns raw document bytes into normalized plaintext
// suitable for embedding.
type TextExtractor interface {
	Extract(raw []byte) (string, error)
}
