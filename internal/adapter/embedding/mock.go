package embedding

import "vecsim/internal/domain"

// MockEmbedder produces deterministic vectors derived from the input text.
// Useful for tests and for exercising the pipeline without a model server.
type MockEmbedder struct {
	dimension int
}

// NewMockEmbedder creates a mock embedder with the given dimension.
func NewMockEmbedder(dimension int) *MockEmbedder {
	if dimension <= 0 {
		dimension = 8
	}
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) Embed(texts []string) ([]domain.Vector, error) {
	vectors := make([]domain.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = make(domain.Vector, e.dimension)
		for j, r := range text {
			vectors[i][j%e.dimension] += float32(r) / 1000.0
		}
	}
	return vectors, nil
}

func (e *MockEmbedder) Dimension() int {
	return e.dimension
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
