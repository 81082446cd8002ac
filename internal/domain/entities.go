package domain

// Vector is a fixed-length embedding. Its length is set by the embedder
// that produced it and never changes afterwards.
type Vector []float32

// Candidate pairs a document identifier with its cached vector. Slices of
// candidates keep the caller's ordering so ranking output is deterministic.
type Candidate struct {
	ID     string
	Vector Vector
}

// SimilarityResult is one scored entry from a top-k search.
type SimilarityResult struct {
	Score float64
	ID    string
}

// PairResult is the similarity of one unordered document pair.
type PairResult struct {
	Score float64
	A     string
	B     string
}
