package usecase

import (
	"fmt"
	"math"
	"sort"

	"vecsim/internal/domain"
)

// DefaultTopK is the number of results a search returns when the caller
// does not say otherwise.
const DefaultTopK = 5

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// It fails with domain.ErrDegenerateVector if either vector has zero norm
// and with domain.ErrCorruptRecord if the lengths differ, since vectors
// from one embedder always share a dimension.
func Cosine(a, b domain.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: dimension mismatch (%d vs %d)", domain.ErrCorruptRecord, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, domain.ErrDegenerateVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Search scores every candidate against the query and returns the top k,
// sorted by descending score with ties broken lexicographically by id.
// Fewer than k candidates means all of them are returned. Any degenerate
// or mis-shaped vector fails the whole search; no partial ranking is
// produced.
func Search(query domain.Vector, candidates []domain.Candidate, k int) ([]domain.SimilarityResult, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	results := make([]domain.SimilarityResult, 0, len(candidates))
	for _, c := range candidates {
		score, err := Cosine(query, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.ID, err)
		}
		results = append(results, domain.SimilarityResult{Score: score, ID: c.ID})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// Pairwise returns the similarity of every unordered pair of distinct
// candidates exactly once, in the combinatorial order of the input
// sequence. Nothing is truncated.
func Pairwise(candidates []domain.Candidate) ([]domain.PairResult, error) {
	results := make([]domain.PairResult, 0, len(candidates)*(len(candidates)-1)/2)

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			score, err := Cosine(candidates[i].Vector, candidates[j].Vector)
			if err != nil {
				return nil, fmt.Errorf("%s, %s: %w", candidates[i].ID, candidates[j].ID, err)
			}
			results = append(results, domain.PairResult{
				Score: score,
				A:     candidates[i].ID,
				B:     candidates[j].ID,
			})
		}
	}

	return results, nil
}
