package cli

import (
	"fmt"

	"vecsim/internal/domain"
	"vecsim/internal/port"
)

// loadCandidates loads the cached record for every file, preserving the
// argument order. Ranking needs a complete candidate set, so a missing or
// corrupt record fails the whole command.
func loadCandidates(st port.EmbeddingStore, files []string) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0, len(files))
	for _, file := range files {
		vector, err := st.Load(file)
		if err != nil {
			return nil, fmt.Errorf("run 'vecsim compute' first: %w", err)
		}
		candidates = append(candidates, domain.Candidate{ID: file, Vector: vector})
	}
	return candidates, nil
}
