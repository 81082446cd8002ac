package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"vecsim/internal/adapter/store"
	"vecsim/internal/domain"
	"vecsim/internal/usecase"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <file>...",
	Short: "Score every pair of documents",
	Long: `Compute the cosine similarity of every pair of the given documents, one
line per pair in argument order. Every document must already have a cached
record (see 'vecsim compute').

Example:
  vecsim similarity a.html b.html c.html`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("%w: expected at least 2 files", domain.ErrInvalidArgument)
		}
		return nil
	},
	RunE: runSimilarity,
}

func init() {
	rootCmd.AddCommand(similarityCmd)
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	candidates, err := loadCandidates(store.NewFileStore(), args)
	if err != nil {
		return err
	}

	results, err := usecase.Pairwise(candidates)
	if err != nil {
		return fmt.Errorf("similarity failed: %w", err)
	}

	for _, r := range results {
		fmt.Printf("%.8f %s %s\n", r.Score, r.A, r.B)
	}
	return nil
}
