package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"vecsim/config"
	"vecsim/internal/adapter/cache"
	"vecsim/internal/adapter/store"
	"vecsim/internal/domain"
	"vecsim/internal/port"
	"vecsim/internal/usecase"
)

var searchTopK int

var searchCmd = &cobra.Command{
	Use:   "search <query> <file>...",
	Short: "Rank documents against a text query",
	Long: `Embed the query string and rank the given documents by cosine similarity
against it, best first. Every document must already have a cached record
(see 'vecsim compute').

Example:
  vecsim search "rust memory safety" articles/*.html`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 {
			return fmt.Errorf("%w: expected a query and at least 2 files", domain.ErrInvalidArgument)
		}
		return nil
	},
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	query, files := args[0], args[1:]

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	queryVector, err := embedQuery(cfg, embedder, query)
	if err != nil {
		return fmt.Errorf("failed to embed query: %w", err)
	}

	candidates, err := loadCandidates(store.NewFileStore(), files)
	if err != nil {
		return err
	}

	topK := cfg.Search.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	results, err := usecase.Search(queryVector, candidates, topK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, r := range results {
		fmt.Printf("%.8f %s\n", r.Score, r.ID)
	}
	return nil
}

// embedQuery embeds the query text, going through the persistent query
// cache when it is enabled.
func embedQuery(cfg *config.Config, embedder port.Embedder, query string) (domain.Vector, error) {
	var qc *cache.QueryCache
	if cfg.Search.QueryCache {
		if err := config.EnsureStateDir(GetRootDir()); err == nil {
			// Cache failures are never fatal; fall back to embedding.
			qc, _ = cache.Open(config.QueryCachePath(GetRootDir()))
		}
	}
	if qc != nil {
		defer qc.Close()
		if vector, ok := qc.Get(embedder.ModelName(), query); ok {
			return vector, nil
		}
	}

	vectors, err := embedder.Embed([]string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("model returned no vector")
	}

	if qc != nil {
		_ = qc.Put(embedder.ModelName(), query, vectors[0])
	}
	return vectors[0], nil
}
