package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"vecsim/internal/adapter/extractor"
	"vecsim/internal/adapter/fs"
	"vecsim/internal/adapter/store"
	"vecsim/internal/usecase"
)

var computeConcurrency int

var computeCmd = &cobra.Command{
	Use:   "compute <path|pattern>...",
	Short: "Compute and cache embeddings for documents",
	Long: `Compute an embedding vector for each given document and persist it next
to the source file as <file>.embeddings. Files that already have a record
are skipped; delete the record to force recomputation.

Arguments may be files, directories (walked with the configured include and
exclude patterns), or glob patterns.

Examples:
  vecsim compute page.html
  vecsim compute docs/ 'notes/**/*.md'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().IntVarP(&computeConcurrency, "concurrency", "j", 0,
		"parallel workers (default: available CPUs minus 2)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	walker := fs.NewWalker(cfg.Compute.Includes, cfg.Compute.Excludes)
	files, err := walker.Expand(args)
	if err != nil {
		return fmt.Errorf("failed to resolve arguments: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched the given arguments")
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	bc := usecase.NewBatchComputer(store.NewFileStore(), extractor.NewHTMLExtractor(), embedder)

	concurrency := computeConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Compute.Concurrency
	}

	var bar *progressbar.ProgressBar
	var progress usecase.ProgressFunc
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
		progress = func(done, total int, id string) {
			bar.Set(done)
		}
	}

	results := bc.ComputeAll(files, concurrency, progress)

	var written, cached, failed int
	for _, r := range results {
		switch r.Status {
		case usecase.StatusWritten:
			written++
			fmt.Printf("written  %s\n", r.ID)
		case usecase.StatusCached:
			cached++
			fmt.Printf("cached   %s\n", r.ID)
		case usecase.StatusFailed:
			failed++
			fmt.Printf("failed   %s: %v\n", r.ID, r.Err)
		}
	}

	fmt.Printf("\n%d written, %d cached, %d failed\n", written, cached, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}
