package usecase

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"vecsim/internal/port"
)

// Status classifies the outcome of one document's work unit.
type Status string

const (
	// StatusCached means a record already existed and no work was done.
	StatusCached Status = "cached"
	// StatusWritten means a new record was computed and persisted.
	StatusWritten Status = "written"
	// StatusFailed means this document's unit failed; siblings proceed.
	StatusFailed Status = "failed"
)

// ComputeResult reports the outcome for one document identifier.
type ComputeResult struct {
	ID     string
	Status Status
	Err    error
}

// ProgressFunc is invoked after each completed work unit. It may be called
// from multiple workers; done counts completed units.
type ProgressFunc func(done, total int, id string)

// BatchComputer fans document identifiers out over a bounded worker pool,
// computing and persisting an embedding record for each one that does not
// already have one.
type BatchComputer struct {
	store     port.EmbeddingStore
	extractor port.TextExtractor
	embedder  port.Embedder
}

// NewBatchComputer creates a batch computer over the given collaborators.
func NewBatchComputer(store port.EmbeddingStore, extractor port.TextExtractor, embedder port.Embedder) *BatchComputer {
	return &BatchComputer{
		store:     store,
		extractor: extractor,
		embedder:  embedder,
	}
}

// DefaultConcurrency is the worker count used when none is configured:
// available parallelism minus two to leave headroom for the host, floored
// at one.
func DefaultConcurrency() int {
	n := runtime.NumCPU() - 2
	if n < 1 {
		n = 1
	}
	return n
}

// ComputeAll processes every id and returns one result per id, in input
// order. Up to concurrency ids are processed simultaneously; zero or
// negative means DefaultConcurrency. A failing unit never aborts its
// siblings, and ComputeAll returns only after every unit has finished.
func (b *BatchComputer) ComputeAll(ids []string, concurrency int, progress ProgressFunc) []ComputeResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency()
	}
	if concurrency > len(ids) {
		concurrency = len(ids)
	}

	results := make([]ComputeResult, len(ids))
	jobs := make(chan int)
	var done int32
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.computeOne(ids[i])
				if progress != nil {
					progress(int(atomic.AddInt32(&done, 1)), len(ids), ids[i])
				}
			}
		}()
	}

	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// computeOne runs the full pipeline for a single id: cache check, read,
// extract, embed, save. Every failure is captured in the result.
func (b *BatchComputer) computeOne(id string) ComputeResult {
	if b.store.Exists(id) {
		return ComputeResult{ID: id, Status: StatusCached}
	}

	raw, err := os.ReadFile(id)
	if err != nil {
		return failed(id, fmt.Errorf("read: %w", err))
	}

	text, err := b.extractor.Extract(raw)
	if err != nil {
		return failed(id, fmt.Errorf("extract: %w", err))
	}

	vectors, err := b.embedder.Embed([]string{text})
	if err != nil {
		return failed(id, fmt.Errorf("embed: %w", err))
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return failed(id, fmt.Errorf("embed: model returned no vector"))
	}

	if err := b.store.Save(id, vectors[0]); err != nil {
		return failed(id, fmt.Errorf("save: %w", err))
	}

	return ComputeResult{ID: id, Status: StatusWritten}
}

func failed(id string, err error) ComputeResult {
	return ComputeResult{ID: id, Status: StatusFailed, Err: err}
}
