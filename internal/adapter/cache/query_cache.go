package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
	"vecsim/internal/domain"
)

var bucketQueries = []byte("queries")

// QueryCache persists query-string embeddings so repeated searches do not
// re-invoke the model. Entries are keyed by model name and query text, so
// switching models never serves a stale vector. The database is a
// disposable side artifact; deleting it only costs recomputation.
type QueryCache struct {
	db *bbolt.DB
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*QueryCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := bbolt.Open(path, 0644, nil)
	if err != nil {
		return nil, fmt.Errorf("open query cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketQueries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create queries bucket: %w", err)
	}

	return &QueryCache{db: db}, nil
}

// Get returns the cached vector for a model/query pair, if present.
func (c *QueryCache) Get(model, text string) (domain.Vector, bool) {
	var vector domain.Vector

	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketQueries).Get(cacheKey(model, text))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &vector)
	})
	if err != nil || vector == nil {
		return nil, false
	}

	return vector, true
}

// Put stores the vector for a model/query pair.
func (c *QueryCache) Put(model, text string, vector domain.Vector) error {
	data, err := json.Marshal(vector)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueries).Put(cacheKey(model, text), data)
	})
}

// Close closes the underlying database.
func (c *QueryCache) Close() error {
	return c.db.Close()
}

func cacheKey(model, text string) []byte {
	hash := sha256.Sum256([]byte(model + "\x00" + text))
	return hash[:]
}
