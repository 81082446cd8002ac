package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker selects files for batch computation using doublestar glob
// patterns.
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a walker with the given include/exclude patterns.
// No includes means everything is included.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Expand resolves command-line arguments into a flat list of file paths.
// A plain file argument passes through untouched (even if it does not
// exist, so the caller can report the failure per file). A directory is
// walked with the configured include/exclude patterns. An argument with
// glob metacharacters is expanded against the filesystem.
func (w *Walker) Expand(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			walked, err := w.Walk(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, walked...)
		case err == nil:
			files = append(files, arg)
		case hasGlobMeta(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, err
			}
			sort.Strings(matches)
			files = append(files, matches...)
		default:
			// Nonexistent plain path: keep it, the work unit reports it.
			files = append(files, arg)
		}
	}

	return files, nil
}

// Walk returns the files under root matching the include patterns and not
// matching the exclude patterns, in lexical order.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
