package pipeline

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

var errNotDirectory = errors.New("not a directory")

// Walk returns a lazy sequence of absolute paths to the regular files under root,
// in lexical order. Directories and other non-regular entries are never yielded.
// A failure to read part of the tree is yielded as a *domain.WalkError together
// with the affected path and the walk goes on with the next entry. Every range
// over the returned sequence walks the tree again from scratch.
func Walk(root string) (iter.Seq2[string, error], error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &domain.WalkError{Path: root, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &domain.WalkError{Path: abs, Err: err}
	}

	if !info.IsDir() {
		return nil, &domain.WalkError{Path: abs, Err: errNotDirectory}
	}

	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(path, &domain.WalkError{Path: path, Err: err}) {
					return filepath.SkipAll
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
	}, nil
}
