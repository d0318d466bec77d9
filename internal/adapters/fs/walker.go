// Package fs provides file system adapters for hashing documents and finding files to check.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	".markcheck":   true,
	"node_modules": true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root for which keep returns true.
// Paths are yielded in lexical order and include root as prefix.
func (w *Walker) WalkFiles(root string, keep func(path string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || (keep != nil && !keep(path)) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
