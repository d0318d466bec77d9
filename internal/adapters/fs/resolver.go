package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs expands files, directories and glob patterns into checkable inputs.
// Directories are walked for files whose extension maps to a kind (or to the forced kind).
// Explicitly named files must have a recognized extension unless a kind is forced.
func (r *Resolver) ResolveInputs(patterns []string, root string, kind domain.Kind) ([]ports.Input, error) {
	found := make(map[string]domain.Kind)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", path)
		}

		for _, match := range matches {
			if err := r.collect(match, kind, found); err != nil {
				return nil, err
			}
		}
	}

	inputs := make([]ports.Input, 0, len(found))
	for path, k := range found {
		inputs = append(inputs, ports.Input{Path: path, Kind: k})
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })

	return inputs, nil
}

func (r *Resolver) collect(path string, forced domain.Kind, found map[string]domain.Kind) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		k := forced
		if k == domain.KindUnknown {
			k = domain.KindForPath(path)
		}
		if k == domain.KindUnknown {
			return zerr.With(domain.ErrUnknownKind, "path", path)
		}
		found[path] = k
		return nil
	}

	keep := func(p string) bool {
		k := domain.KindForPath(p)
		return k != domain.KindUnknown && (forced == domain.KindUnknown || k == forced)
	}
	for file := range r.walker.WalkFiles(path, keep) {
		found[file] = domain.KindForPath(file)
	}
	return nil
}
