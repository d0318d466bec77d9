// Package app implements the application layer for markcheck.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/markcheck/internal/engine/checker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	checker  *checker.Checker
	resolver ports.InputResolver
	cache    ports.ResponseCache
	watcher  ports.Watcher
	logger   ports.Logger
	out      io.Writer
}

// New creates a new App instance.
func New(
	chk *checker.Checker,
	resolver ports.InputResolver,
	cache ports.ResponseCache,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		checker:  chk,
		resolver: resolver,
		cache:    cache,
		watcher:  watcher,
		logger:   log,
		out:      os.Stdout,
	}
}

// WithOutput sets the writer check results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	// Kind forces the document kind; KindUnknown picks it from each file's extension.
	Kind domain.Kind
	// Jobs bounds the number of concurrent validator requests. Zero means one per CPU.
	Jobs int
	// Watch keeps re-checking files as they are written until ctx is done.
	Watch bool
	// Root is the directory paths are resolved against; empty means the working directory.
	Root string
}

// Check validates every file matched by patterns and prints one line per file.
// It returns an error wrapping domain.ErrValidationFailed when any file is invalid.
func (a *App) Check(ctx context.Context, patterns []string, opts CheckOptions) error {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return err
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	inputs, err := a.resolver.ResolveInputs(patterns, root, opts.Kind)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return zerr.With(domain.ErrNoInputs, "root", root)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := a.checkInputs(ctx, root, inputs, jobs)
	if opts.Watch {
		return a.watch(ctx, root, inputs, jobs)
	}

	return summarize(outcomes)
}

// watch re-checks inputs whenever they change.
func (a *App) watch(ctx context.Context, root string, inputs []ports.Input, jobs int) error {
	byPath := make(map[string]ports.Input, len(inputs))
	paths := make([]string, 0, len(inputs))
	for _, input := range inputs {
		byPath[input.Path] = input
		paths = append(paths, input.Path)
	}

	if err := a.watcher.Start(ctx, paths); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %d files for changes", len(paths)))

	for batch := range a.watcher.Changes() {
		changed := make([]ports.Input, 0, len(batch))
		for _, path := range batch {
			if input, ok := byPath[path]; ok {
				changed = append(changed, input)
			}
		}
		if len(changed) > 0 {
			a.checkInputs(ctx, root, changed, jobs)
		}
	}

	return nil
}

// checkInputs checks inputs concurrently and prints the outcomes in input order.
func (a *App) checkInputs(ctx context.Context, root string, inputs []ports.Input, jobs int) []outcome {
	outcomes := make([]outcome, len(inputs))

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			outcomes[i] = a.checkFile(ctx, root, input)
			return nil
		})
	}
	_ = g.Wait()

	printOutcomes(a.out, outcomes)
	return outcomes
}

func (a *App) checkFile(ctx context.Context, root string, input ports.Input) outcome {
	name := displayName(root, input.Path)
	result := outcome{name: name, kind: input.Kind}

	// #nosec G304 -- input paths come from the resolver
	doc, err := os.ReadFile(input.Path)
	if err != nil {
		result.err = zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", input.Path)
		return result
	}

	res, err := a.checker.Check(ctx, domain.CacheKey{Suite: domain.CLISuite, Test: name, Kind: input.Kind}, doc)
	if err != nil {
		result.err = err
		return result
	}

	result.verdict = res.Verdict
	result.cached = res.Cache == domain.CacheFresh
	return result
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Kind limits removal to one document kind; KindUnknown removes the whole cache.
	Kind domain.Kind
}

// Clean removes cached validator responses.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	name := "response cache"
	if options.Kind != domain.KindUnknown {
		name = options.Kind.String() + " response cache"
	}

	a.logger.Info(fmt.Sprintf("removing %s...", name))
	if err := a.cache.Purge(options.Kind); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name))
	}
	a.logger.Info(fmt.Sprintf("removed %s", name))

	return nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInputNotFound.Error()), "root", root)
	}
	return abs, nil
}

// displayName returns path relative to root with forward slashes, or path itself outside root.
func displayName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// summarize turns per-file outcomes into the command result.
func summarize(outcomes []outcome) error {
	var errs []error
	invalid := 0
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			errs = append(errs, zerr.With(o.err, "file", o.name))
		case !o.verdict.Valid:
			invalid++
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if invalid > 0 {
		return errors.Join(domain.ErrValidationFailed,
			zerr.With(zerr.New(fmt.Sprintf("%d of %d files are invalid", invalid, len(outcomes))), "invalid_files", invalid))
	}
	return nil
}
