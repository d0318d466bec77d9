package ports

import (
	"context"
	"iter"
)

// Watcher reports writes to a set of files.
type Watcher interface {
	// Start begins watching the given files. Events stop when ctx is done.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes yields batches of changed paths, each batch coalesced over a short window.
	Changes() iter.Seq[[]string]
}
