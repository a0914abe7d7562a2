package driving

import "context"

// Watcher observes a directory and segments structure files as they
// arrive.
type Watcher interface {
	// Watch blocks until ctx is cancelled, segmenting every matching
	// file created in dir while watching. Per-file failures are logged
	// and skipped.
	Watch(ctx context.Context, dir string) error
}
