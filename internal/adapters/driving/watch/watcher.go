// Package watch drives the segmenter from filesystem events: structure
// files dropped into a watched directory are segmented as they arrive.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
	"github.com/peptide3d/pdbkit-cli/internal/core/ports/driving"
	"github.com/peptide3d/pdbkit-cli/internal/logger"
)

// settleDelay batches the write events of a file still being copied in;
// segmentation starts this long after the last event for a path.
const settleDelay = 500 * time.Millisecond

// Ensure Watcher implements the interface.
var _ driving.Watcher = (*Watcher)(nil)

// Watcher segments structure files as they appear in a directory.
type Watcher struct {
	segmenter driving.Segmenter
	settings  domain.Settings

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a watcher that hands arriving files to segmenter.
func NewWatcher(segmenter driving.Segmenter, settings domain.Settings) *Watcher {
	return &Watcher{
		segmenter: segmenter,
		settings:  settings.Normalise(),
		pending:   make(map[string]*time.Timer),
	}
}

// Watch blocks processing filesystem events for dir until ctx is
// cancelled. Files matching the configured pattern are segmented once
// their events settle; files appearing in the configured output
// directory are ignored so segmentation output never feeds back into
// the watcher.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	// Without a separate output directory every window file written back
	// into dir would itself be picked up and segmented again.
	out := filepath.Clean(w.settings.OutputDir)
	if w.settings.OutputDir == "" || out == filepath.Clean(dir) {
		return fmt.Errorf("%w: watching requires an output directory distinct from %s",
			domain.ErrInvalidInput, dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s for %s files", dir, w.settings.FilePattern)

	for {
		select {
		case <-ctx.Done():
			w.drainPending()
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				w.schedule(ctx, event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %s", err)
		}
	}
}

// schedule arms (or re-arms) the settle timer for path.
func (w *Watcher) schedule(ctx context.Context, path string) {
	if !w.wants(path) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		n, err := w.segmenter.SegmentFile(ctx, path)
		if err != nil {
			logger.Error("%s: %s", path, err)
			return
		}
		logger.Info("%s: %d windows", path, n)
	})
}

// wants reports whether path should be segmented: its base name matches
// the file pattern and it is not inside the output directory.
func (w *Watcher) wants(path string) bool {
	ok, err := filepath.Match(w.settings.FilePattern, filepath.Base(path))
	if err != nil || !ok {
		return false
	}
	if w.settings.OutputDir != "" && filepath.Dir(path) == filepath.Clean(w.settings.OutputDir) {
		return false
	}
	return true
}

// drainPending stops any timers still armed at shutdown.
func (w *Watcher) drainPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}
