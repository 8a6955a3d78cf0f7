package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after a change before re-running.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Options
	// Debounce is the quiet period after the last change (default: DefaultDebounce)
	Debounce time.Duration
}

// Watch runs the pipeline over paths once, then again each time one of them
// is written, created or renamed into place. Every batch of results is passed
// to onResults. Watch blocks until ctx is cancelled and then returns nil.
func (e *Engine) Watch(ctx context.Context, paths []string, opts WatchOptions, onResults func([]*Result)) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files instead of writing them, so watch the
	// parent directories and filter by name.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	run := func() error {
		results, err := e.RunFiles(ctx, paths, opts.Options)
		if err != nil {
			return err
		}
		onResults(results)
		return nil
	}

	if err := run(); err != nil {
		return nil //nolint:nilerr // only fails on cancellation
	}

	e.logger.Info("watching for changes", "files", len(paths))

	var debounceTimer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			e.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(debounce)
			fire = debounceTimer.C

		case <-fire:
			fire = nil
			if err := run(); err != nil {
				return nil //nolint:nilerr // only fails on cancellation
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}
