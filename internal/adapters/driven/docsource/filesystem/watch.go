package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docq-labs/docq-cli/internal/logger"
)

// debounceWindow coalesces bursts of filesystem events into one callback.
const debounceWindow = 500 * time.Millisecond

// Watch blocks and invokes fn whenever a matching file in the directory is
// created, written, removed or renamed. Editors typically emit several
// events per save; those are coalesced within the debounce window.
// Watch returns when the context is cancelled, the watcher fails, or fn
// returns an error.
func (s *Source) Watch(ctx context.Context, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(event.Name), s.extension) {
				continue
			}
			if !event.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}
			logger.Debug("Change detected: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				fire = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", s.dir, err)

		case <-fire:
			timer = nil
			fire = nil
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
