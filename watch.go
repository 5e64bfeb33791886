package iconsgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kataras/iconsgen/pkg/naming"
)

// DebounceDelay is how long Watch waits after the last change before re-running.
var DebounceDelay = 200 * time.Millisecond

// Watch runs the generator once and again after every batch of changes to
// .svg files in the source directory, until ctx is cancelled. Each run's
// outcome is passed to onRun; a failed run does not stop watching.
func Watch(ctx context.Context, opts Options, onRun func(*Result, error)) error {
	layout := NewLayout(opts.Root)

	// The watched directory must exist.
	if err := os.MkdirAll(layout.SVGDir, 0755); err != nil {
		return fmt.Errorf("failed to create source directory %q: %w", layout.SVGDir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(layout.SVGDir); err != nil {
		return fmt.Errorf("watch %s: %w", layout.SVGDir, err)
	}

	onRun(Run(opts))
	opts.logInfo("Watching %s for changes...", layout.SVGDir)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isSourceChange(ev) {
				fire = time.After(DebounceDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.logWarn("watch: %v", err)
		case <-fire:
			fire = nil
			onRun(Run(opts))
		}
	}
}

func isSourceChange(ev fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(ev.Name), naming.Ext) {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
