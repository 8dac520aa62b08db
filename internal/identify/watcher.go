package identify

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDefault is the default debounce interval for file events.
// Bootstrap writes several role files back to back; one rebuild covers
// the whole burst.
const debounceDefault = 200 * time.Millisecond

// Watcher watches a role directory and invokes a rebuild callback when
// its records change. The registry itself stays read-only; consumers
// swap in the freshly built one inside the callback.
type Watcher struct {
	dir      string
	onChange func()
	debounce time.Duration
}

// NewWatcher creates a watcher for the given role directory.
func NewWatcher(dir string, onChange func()) *Watcher {
	return &Watcher{
		dir:      dir,
		onChange: onChange,
		debounce: debounceDefault,
	}
}

// Run watches the directory for role file changes. Blocks until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	// A single timer resets on each relevant event; when it fires, one
	// rebuild covers everything accumulated since.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_ = err // transient watch errors are not fatal

		case <-timer.C:
			w.onChange()
		}
	}
}
