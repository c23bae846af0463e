// Package watch re-runs a callback when watched files or directory trees
// change, coalescing bursts of events.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
)

// Watcher monitors files and directory trees.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool // absolute file paths watched through their parent dir
	dirs     map[string]bool // absolute roots watched recursively
	debounce time.Duration
	onChange func(ctx context.Context) error
}

// New creates a watcher over paths. Files are watched through their parent
// directory; directories are watched recursively. Paths that do not exist
// are skipped with a warning.
func New(debounce time.Duration, onChange func(ctx context.Context) error, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		files:    map[string]bool{},
		dirs:     map[string]bool{},
		debounce: debounce,
		onChange: onChange,
	}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("failed to resolve watch path %s: %w", p, err)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		slog.Warn("Watch path does not exist", logfields.Path(abs))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat watch path %s: %w", abs, err)
	}
	if !info.IsDir() {
		w.files[abs] = true
		return w.watcher.Add(filepath.Dir(abs))
	}
	w.dirs[abs] = true
	return filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// relevant reports whether an event path belongs to a watched file or tree.
func (w *Watcher) relevant(name string) bool {
	if w.files[name] {
		return true
	}
	for dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Timers created under go1.23+ semantics drop stale fires on Stop/Reset.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			// New directories inside a watched tree need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
					}
				}
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			start := time.Now()
			if err := w.onChange(ctx); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
				continue
			}
			slog.Debug("Regenerated", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
		}
	}
}
