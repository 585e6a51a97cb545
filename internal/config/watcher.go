package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to a config file. The frame loop calls Poll once
// per frame; Poll never blocks.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
	// pending survives polls until the file has content to load
	pending bool
}

// NewWatcher watches the directory holding path, since editors often
// replace files by renaming over them.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{w: w, path: abs}, nil
}

// Poll drains pending events. When the file changed it is reloaded and
// returned; a file that fails to load is reported as an error and the
// caller keeps its current state. An empty file is a save in progress and
// is not loaded until a later poll finds it filled.
func (w *Watcher) Poll() (*Config, error) {
	changed := false
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return w.reload(changed)
			}
			if filepath.Clean(ev.Name) == w.path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				changed = true
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return w.reload(changed)
			}
			return nil, fmt.Errorf("watch %s: %w", w.path, err)
		default:
			return w.reload(changed)
		}
	}
}

func (w *Watcher) reload(changed bool) (*Config, error) {
	if changed {
		w.pending = true
	}
	if !w.pending {
		return nil, nil
	}
	info, err := os.Stat(w.path)
	if err != nil || info.Size() == 0 {
		return nil, nil
	}
	w.pending = false
	return Load(w.path)
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	return w.w.Close()
}
