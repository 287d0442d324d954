// Package watcher reports changes to a single file.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls onChange, debounced, when the watched file is written,
// created or replaced. Editors that save by rename are handled by watching
// the parent directory.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()

	fs    *fsnotify.Watcher
	done  chan struct{}
	once  sync.Once
	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for path
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		fs:       fs,
		done:     make(chan struct{}),
	}, nil
}

// Start begins delivering events in a goroutine
func (w *Watcher) Start() {
	go w.loop()
}

// Stop releases the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
		w.fs.Close()
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.trigger()
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
		default:
			w.onChange()
		}
	})
}
