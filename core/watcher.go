package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem changes under the template and asset dirs
// and fires the reload callback. Dev mode only.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	done     chan struct{}
}

func NewWatcher(onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsw:      fsw,
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Watch registers dirs (recursively) and starts the event loop. Missing
// dirs are skipped so a site without components still watches.
func (w *Watcher) Watch(dirs ...string) error {
	registered := 0
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return nil
			}
			if addErr := w.fsw.Add(path); addErr == nil {
				registered++
			}
			return nil
		})
		if err != nil {
			continue
		}
	}

	if registered == 0 {
		return fmt.Errorf("no watchable directories among %s", strings.Join(dirs, ", "))
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New subdirectories need their own watch.
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.fsw.Add(ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
