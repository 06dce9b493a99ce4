// Package watch reloads the candidate-list configuration while the widget
// is running. It watches the config file's directory (editors replace the
// file rather than write in place) and coalesces bursts of events into a
// single reload signal.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"phonefield/internal/log"
)

// ConfigWatcher monitors a single config file using fsnotify.
type ConfigWatcher struct {
	path string

	// Reload signals, capacity one: concurrent bursts collapse into a
	// single pending notification.
	reloadChan chan struct{}

	stopChan  chan struct{}
	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for the given config file path. The file itself
// may not exist yet; its directory must.
func New(path string) (*ConfigWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("error accessing config directory: %w", err)
	} else if !info.IsDir() {
		fsWatcher.Close()
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &ConfigWatcher{
		path:       path,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
	}, nil
}

// Reloads returns the channel that carries reload signals.
func (w *ConfigWatcher) Reloads() <-chan struct{} {
	return w.reloadChan
}

// Start begins watching. Calling Start on a running watcher is a no-op.
func (w *ConfigWatcher) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
	log.Debugf("watching %s for config changes", w.path)
}

// Stop shuts the watcher down and closes the underlying fsnotify watcher.
func (w *ConfigWatcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}

func (w *ConfigWatcher) loop() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("config change detected: %s", event)
			select {
			case w.reloadChan <- struct{}{}:
			default:
				// a reload is already pending
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("config watcher error: %v", err)
		}
	}
}
