// Package watcher reports when the content behind a catalog changes.
//
// Every source root is watched recursively (directories created later are
// added as they appear). Bursts of events for one source are coalesced into
// a single notification carrying the source's catalog kind.
package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/harrison/tunecat/internal/catalog"
	"github.com/harrison/tunecat/internal/filelock"
)

// DefaultDebounceDelay is the default delay for coalescing rapid writes
const DefaultDebounceDelay = 300 * time.Millisecond

// Source is one watched content root.
type Source struct {
	Kind      catalog.Kind
	Root      string
	Extension string
}

// Watcher watches content roots and emits the kind of each changed catalog.
type Watcher struct {
	watcher *fsnotify.Watcher
	sources []Source
	changes chan catalog.Kind
	errors  chan error
	done    chan struct{}

	mu            sync.Mutex
	debounceDelay time.Duration
	pending       map[catalog.Kind]*time.Timer
	closed        bool
}

// New starts watching sources. Roots must exist; the builder bootstraps them
// before the watcher is created.
func New(sources []Source, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}

	w := &Watcher{
		watcher:       fsw,
		changes:       make(chan catalog.Kind, len(sources)+1),
		errors:        make(chan error, 10),
		done:          make(chan struct{}),
		debounceDelay: debounce,
		pending:       make(map[catalog.Kind]*time.Timer),
	}

	for _, src := range sources {
		root, err := filepath.Abs(src.Root)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		src.Root = root
		w.sources = append(w.sources, src)

		if err := w.addRecursive(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.processEvents()

	return w, nil
}

// addRecursive adds the directory and all its subdirectories to the watcher
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Vanished between the event and the walk
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		return nil
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod || filelock.IsArtifact(event.Name) {
		return
	}

	src, ok := w.sourceFor(event.Name)
	if !ok {
		return
	}

	isDir := false
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			isDir = true
			if err := w.addRecursive(event.Name); err != nil {
				w.sendError(err)
			}
		}
	}

	// A removed or renamed path can no longer be inspected; it may have been
	// a directory full of matching files.
	gone := event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	matches := filepath.Ext(event.Name) == src.Extension
	if matches || isDir || gone {
		w.debounce(src.Kind)
	}
}

// sourceFor returns the source whose root contains path.
func (w *Watcher) sourceFor(path string) (Source, bool) {
	for _, src := range w.sources {
		rel, err := filepath.Rel(src.Root, path)
		if err != nil {
			continue
		}
		if rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)) {
			return src, true
		}
	}
	return Source{}, false
}

// debounce coalesces rapid events for the same catalog
func (w *Watcher) debounce(kind catalog.Kind) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if timer, exists := w.pending[kind]; exists {
		timer.Stop()
	}

	w.pending[kind] = time.AfterFunc(w.debounceDelay, func() {
		w.mu.Lock()
		delete(w.pending, kind)
		w.mu.Unlock()

		select {
		case w.changes <- kind:
		case <-w.done:
		default:
			// A notification for this kind is already queued
		}
	})
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Changes delivers the kind of every catalog whose content changed
func (w *Watcher) Changes() <-chan catalog.Kind {
	return w.changes
}

// Errors returns the channel for receiving errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	for _, timer := range w.pending {
		timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	close(w.done)

	return w.watcher.Close()
}
