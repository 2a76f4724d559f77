package storage

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher notices external writes to the currently open file. It never
// mutates editor state itself: it records a pending change and calls
// the wake function so the event loop can pick the notice up on its own
// thread.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string
	wake    func()

	pending atomic.Bool
	closed  bool
	done    chan struct{}
	doneWg  sync.WaitGroup
}

// NewWatcher creates a watcher. wake is invoked from the watcher
// goroutine whenever a change is recorded and must be safe to call from
// any goroutine.
func NewWatcher(wake func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		wake:    wake,
		done:    make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching path, replacing any previous watch target.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	if w.path != "" {
		_ = w.watcher.Remove(w.path)
	}

	if err := w.watcher.Add(path); err != nil {
		return err
	}

	w.path = path
	w.pending.Store(false)
	return nil
}

// Consume reports whether an external change was recorded since the
// last call, clearing the notice.
func (w *Watcher) Consume() bool {
	return w.pending.Swap(false)
}

// Suppress discards any change notice recorded so far. Called around
// the editor's own saves so they do not surface as external changes.
func (w *Watcher) Suppress() {
	w.pending.Store(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.doneWg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.pending.Store(true)
				if w.wake != nil {
					w.wake()
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the editor keeps running
			// without external-change notices.
		}
	}
}
