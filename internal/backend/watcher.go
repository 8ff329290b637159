package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/livery-popup-control/internal/game"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindWorld Kind = iota
)

// Event conveys an updated world snapshot or an error from a reload.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher reloads the world file when it changes and publishes snapshots.
// Filesystem notifications drive reloads; a fixed-interval poll backs them
// up, since the game may rewrite the file via renames the notifier misses.
type Watcher struct {
	worldPath string
	interval  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher for the given world file.
func NewWatcher(worldPath string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		worldPath: worldPath,
		interval:  interval,
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan Event, 16),
	}

	w.startWorldWatcher()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The goroutine exits after its current reload
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startWorldWatcher() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.watch(func(context.Context) (interface{}, error) {
		throttle.wait()
		return game.LoadWorld(w.worldPath)
	})
}

func (w *Watcher) watch(fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: KindWorld, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	// Watch the directory rather than the file itself: atomic rewrites
	// replace the inode, which would silently detach a file watch.
	var notifyEvents chan fsnotify.Event
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		if err := fsw.Add(filepath.Dir(w.worldPath)); err == nil {
			notifyEvents = make(chan fsnotify.Event, 16)
			go forwardWorldEvents(fsw, w.worldPath, notifyEvents)
			defer fsw.Close()
		} else {
			fsw.Close()
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case _, ok := <-notifyEvents:
			if !ok {
				notifyEvents = nil
				continue
			}
			if !emit() {
				return
			}
		}
	}
}

// forwardWorldEvents filters the raw notifier stream down to mutations of
// the world file and forwards them. The output channel closes when the
// notifier's channels do.
func forwardWorldEvents(fsw *fsnotify.Watcher, worldPath string, out chan<- fsnotify.Event) {
	defer close(out)
	for {
		select {
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != filepath.Clean(worldPath) {
				continue
			}
			if !evt.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			out <- evt
		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
