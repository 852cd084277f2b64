package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindMenuFile Kind = iota
)

// Event conveys reloaded data or an error from a watched file.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Loader reads and decodes the watched file.
type Loader func(path string) (interface{}, error)

// Watcher reloads a file whenever it changes on disk and publishes events.
type Watcher struct {
	path  string
	delay time.Duration
	load  Loader

	fs *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches path, calling load once a burst of changes has been
// quiet for delay. The parent directory is watched so editors that replace
// the file on save keep being observed.
func NewWatcher(path string, delay time.Duration, load Loader) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   abs,
		delay:  delay,
		load:   load,
		fs:     fsw,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.watch()

	go func() {
		w.wg.Wait()
		fsw.Close()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) watch() {
	defer w.wg.Done()

	debounce := newDebouncer(w.delay)
	defer debounce.stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(evt) {
				debounce.trigger()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindMenuFile, Path: w.path, Err: fmt.Errorf("watch %s: %w", w.path, err)}) {
				return
			}
		case <-debounce.fired():
			debounce.done()
			data, err := w.load(w.path)
			if !w.emit(Event{Kind: KindMenuFile, Path: w.path, Data: data, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename)
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
