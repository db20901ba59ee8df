package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/navsync/internal/tmux"
	"github.com/atomicstack/navsync/internal/workspace"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	// KindWorkspace carries a *workspace.Workspace.
	KindWorkspace Kind = iota
	// KindEditors carries a tmux.EditorSnapshot.
	KindEditors
)

func (k Kind) String() string {
	switch k {
	case KindWorkspace:
		return "workspace"
	case KindEditors:
		return "editors"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend source.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Options select the sources a Watcher runs.
type Options struct {
	WorkspacePath string
	SocketPath    string
	PollEditors   bool
	Interval      time.Duration
}

var (
	fetchEditors  = tmux.FetchEditors
	loadWorkspace = workspace.Load
)

// Watcher publishes workspace reloads and tmux editor snapshots.
type Watcher struct {
	opts Options

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts the sources enabled in opts.
func NewWatcher(opts Options) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	if opts.WorkspacePath != "" {
		w.startWorkspaceWatcher()
	}
	if opts.PollEditors {
		w.startEditorPoller()
	}

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

// Stop cancels the watcher. Sources exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all sources have exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startEditorPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindEditors, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		return fetchEditors(w.opts.SocketPath)
	})
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		return w.emit(Event{Kind: kind, Data: data, Err: err})
	}

	if !emit() {
		return
	}

	interval := w.opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
