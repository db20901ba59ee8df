// Package uiloop provides the single UI thread every overlay operation runs on.
//
// A Loop is a FIFO task queue consumed by exactly one goroutine. The binary
// drains it from the Bubble Tea Update loop; tests drain it explicitly. Tasks
// receive a context marked as running on the loop, which lets Run decide
// between executing inline and queueing.
package uiloop

import (
	"context"
	"sync"
)

// Task is a unit of work executed on the loop.
type Task func(ctx context.Context)

type loopKey struct{}

// Loop is a single-consumer task queue.
type Loop struct {
	mu      sync.Mutex
	queue   []Task
	closed  bool
	ready   chan struct{}
	done    chan struct{}
	closeMu sync.Once
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Post queues t for execution on the loop. It is safe to call from any
// goroutine. Tasks posted after Close are dropped.
func (l *Loop) Post(t Task) {
	if t == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, t)
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Pending reports the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Enter marks parent as running on this loop. Only the goroutine consuming the
// loop may use the returned context.
func (l *Loop) Enter(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	if On(parent, l) {
		return parent
	}
	return context.WithValue(parent, loopKey{}, l)
}

// Drain runs queued tasks on the calling goroutine until the queue is empty,
// including tasks queued while draining. It returns the number of tasks run.
func (l *Loop) Drain(parent context.Context) int {
	ctx := l.Enter(parent)
	ran := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return ran
		}
		t := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()
		t(ctx)
		ran++
	}
}

// Ready is signalled after tasks are posted.
func (l *Loop) Ready() <-chan struct{} {
	return l.ready
}

// Done is closed by Close.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Close stops accepting tasks and discards anything still queued.
func (l *Loop) Close() {
	l.closeMu.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.queue = nil
		l.mu.Unlock()
		close(l.done)
	})
}

// On reports whether ctx was produced by l.
func On(ctx context.Context, l *Loop) bool {
	if ctx == nil || l == nil {
		return false
	}
	owner, _ := ctx.Value(loopKey{}).(*Loop)
	return owner == l
}

// Run executes t inline when ctx already runs on l and queues it otherwise.
func Run(ctx context.Context, l *Loop, t Task) {
	if t == nil {
		return
	}
	if l == nil {
		t(ctx)
		return
	}
	if On(ctx, l) {
		t(ctx)
		return
	}
	l.Post(t)
}
