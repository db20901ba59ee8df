package backend

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/navsync/internal/tmux"
	"github.com/atomicstack/navsync/internal/workspace"
)

func withFetchEditors(t *testing.T, fn func(string) (tmux.EditorSnapshot, error)) {
	t.Helper()
	prev := fetchEditors
	fetchEditors = fn
	t.Cleanup(func() { fetchEditors = prev })
}

func nextEvent(t *testing.T, w *Watcher, kind Kind) Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			if !ok {
				t.Fatalf("events closed while waiting for %s", kind)
			}
			if evt.Kind == kind {
				return evt
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", kind)
		}
	}
}

func TestEditorPollerEmitsSnapshots(t *testing.T) {
	var calls int32
	withFetchEditors(t, func(socket string) (tmux.EditorSnapshot, error) {
		if socket != "/tmp/test.sock" {
			t.Errorf("unexpected socket %q", socket)
		}
		n := atomic.AddInt32(&calls, 1)
		if n == 2 {
			return tmux.EditorSnapshot{}, errors.New("tmux gone")
		}
		return tmux.EditorSnapshot{Editors: []tmux.Editor{{PaneID: "%1", Path: "/a.go"}}}, nil
	})

	w := NewWatcher(Options{SocketPath: "/tmp/test.sock", PollEditors: true, Interval: 10 * time.Millisecond})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	first := nextEvent(t, w, KindEditors)
	if first.Err != nil {
		t.Fatalf("unexpected error: %v", first.Err)
	}
	snapshot, ok := first.Data.(tmux.EditorSnapshot)
	if !ok || len(snapshot.Editors) != 1 {
		t.Fatalf("unexpected payload %#v", first.Data)
	}
	second := nextEvent(t, w, KindEditors)
	if second.Err == nil {
		t.Fatalf("expected error event")
	}
}

func TestWatcherWithoutSourcesClosesImmediately(t *testing.T) {
	w := NewWatcher(Options{})
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel not closed")
	}
}

func TestWorkspaceWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "one"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "navsync.yaml")
	if err := os.WriteFile(path, []byte("projects:\n  - path: one\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(Options{WorkspacePath: path})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	initial := nextEvent(t, w, KindWorkspace)
	if initial.Err != nil {
		t.Fatalf("initial load failed: %v", initial.Err)
	}
	ws := initial.Data.(*workspace.Workspace)
	if len(ws.Projects) != 1 {
		t.Fatalf("expected one project, got %#v", ws.Projects)
	}

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("projects:\n  - path: one\n  - path: two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for {
		evt := nextEvent(t, w, KindWorkspace)
		if evt.Err != nil {
			continue
		}
		if reloaded := evt.Data.(*workspace.Workspace); len(reloaded.Projects) == 2 {
			return
		}
	}
}

func TestWorkspaceLoadErrorIsReported(t *testing.T) {
	w := NewWatcher(Options{WorkspacePath: filepath.Join(t.TempDir(), "missing.yaml")})
	defer func() {
		w.Stop()
		w.Wait()
	}()
	evt := nextEvent(t, w, KindWorkspace)
	if evt.Err == nil {
		t.Fatalf("expected load error")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected throttle delay, got %s", elapsed)
	}
	var nilThrottle *throttle
	nilThrottle.wait()
}

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	defer d.stop()
	for i := 0; i < 5; i++ {
		d.trigger()
	}
	select {
	case <-d.fired():
	case <-time.After(time.Second):
		t.Fatalf("debouncer never fired")
	}
	select {
	case <-d.fired():
		t.Fatalf("expected a single signal")
	case <-time.After(50 * time.Millisecond):
	}
}
