package backend

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const workspaceDebounce = 100 * time.Millisecond

// startWorkspaceWatcher emits the workspace once and again whenever the file
// changes. The parent directory is watched so editors that replace the file
// on save are still seen.
func (w *Watcher) startWorkspaceWatcher() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if !w.emitWorkspace() {
			return
		}

		path, err := filepath.Abs(w.opts.WorkspacePath)
		if err != nil {
			path = w.opts.WorkspacePath
		}
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			w.emit(Event{Kind: KindWorkspace, Err: fmt.Errorf("backend: create watcher: %w", err)})
			return
		}
		defer fsw.Close()
		if err := fsw.Add(filepath.Dir(path)); err != nil {
			w.emit(Event{Kind: KindWorkspace, Err: fmt.Errorf("backend: watch %s: %w", filepath.Dir(path), err)})
			return
		}

		reload := newDebouncer(workspaceDebounce)
		defer reload.stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				if !w.emit(Event{Kind: KindWorkspace, Err: fmt.Errorf("backend: watch: %w", err)}) {
					return
				}
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				reload.trigger()
			case <-reload.fired():
				if !w.emitWorkspace() {
					return
				}
			}
		}
	}()
}

func (w *Watcher) emitWorkspace() bool {
	ws, err := loadWorkspace(w.opts.WorkspacePath)
	return w.emit(Event{Kind: KindWorkspace, Data: ws, Err: err})
}
