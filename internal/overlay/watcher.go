package overlay

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/uiloop"
)

type watchState int

const (
	watching watchState = iota
	done
)

// Watcher waits for a tree view to appear inside a panel, installs the overlay
// once and then removes itself from the panel's content listeners.
type Watcher struct {
	installer *Installer
	panel     host.Panel
	state     watchState
}

func newWatcher(installer *Installer, p host.Panel) *Watcher {
	return &Watcher{installer: installer, panel: p}
}

// ChildAdded implements host.ContainerListener.
func (w *Watcher) ChildAdded(ctx context.Context, _ host.Component) {
	uiloop.Run(ctx, w.installer.loop, w.rescan)
}

func (w *Watcher) rescan(ctx context.Context) {
	if w.state == done {
		return
	}
	tree := FindTreeView(w.panel.Content())
	if tree == nil {
		return
	}
	w.installer.InstallIfNeeded(ctx, tree, w.panel)
	w.Detach()
	w.installer.markers.dropWatcher(w.panel.Key(), w)
	events.Overlay.WatchDetach(w.installer.registry.IDOf(w.panel), "installed")
}

// Detach stops watching. Calling it more than once is harmless.
func (w *Watcher) Detach() {
	if w.state == done {
		return
	}
	w.state = done
	if content := w.panel.Content(); content != nil {
		content.RemoveListener(w)
	}
}

// Done reports whether the watcher has finished.
func (w *Watcher) Done() bool {
	return w.state == done
}
