package overlay

import "github.com/atomicstack/navsync/internal/host"

type treeMarkers struct {
	installed   bool
	savedHeader host.Header
	surface     *Surface
}

// Markers is the side table holding per-tree and per-panel bookkeeping.
type Markers struct {
	trees    map[string]*treeMarkers
	watchers map[string]*Watcher
}

func newMarkers() *Markers {
	return &Markers{
		trees:    make(map[string]*treeMarkers),
		watchers: make(map[string]*Watcher),
	}
}

// Installed reports whether an overlay is installed on the tree view key.
func (m *Markers) Installed(treeKey string) bool {
	entry, ok := m.trees[treeKey]
	return ok && entry.installed
}

// SavedHeader returns the header captured when the overlay was installed.
func (m *Markers) SavedHeader(treeKey string) (host.Header, bool) {
	entry, ok := m.trees[treeKey]
	if !ok || !entry.installed {
		return nil, false
	}
	return entry.savedHeader, true
}

// Surface returns the installed surface for treeKey.
func (m *Markers) Surface(treeKey string) *Surface {
	if entry, ok := m.trees[treeKey]; ok {
		return entry.surface
	}
	return nil
}

// Watcher returns the pending watcher for panelKey.
func (m *Markers) Watcher(panelKey string) *Watcher {
	return m.watchers[panelKey]
}

// Counts reports the number of installed trees and pending watchers.
func (m *Markers) Counts() (trees, watchers int) {
	return len(m.trees), len(m.watchers)
}

func (m *Markers) install(treeKey string, saved host.Header, surface *Surface) {
	m.trees[treeKey] = &treeMarkers{installed: true, savedHeader: saved, surface: surface}
}

func (m *Markers) takeTree(treeKey string) (treeMarkers, bool) {
	entry, ok := m.trees[treeKey]
	if !ok {
		return treeMarkers{}, false
	}
	delete(m.trees, treeKey)
	return *entry, true
}

func (m *Markers) setWatcher(panelKey string, w *Watcher) {
	m.watchers[panelKey] = w
}

func (m *Markers) takeWatcher(panelKey string) *Watcher {
	w := m.watchers[panelKey]
	delete(m.watchers, panelKey)
	return w
}

// dropWatcher clears the entry only when it still points at w.
func (m *Markers) dropWatcher(panelKey string, w *Watcher) {
	if m.watchers[panelKey] == w {
		delete(m.watchers, panelKey)
	}
}
