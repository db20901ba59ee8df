package workbench

import (
	"sort"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
)

// ToolbarEntry is an action registered on a toolbar path.
type ToolbarEntry struct {
	ID       string
	Position int
	Action   host.Action
}

// RegisterToolbarAction places action on the toolbar at path, ordered by
// position. Registering the same id again replaces the entry.
func (w *Workbench) RegisterToolbarAction(path, id string, position int, action host.Action) {
	entries := w.toolbars[path]
	for i, e := range entries {
		if e.ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	entries = append(entries, ToolbarEntry{ID: id, Position: position, Action: action})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	w.toolbars[path] = entries
	events.Toolbar.Register(path, id, position)
}

// Toolbar returns the entries registered on path.
func (w *Workbench) Toolbar(path string) []ToolbarEntry {
	return append([]ToolbarEntry(nil), w.toolbars[path]...)
}
