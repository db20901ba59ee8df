package workbench

import (
	"context"
	"path/filepath"

	"github.com/atomicstack/navsync/internal/host"
)

const (
	editorIDPrefix   = "editor:"
	externalIDPrefix = "tmux-editor:"
)

// ExternalEditor is an editor running outside the workbench, for example in
// a tmux pane.
type ExternalEditor struct {
	Source string
	Title  string
	Path   string
	Active bool
}

// OpenEditor opens (or reuses) an editor panel for path and activates it.
func (w *Workbench) OpenEditor(ctx context.Context, path string) *Panel {
	id := editorIDPrefix + path
	if p := w.panel(id); p != nil {
		w.Activate(ctx, p)
		return p
	}
	p := w.newPanel(id, filepath.Base(path), KindEditor, AreaEditor, NewContainer(Label(path)))
	p.file = host.FileRef{Path: path}
	w.attach(ctx, p)
	w.Activate(ctx, p)
	return p
}

// SyncExternalEditors reconciles the external editor panels with editors.
// New editors are opened, vanished ones closed and changed documents
// updated. The active external editor becomes the showing editor unless a
// workbench editor is showing.
func (w *Workbench) SyncExternalEditors(ctx context.Context, editors []ExternalEditor) {
	seen := make(map[string]bool, len(editors))
	var active *Panel
	for _, ed := range editors {
		id := externalIDPrefix + ed.Source
		seen[id] = true
		p := w.panel(id)
		if p == nil {
			title := ed.Title
			if title == "" {
				title = filepath.Base(ed.Path)
			}
			p = w.newPanel(id, title, KindExternalEditor, AreaEditor, NewContainer(Label(ed.Path)))
			p.source = ed.Source
			p.file = host.FileRef{Path: ed.Path}
			w.attach(ctx, p)
		} else if p.file.Path != ed.Path {
			p.file = host.FileRef{Path: ed.Path}
			p.content.Add(ctx, Label(ed.Path))
		}
		if ed.Active {
			active = p
		}
	}
	for _, p := range w.Panels(AreaEditor) {
		if p.source != "" && !seen[p.id] {
			w.Close(ctx, p)
		}
	}
	if active == nil {
		return
	}
	if current := w.selected[AreaEditor]; current == nil || current.source != "" {
		w.show(ctx, active)
	}
}
