package state

import "github.com/atomicstack/navsync/internal/tmux"

type EditorStore interface {
	Entries() []tmux.Editor
	SetEntries([]tmux.Editor)
	Session() string
	SetSession(string)
	ActiveID() string
}

type editorStore struct {
	entries []tmux.Editor
	session string
}

func NewEditorStore() EditorStore {
	return &editorStore{}
}

func (e *editorStore) Entries() []tmux.Editor {
	return cloneEditors(e.entries)
}

func (e *editorStore) SetEntries(entries []tmux.Editor) {
	e.entries = cloneEditors(entries)
}

func (e *editorStore) Session() string {
	return e.session
}

func (e *editorStore) SetSession(session string) {
	e.session = session
}

// ActiveID returns the pane id of the active editor, or "".
func (e *editorStore) ActiveID() string {
	for _, entry := range e.entries {
		if entry.Active {
			return entry.PaneID
		}
	}
	return ""
}

func cloneEditors(entries []tmux.Editor) []tmux.Editor {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Editor, len(entries))
	copy(dup, entries)
	return dup
}
