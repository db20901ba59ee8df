package state

import "github.com/atomicstack/navsync/internal/workspace"

type WorkspaceStore interface {
	Current() *workspace.Workspace
	Set(*workspace.Workspace)
	Err() error
	SetErr(error)
	Generation() int
}

type workspaceStore struct {
	current    *workspace.Workspace
	err        error
	generation int
}

func NewWorkspaceStore() WorkspaceStore {
	return &workspaceStore{}
}

func (w *workspaceStore) Current() *workspace.Workspace {
	return w.current
}

// Set stores ws, clears the last error and bumps the generation.
func (w *workspaceStore) Set(ws *workspace.Workspace) {
	w.current = ws
	w.err = nil
	w.generation++
}

func (w *workspaceStore) Err() error {
	return w.err
}

func (w *workspaceStore) SetErr(err error) {
	w.err = err
}

// Generation counts successful loads.
func (w *workspaceStore) Generation() int {
	return w.generation
}
