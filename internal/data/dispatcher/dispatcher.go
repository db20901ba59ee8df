package dispatcher

import (
	"context"

	"github.com/atomicstack/navsync/internal/backend"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/state"
	"github.com/atomicstack/navsync/internal/tmux"
	"github.com/atomicstack/navsync/internal/workbench"
	"github.com/atomicstack/navsync/internal/workspace"
)

type Result struct {
	WorkspaceUpdated bool
	EditorsUpdated   bool
	Err              error
}

// Host is the part of the workbench the dispatcher updates.
type Host interface {
	SetWorkspace(ctx context.Context, ws *workspace.Workspace) error
	SyncExternalEditors(ctx context.Context, editors []workbench.ExternalEditor)
}

type Dispatcher struct {
	host      Host
	workspace state.WorkspaceStore
	editors   state.EditorStore
}

func New(h Host, ws state.WorkspaceStore, e state.EditorStore) *Dispatcher {
	return &Dispatcher{host: h, workspace: ws, editors: e}
}

// Handle applies evt. It must run on the UI loop; ctx is passed on to the
// host so registry listeners run inline.
func (d *Dispatcher) Handle(ctx context.Context, evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Backend.Error(evt.Kind.String(), evt.Err)
		if evt.Kind == backend.KindWorkspace {
			d.workspace.SetErr(evt.Err)
		}
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindWorkspace:
		ws, ok := evt.Data.(*workspace.Workspace)
		if !ok || ws == nil {
			return res
		}
		d.workspace.Set(ws)
		events.Backend.Workspace(ws.Path, len(ws.Projects), len(ws.Favorites))
		if err := d.host.SetWorkspace(ctx, ws); err != nil {
			d.workspace.SetErr(err)
			res.Err = err
		}
		res.WorkspaceUpdated = true
	case backend.KindEditors:
		snapshot, ok := evt.Data.(tmux.EditorSnapshot)
		if !ok {
			return res
		}
		d.editors.SetEntries(snapshot.Editors)
		d.editors.SetSession(snapshot.Session)
		events.Backend.Editors(len(snapshot.Editors), d.editors.ActiveID())
		d.host.SyncExternalEditors(ctx, ExternalEditors(snapshot.Editors))
		res.EditorsUpdated = true
	}
	return res
}

// ExternalEditors converts tmux editor panes to workbench editors.
func ExternalEditors(editors []tmux.Editor) []workbench.ExternalEditor {
	if len(editors) == 0 {
		return nil
	}
	out := make([]workbench.ExternalEditor, 0, len(editors))
	for _, ed := range editors {
		title := ed.Title
		if ed.Target != "" {
			title = ed.Target + " " + ed.Command
		}
		out = append(out, workbench.ExternalEditor{
			Source: ed.PaneID,
			Title:  title,
			Path:   ed.Path,
			Active: ed.Active,
		})
	}
	return out
}
