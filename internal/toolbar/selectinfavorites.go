// Package toolbar provides the editor toolbar "Select in Favorites" action.
package toolbar

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/resolver"
	"github.com/atomicstack/navsync/internal/theme"
)

// Registration of the action on the editor toolbar.
const (
	Category = "Editor"
	ID       = "navsync.SelectInFavoritesToolbarAction"
	Path     = "Editors/Toolbars/Default"
	Position = 1515

	Label = "Select in Favorites"
)

// Registrar is implemented by hosts with a toolbar registry.
type Registrar interface {
	RegisterToolbarAction(path, id string, position int, action host.Action)
}

// Button is the toolbar presenter for one render pass.
type Button struct {
	// Label is empty when the button shows the delegated action's icon.
	Label     string
	Tooltip   string
	Icon      theme.Icon
	Enabled   bool
	Delegated bool

	action host.Action
}

// Click runs the action behind the button when it is enabled.
func (b Button) Click(ctx context.Context) {
	if !b.Enabled || b.action == nil {
		return
	}
	b.action.Perform(ctx)
}

// SelectInFavorites delegates to the built-in favorites select capability.
type SelectInFavorites struct {
	caps    host.Capabilities
	tooltip string
}

// New builds the action. The tooltip is taken from the built-in capability
// when it is registered at construction time.
func New(caps host.Capabilities) *SelectInFavorites {
	a := &SelectInFavorites{caps: caps}
	if described, ok := a.builtIn().(host.Described); ok {
		a.tooltip = described.Description()
	}
	return a
}

// Register places a new action on the editor toolbar.
func Register(r Registrar, caps host.Capabilities) *SelectInFavorites {
	a := New(caps)
	r.RegisterToolbarAction(Path, ID, Position, a)
	return a
}

func (a *SelectInFavorites) Description() string {
	if a.tooltip != "" {
		return a.tooltip
	}
	return Label
}

// Perform invokes the built-in capability when it exists and is enabled.
func (a *SelectInFavorites) Perform(ctx context.Context) {
	builtIn := a.builtIn()
	if builtIn == nil || !host.IsEnabled(builtIn) {
		events.Toolbar.Invoke(ID, false)
		return
	}
	events.Toolbar.Invoke(ID, true)
	builtIn.Perform(ctx)
}

// Presenter builds the toolbar button. With the built-in capability present
// the button mirrors its enablement and description; otherwise it is a plain
// labelled button running this action.
func (a *SelectInFavorites) Presenter() Button {
	if builtIn := a.builtIn(); builtIn != nil {
		tooltip := a.tooltip
		if described, ok := builtIn.(host.Described); ok {
			tooltip = described.Description()
		}
		return Button{
			Tooltip:   tooltip,
			Icon:      theme.SafeIcon(theme.IconSelectInFavorites, 1),
			Enabled:   host.IsEnabled(builtIn),
			Delegated: true,
			action:    a,
		}
	}
	return Button{
		Label:   Label,
		Tooltip: a.Description(),
		Icon:    theme.SafeIcon(theme.IconSelectInFavorites, 1),
		Enabled: true,
		action:  a,
	}
}

func (a *SelectInFavorites) builtIn() host.Action {
	if a.caps == nil {
		return nil
	}
	action, ok := a.caps.ForID(resolver.CategorySelect, resolver.SelectInFavoritesID)
	if !ok {
		return nil
	}
	return action
}
