package overlay

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/theme"
	"github.com/atomicstack/navsync/internal/uiloop"
	"github.com/google/uuid"
)

const iconSize = 1

// ActionSource resolves the behaviour behind the overlay buttons.
type ActionSource interface {
	CollapseAll(v panel.Variant, p host.Panel, tree host.TreeView) host.Action
	SyncSelection(v panel.Variant, p host.Panel) host.Action
}

// Installer owns the overlay side table.
type Installer struct {
	registry host.Registry
	actions  ActionSource
	loop     *uiloop.Loop
	markers  *Markers
	newToken func() string
}

// NewInstaller wires an installer to the host registry and an action source.
func NewInstaller(registry host.Registry, actions ActionSource, loop *uiloop.Loop) *Installer {
	return &Installer{
		registry: registry,
		actions:  actions,
		loop:     loop,
		markers:  newMarkers(),
		newToken: func() string { return uuid.NewString() },
	}
}

// Markers exposes the side table for inspection.
func (i *Installer) Markers() *Markers {
	return i.markers
}

// EnsureInstalled installs immediately when the panel already holds a tree
// view and otherwise attaches a Watcher that waits for one.
func (i *Installer) EnsureInstalled(ctx context.Context, p host.Panel) {
	if p == nil {
		return
	}
	if tree := FindTreeView(p.Content()); tree != nil {
		i.InstallIfNeeded(ctx, tree, p)
		return
	}
	i.watch(p)
}

// InstallIfNeeded swaps the overlay surface into tree's header unless one is
// already installed. It reports whether an installation happened.
func (i *Installer) InstallIfNeeded(ctx context.Context, tree host.TreeView, p host.Panel) bool {
	if tree == nil || p == nil {
		return false
	}
	id := i.registry.IDOf(p)
	if i.markers.Installed(tree.Key()) {
		events.Overlay.InstallSkipped(id, tree.Key())
		return false
	}
	variant := panel.Classify(id)
	surface := i.buildSurface(id, variant, p, tree)
	previous := tree.Header()
	i.markers.install(tree.Key(), previous, surface)
	tree.SetHeader(surface)
	events.Overlay.Install(id, tree.Key(), surface.Token, previous != nil)
	return true
}

// Teardown detaches any pending watcher and restores the header captured at
// installation time. Panels without an installed overlay are left untouched.
func (i *Installer) Teardown(ctx context.Context, p host.Panel) {
	if p == nil {
		return
	}
	id := i.registry.IDOf(p)
	if w := i.markers.takeWatcher(p.Key()); w != nil {
		w.Detach()
		events.Overlay.WatchDetach(id, "teardown")
	}
	tree := FindTreeView(p.Content())
	if tree == nil {
		return
	}
	entry, ok := i.markers.takeTree(tree.Key())
	if !ok || !entry.installed {
		return
	}
	tree.SetHeader(entry.savedHeader)
	events.Overlay.Teardown(id, tree.Key(), entry.savedHeader != nil)
}

func (i *Installer) watch(p host.Panel) {
	if i.markers.Watcher(p.Key()) != nil {
		return
	}
	content := p.Content()
	if content == nil {
		events.Overlay.WatchSkipped(i.registry.IDOf(p), "panel has no content")
		return
	}
	w := newWatcher(i, p)
	i.markers.setWatcher(p.Key(), w)
	content.AddListener(w)
	events.Overlay.WatchAttach(i.registry.IDOf(p))
}

func (i *Installer) buildSurface(id string, variant panel.Variant, p host.Panel, tree host.TreeView) *Surface {
	collapse := func(ctx context.Context) {
		events.Overlay.Click(id, ButtonCollapse)
		uiloop.Run(ctx, i.loop, func(ctx context.Context) {
			i.actions.CollapseAll(variant, p, tree).Perform(ctx)
		})
	}
	sync := func(ctx context.Context) {
		events.Overlay.Click(id, ButtonSync)
		uiloop.Run(ctx, i.loop, func(ctx context.Context) {
			i.actions.SyncSelection(variant, p).Perform(ctx)
		})
	}
	return &Surface{
		Token:   i.newToken(),
		PanelID: id,
		Variant: variant,
		Buttons: []Button{
			{
				Name:    ButtonCollapse,
				Tooltip: TooltipCollapse,
				Icon:    theme.SafeIcon(theme.IconCollapseTree, iconSize),
				onClick: collapse,
			},
			{
				Name:    ButtonSync,
				Tooltip: TooltipSync,
				Icon:    theme.SafeIcon(theme.IconSyncWithEditor, iconSize),
				onClick: sync,
			},
		},
	}
}
