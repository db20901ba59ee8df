// Package resolver turns a panel variant and an action kind into an executable
// host.Action.
//
// Each variant has its own Strategy. Strategies prefer a capability registered
// in the host and fall back to manipulating the tree directly; when neither is
// possible they return an action that does nothing. Nothing resolved here
// panics past the package boundary.
package resolver

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/panel"
)

// Strategy resolves the overlay actions for one panel variant.
type Strategy interface {
	CollapseAll(tree host.TreeView) host.Action
	SyncSelection() host.Action
}

// Resolver selects a Strategy per variant.
type Resolver struct {
	caps     host.Capabilities
	docs     host.Documents
	nodes    host.Nodes
	registry host.Registry
}

// New builds a resolver over the host capability surfaces.
func New(caps host.Capabilities, docs host.Documents, nodes host.Nodes, registry host.Registry) *Resolver {
	return &Resolver{caps: caps, docs: docs, nodes: nodes, registry: registry}
}

// For returns the strategy for variant acting on p.
func (r *Resolver) For(v panel.Variant, p host.Panel) Strategy {
	switch v {
	case panel.ProjectsLogical:
		return &projectsStrategy{r: r, panel: p, variant: v, selectID: SelectInProjectsID}
	case panel.ProjectsPhysical:
		return &projectsStrategy{r: r, panel: p, variant: v, selectID: SelectInFilesID}
	case panel.Favorites:
		return &favoritesStrategy{r: r, panel: p}
	default:
		return unsupportedStrategy{}
	}
}

// CollapseAll resolves the collapse-all action for p.
func (r *Resolver) CollapseAll(v panel.Variant, p host.Panel, tree host.TreeView) host.Action {
	return guard(KindCollapse, func() host.Action {
		return r.For(v, p).CollapseAll(tree)
	})
}

// SyncSelection resolves the sync-selection action for p.
func (r *Resolver) SyncSelection(v panel.Variant, p host.Panel) host.Action {
	return guard(KindSync, func() host.Action {
		return r.For(v, p).SyncSelection()
	})
}

func (r *Resolver) lookup(category, id string) (host.Action, bool) {
	if r.caps == nil {
		return nil, false
	}
	action, ok := r.caps.ForID(category, id)
	if !ok || action == nil {
		return nil, false
	}
	return action, true
}

func (r *Resolver) activeFile() (host.FileRef, bool) {
	if r.docs == nil {
		return host.FileRef{}, false
	}
	file, ok := r.docs.ActiveFile()
	if !ok || file.IsZero() {
		return host.FileRef{}, false
	}
	return file, true
}

type unsupportedStrategy struct{}

func (unsupportedStrategy) CollapseAll(host.TreeView) host.Action { return host.NoOp }

func (unsupportedStrategy) SyncSelection() host.Action { return host.NoOp }

// guard converts panics during resolution and invocation into no-ops.
func guard(kind string, resolve func() host.Action) (action host.Action) {
	defer func() {
		if rec := recover(); rec != nil {
			events.Action.Panic(kind, rec)
			action = host.NoOp
		}
	}()
	resolved := resolve()
	if resolved == nil {
		return host.NoOp
	}
	return safeAction{kind: kind, inner: resolved}
}

type safeAction struct {
	kind  string
	inner host.Action
}

func (a safeAction) Perform(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			events.Action.Panic(a.kind, rec)
		}
	}()
	a.inner.Perform(ctx)
}
