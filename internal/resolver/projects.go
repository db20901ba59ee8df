package resolver

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/panel"
)

type projectsStrategy struct {
	r        *Resolver
	panel    host.Panel
	variant  panel.Variant
	selectID string
}

func (s *projectsStrategy) CollapseAll(tree host.TreeView) host.Action {
	action, ok := s.r.lookup(CategoryProject, CollapseAllID)
	events.Action.Resolve(s.variant.String(), KindCollapse, CollapseAllID, ok)
	if !ok {
		return collapseFallback(s.variant.String(), tree)
	}
	id := ""
	if s.r.registry != nil {
		id = s.r.registry.IDOf(s.panel)
	}
	bound := host.Bind(action, host.Fixed(id))
	return host.ActionFunc(func(ctx context.Context) {
		events.Action.Invoke(s.variant.String(), KindCollapse, CollapseAllID)
		bound.Perform(ctx)
	})
}

func (s *projectsStrategy) SyncSelection() host.Action {
	file, ok := s.r.activeFile()
	if !ok {
		events.Action.NoOp(s.variant.String(), KindSync, "no active document")
		return host.NoOp
	}
	template, ok := s.r.lookup(CategorySelect, s.selectID)
	events.Action.Resolve(s.variant.String(), KindSync, s.selectID, ok)
	if !ok {
		return host.NoOp
	}
	if _, ok := template.(host.ContextAware); !ok {
		events.Action.NoOp(s.variant.String(), KindSync, s.selectID+" cannot take a file context")
		return host.NoOp
	}
	bound := host.Bind(template, host.Fixed(file))
	return host.ActionFunc(func(ctx context.Context) {
		events.Action.Invoke(s.variant.String(), KindSync, s.selectID)
		bound.Perform(ctx)
	})
}
