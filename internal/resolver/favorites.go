package resolver

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/panel"
)

var favoritesName = panel.Favorites.String()

// favoritesStrategy has no bindable collapse capability; it always collapses
// the tree directly.
type favoritesStrategy struct {
	r     *Resolver
	panel host.Panel
}

func (s *favoritesStrategy) CollapseAll(tree host.TreeView) host.Action {
	return collapseFallback(favoritesName, tree)
}

func (s *favoritesStrategy) SyncSelection() host.Action {
	file, ok := s.r.activeFile()
	if !ok {
		events.Action.NoOp(favoritesName, KindSync, "no active document")
		return host.NoOp
	}
	if s.r.nodes == nil {
		return host.NoOp
	}
	node, err := s.r.nodes.NodeFor(file)
	if err != nil || node == nil {
		events.Action.NoOp(favoritesName, KindSync, "no node for "+file.Path)
		return host.NoOp
	}
	template, ok := s.r.lookup(CategorySelect, SelectInFavoritesID)
	events.Action.Resolve(favoritesName, KindSync, SelectInFavoritesID, ok)
	if !ok {
		return host.NoOp
	}
	if _, ok := template.(host.ContextAware); !ok {
		events.Action.NoOp(favoritesName, KindSync, SelectInFavoritesID+" cannot take a node context")
		return host.NoOp
	}
	selectInFavorites := host.Bind(template, host.Fixed(node))
	return host.ActionFunc(func(ctx context.Context) {
		if !host.IsEnabled(selectInFavorites) {
			events.Action.NoOp(favoritesName, KindSync, "capability disabled")
			return
		}
		if s.panel != nil {
			s.panel.RequestVisible(ctx)
		}
		events.Action.Invoke(favoritesName, KindSync, SelectInFavoritesID)
		selectInFavorites.Perform(ctx)
	})
}
