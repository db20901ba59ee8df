package resolver

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
)

// CollapseRows collapses every visible row of tree, starting from the last.
// Collapsing a row hides its descendants, so walking upwards keeps every
// remaining index valid while the row count shrinks.
func CollapseRows(tree host.TreeView) int {
	if tree == nil {
		return 0
	}
	collapsed := 0
	for row := tree.RowCount() - 1; row >= 0; row-- {
		tree.CollapseRow(row)
		collapsed++
	}
	return collapsed
}

func collapseFallback(variant string, tree host.TreeView) host.Action {
	return host.ActionFunc(func(context.Context) {
		rows := CollapseRows(tree)
		events.Action.Fallback(variant, KindCollapse, rows)
	})
}
