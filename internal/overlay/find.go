package overlay

import "github.com/atomicstack/navsync/internal/host"

// FindTreeView searches root depth-first for the first tree view.
func FindTreeView(root host.Container) host.TreeView {
	if root == nil {
		return nil
	}
	for _, child := range root.Children() {
		if tree, ok := child.(host.TreeView); ok && tree != nil {
			return tree
		}
		if nested, ok := child.(host.Container); ok && nested != nil {
			if found := FindTreeView(nested); found != nil {
				return found
			}
		}
	}
	return nil
}
