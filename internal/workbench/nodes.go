package workbench

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/navsync/internal/host"
)

// ErrNoNode is returned for files outside every favorite root.
var ErrNoNode = errors.New("workbench: no node for file")

// Node is a file below a favorite root.
type Node struct {
	file host.FileRef
	root string
}

func (n Node) File() host.FileRef { return n.file }

func (n Node) DisplayName() string { return filepath.Base(n.file.Path) }

// Root is the favorite root the node lives under.
func (n Node) Root() string { return n.root }

func (w *Workbench) NodeFor(file host.FileRef) (host.Node, error) {
	if file.IsZero() {
		return nil, ErrNoNode
	}
	root, ok := w.ws.FavoriteRoot(file.Path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoNode, file.Path)
	}
	return Node{file: file, root: root}, nil
}
