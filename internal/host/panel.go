package host

import "context"

// Component is any element living inside a panel's content tree. Components
// that hold children implement Container; the tree widget implements TreeView.
type Component interface{}

// Header is the opaque content occupying a tree view's header slot. A nil
// Header means the slot is empty.
type Header interface{}

// Panel is a dockable surface owned by the host window system.
type Panel interface {
	// Key identifies this panel instance. Reopening a panel with the same
	// identifier may produce a new instance with a different key.
	Key() string
	Content() Container
	Showing() bool
	RequestVisible(ctx context.Context)
}

// Container is a component that owns an ordered list of children and emits
// structural change notifications.
type Container interface {
	Children() []Component
	AddListener(ContainerListener)
	RemoveListener(ContainerListener)
}

// ContainerListener is notified whenever a child is added to a container.
// Implementations are compared by identity when removed, so pointer
// receivers are expected.
type ContainerListener interface {
	ChildAdded(ctx context.Context, child Component)
}

// TreeView is the scrollable tree widget living inside some panels.
type TreeView interface {
	Key() string
	Header() Header
	SetHeader(Header)
	RowCount() int
	CollapseRow(row int)
}

// Editor is implemented by panels that expose document editing.
type Editor interface {
	Panel
	// Kind names the implementation flavour of the editor panel, for example
	// "EditorTopComponent" or "MultiViewPeer".
	Kind() string
	Document() (FileRef, bool)
}

// FileRef is the file resource backing a document.
type FileRef struct {
	Path string
}

// IsZero reports whether the reference names no file.
func (f FileRef) IsZero() bool {
	return f.Path == ""
}

// Node is the logical tree node representation of a file.
type Node interface {
	File() FileRef
	DisplayName() string
}
