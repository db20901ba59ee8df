package host

import "context"

// EventKind enumerates panel registry notifications.
type EventKind int

const (
	EventOpened EventKind = iota + 1
	EventClosed
	EventActivated
)

func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventClosed:
		return "closed"
	case EventActivated:
		return "activated"
	default:
		return "unknown"
	}
}

// RegistryEvent is published by the panel registry. Panel is nil for
// activation events that leave no panel active.
type RegistryEvent struct {
	Kind  EventKind
	Panel Panel
}

// RegistryListener receives registry events.
type RegistryListener func(ctx context.Context, evt RegistryEvent)

// Registry is the host's window/panel registry.
type Registry interface {
	Opened() []Panel
	Activated() Panel
	// Find returns the open panel registered under id, or nil.
	Find(id string) Panel
	// IDOf returns the stable identifier for panel, or "" when unknown.
	IDOf(panel Panel) string
	Subscribe(RegistryListener) (unsubscribe func())
}

// Projects publishes a notification whenever the set of open projects changes.
type Projects interface {
	Subscribe(func(ctx context.Context)) (unsubscribe func())
}

// Documents resolves the file behind the focused document editor.
type Documents interface {
	ActiveFile() (FileRef, bool)
}

// Nodes resolves a file to its logical node representation.
type Nodes interface {
	NodeFor(FileRef) (Node, error)
}
