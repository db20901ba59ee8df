package workbench

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
)

// Container is a host.Container holding panel content.
type Container struct {
	children  []host.Component
	listeners []host.ContainerListener
}

// NewContainer returns a container holding children.
func NewContainer(children ...host.Component) *Container {
	return &Container{children: children}
}

func (c *Container) Children() []host.Component {
	return c.children
}

func (c *Container) AddListener(l host.ContainerListener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

func (c *Container) RemoveListener(l host.ContainerListener) {
	for i, existing := range c.listeners {
		if existing == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many structural listeners are attached.
func (c *Container) ListenerCount() int {
	return len(c.listeners)
}

// Add appends child and notifies the listeners attached at call time.
func (c *Container) Add(ctx context.Context, child host.Component) {
	c.children = append(c.children, child)
	snapshot := append([]host.ContainerListener(nil), c.listeners...)
	for _, l := range snapshot {
		l.ChildAdded(ctx, child)
	}
}

// Label is a plain text component.
type Label string
