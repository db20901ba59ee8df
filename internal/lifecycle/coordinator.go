// Package lifecycle keeps overlays in step with the host's panel registry.
//
// The Coordinator listens for panels opening, closing and being activated,
// and for changes to the set of open projects. Supported navigation panels
// get an overlay installed (now or once their tree view appears); closed
// panels get it removed again.
package lifecycle

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging/events"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/uiloop"
)

// Installer is the part of overlay.Installer the coordinator drives.
type Installer interface {
	EnsureInstalled(ctx context.Context, p host.Panel)
	Teardown(ctx context.Context, p host.Panel)
}

// Deps are the collaborators of a Coordinator. Projects may be nil.
type Deps struct {
	Registry  host.Registry
	Projects  host.Projects
	Installer Installer
	Loop      *uiloop.Loop
}

type handlerFunc func(ctx context.Context, evt host.RegistryEvent)

// Coordinator routes registry and project notifications to the installer.
type Coordinator struct {
	deps        Deps
	handlers    map[host.EventKind]handlerFunc
	unsubscribe []func()
	started     bool
}

// New builds a coordinator. Call Start to begin listening.
func New(deps Deps) *Coordinator {
	c := &Coordinator{deps: deps}
	c.handlers = map[host.EventKind]handlerFunc{
		host.EventOpened:    c.handleOpened,
		host.EventActivated: c.handleActivated,
		host.EventClosed:    c.handleClosed,
	}
	return c
}

// Start subscribes to the registry and project streams, then installs on
// every panel that is already open. Calling Start twice is a no-op.
func (c *Coordinator) Start(ctx context.Context) {
	if c.started || c.deps.Registry == nil || c.deps.Installer == nil {
		return
	}
	c.started = true
	c.unsubscribe = append(c.unsubscribe, c.deps.Registry.Subscribe(c.onRegistry))
	if c.deps.Projects != nil {
		c.unsubscribe = append(c.unsubscribe, c.deps.Projects.Subscribe(c.onProjects))
	}

	opened := c.deps.Registry.Opened()
	events.Lifecycle.Start(len(opened))
	for _, p := range opened {
		c.install(ctx, "startup", p)
	}
	if fav := c.deps.Registry.Find(panel.IDFavorites); fav != nil {
		c.install(ctx, "startup", fav)
	}
}

// Stop removes every listener registered by Start.
func (c *Coordinator) Stop() {
	if !c.started {
		return
	}
	for _, unsubscribe := range c.unsubscribe {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
	c.unsubscribe = nil
	c.started = false
	events.Lifecycle.Stop()
}

// Started reports whether the coordinator is listening.
func (c *Coordinator) Started() bool {
	return c.started
}

func (c *Coordinator) onRegistry(ctx context.Context, evt host.RegistryEvent) {
	handler, ok := c.handlers[evt.Kind]
	if !ok {
		return
	}
	handler(ctx, evt)
}

func (c *Coordinator) handleOpened(ctx context.Context, evt host.RegistryEvent) {
	c.install(ctx, evt.Kind.String(), evt.Panel)
}

func (c *Coordinator) handleActivated(ctx context.Context, evt host.RegistryEvent) {
	active := c.deps.Registry.Activated()
	if active == nil {
		return
	}
	c.install(ctx, evt.Kind.String(), active)
}

func (c *Coordinator) handleClosed(ctx context.Context, evt host.RegistryEvent) {
	p := evt.Panel
	if _, ok := c.classify(evt.Kind.String(), p); !ok {
		return
	}
	uiloop.Run(ctx, c.deps.Loop, func(ctx context.Context) {
		c.deps.Installer.Teardown(ctx, p)
	})
}

func (c *Coordinator) onProjects(ctx context.Context) {
	var found []string
	for _, id := range panel.KnownIDs() {
		p := c.deps.Registry.Find(id)
		if p == nil {
			continue
		}
		found = append(found, id)
		target := p
		uiloop.Run(ctx, c.deps.Loop, func(ctx context.Context) {
			c.deps.Installer.EnsureInstalled(ctx, target)
		})
	}
	events.Lifecycle.Projects(found)
}

func (c *Coordinator) install(ctx context.Context, kind string, p host.Panel) {
	if _, ok := c.classify(kind, p); !ok {
		return
	}
	uiloop.Run(ctx, c.deps.Loop, func(ctx context.Context) {
		c.deps.Installer.EnsureInstalled(ctx, p)
	})
}

// classify derives the variant fresh from the panel's current identifier.
func (c *Coordinator) classify(kind string, p host.Panel) (panel.Variant, bool) {
	if p == nil {
		return panel.Unsupported, false
	}
	id := c.deps.Registry.IDOf(p)
	variant := panel.Classify(id)
	if !variant.Supported() {
		events.Lifecycle.Unsupported(kind, id)
		return variant, false
	}
	events.Lifecycle.Registry(kind, id, variant.String())
	return variant, true
}
