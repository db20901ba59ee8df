package lifecycle

import (
	"context"

	"github.com/atomicstack/navsync/internal/host"
)

type stubPanel struct {
	key string
	id  string
}

func (p *stubPanel) Key() string                    { return p.key }
func (p *stubPanel) Content() host.Container        { return nil }
func (p *stubPanel) Showing() bool                  { return true }
func (p *stubPanel) RequestVisible(context.Context) {}

type stubRegistry struct {
	opened    []host.Panel
	activated host.Panel
	listeners map[int]host.RegistryListener
	nextID    int
}

func newStubRegistry(opened ...host.Panel) *stubRegistry {
	return &stubRegistry{opened: opened, listeners: make(map[int]host.RegistryListener)}
}

func (r *stubRegistry) Opened() []host.Panel  { return r.opened }
func (r *stubRegistry) Activated() host.Panel { return r.activated }

func (r *stubRegistry) Find(id string) host.Panel {
	for _, p := range r.opened {
		if r.IDOf(p) == id {
			return p
		}
	}
	return nil
}

func (r *stubRegistry) IDOf(p host.Panel) string {
	if sp, ok := p.(*stubPanel); ok {
		return sp.id
	}
	return ""
}

func (r *stubRegistry) Subscribe(l host.RegistryListener) func() {
	r.nextID++
	id := r.nextID
	r.listeners[id] = l
	return func() { delete(r.listeners, id) }
}

func (r *stubRegistry) emit(ctx context.Context, kind host.EventKind, p host.Panel) {
	for _, l := range r.listeners {
		l(ctx, host.RegistryEvent{Kind: kind, Panel: p})
	}
}

type stubProjects struct {
	listeners map[int]func(context.Context)
	nextID    int
}

func newStubProjects() *stubProjects {
	return &stubProjects{listeners: make(map[int]func(context.Context))}
}

func (p *stubProjects) Subscribe(fn func(context.Context)) func() {
	p.nextID++
	id := p.nextID
	p.listeners[id] = fn
	return func() { delete(p.listeners, id) }
}

func (p *stubProjects) changed(ctx context.Context) {
	for _, fn := range p.listeners {
		fn(ctx)
	}
}

type installCall struct {
	op  string
	key string
}

type recordingInstaller struct {
	calls []installCall
}

func (i *recordingInstaller) EnsureInstalled(_ context.Context, p host.Panel) {
	i.calls = append(i.calls, installCall{"ensure", p.Key()})
}

func (i *recordingInstaller) Teardown(_ context.Context, p host.Panel) {
	i.calls = append(i.calls, installCall{"teardown", p.Key()})
}
