package overlay

import (
	"context"
	"fmt"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/panel"
)

type fakeContainer struct {
	children  []host.Component
	listeners []host.ContainerListener
}

func (c *fakeContainer) Children() []host.Component { return c.children }

func (c *fakeContainer) AddListener(l host.ContainerListener) {
	c.listeners = append(c.listeners, l)
}

func (c *fakeContainer) RemoveListener(l host.ContainerListener) {
	for i, existing := range c.listeners {
		if existing == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

func (c *fakeContainer) add(ctx context.Context, child host.Component) {
	c.children = append(c.children, child)
	snapshot := append([]host.ContainerListener(nil), c.listeners...)
	for _, l := range snapshot {
		l.ChildAdded(ctx, child)
	}
}

type fakeTree struct {
	key        string
	header     host.Header
	setHeaders int
	rows       int
}

func (t *fakeTree) Key() string             { return t.key }
func (t *fakeTree) Header() host.Header     { return t.header }
func (t *fakeTree) SetHeader(h host.Header) { t.header = h; t.setHeaders++ }
func (t *fakeTree) RowCount() int           { return t.rows }
func (t *fakeTree) CollapseRow(int)         {}

type fakePanel struct {
	key     string
	id      string
	content *fakeContainer
}

func (p *fakePanel) Key() string                    { return p.key }
func (p *fakePanel) Content() host.Container        { return p.content }
func (p *fakePanel) Showing() bool                  { return true }
func (p *fakePanel) RequestVisible(context.Context) {}

type fakeRegistry struct{}

func (fakeRegistry) Opened() []host.Panel                   { return nil }
func (fakeRegistry) Activated() host.Panel                  { return nil }
func (fakeRegistry) Find(string) host.Panel                 { return nil }
func (fakeRegistry) Subscribe(host.RegistryListener) func() { return func() {} }
func (fakeRegistry) IDOf(p host.Panel) string {
	if fp, ok := p.(*fakePanel); ok {
		return fp.id
	}
	return ""
}

type call struct {
	kind    string
	variant panel.Variant
}

type fakeActions struct {
	calls []call
}

func (a *fakeActions) CollapseAll(v panel.Variant, _ host.Panel, _ host.TreeView) host.Action {
	return host.ActionFunc(func(context.Context) { a.calls = append(a.calls, call{"collapse", v}) })
}

func (a *fakeActions) SyncSelection(v panel.Variant, _ host.Panel) host.Action {
	return host.ActionFunc(func(context.Context) { a.calls = append(a.calls, call{"sync", v}) })
}

var panelSeq int

func newPanel(id string, children ...host.Component) *fakePanel {
	panelSeq++
	return &fakePanel{
		key:     fmt.Sprintf("%s#%d", id, panelSeq),
		id:      id,
		content: &fakeContainer{children: children},
	}
}

func kids(items ...host.Component) []host.Component {
	return items
}
