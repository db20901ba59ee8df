package resolver

import (
	"context"
	"errors"

	"github.com/atomicstack/navsync/internal/host"
)

type recordingAction struct {
	name     string
	enabled  bool
	bound    host.Lookup
	invoked  *[]string
	contexts *[]host.Lookup
}

func (a *recordingAction) Perform(context.Context) {
	*a.invoked = append(*a.invoked, a.name)
	*a.contexts = append(*a.contexts, a.bound)
}

func (a *recordingAction) WithContext(l host.Lookup) host.Action {
	dup := *a
	dup.bound = l
	return &dup
}

func (a *recordingAction) Enabled() bool { return a.enabled }

type fakeCaps struct {
	actions  map[string]host.Action
	invoked  []string
	contexts []host.Lookup
}

func newFakeCaps() *fakeCaps {
	return &fakeCaps{actions: make(map[string]host.Action)}
}

func (c *fakeCaps) register(category, id string, enabled bool) {
	c.actions[category+"|"+id] = &recordingAction{
		name:     id,
		enabled:  enabled,
		invoked:  &c.invoked,
		contexts: &c.contexts,
	}
}

// registerUnbound installs an action that cannot be bound to a context.
func (c *fakeCaps) registerUnbound(category, id string) {
	c.actions[category+"|"+id] = host.ActionFunc(func(context.Context) {
		c.invoked = append(c.invoked, id)
	})
}

func (c *fakeCaps) ForID(category, id string) (host.Action, bool) {
	a, ok := c.actions[category+"|"+id]
	return a, ok
}

type fakeDocs struct {
	file host.FileRef
	ok   bool
}

func (d fakeDocs) ActiveFile() (host.FileRef, bool) { return d.file, d.ok }

type fileNode struct{ file host.FileRef }

func (n fileNode) File() host.FileRef  { return n.file }
func (n fileNode) DisplayName() string { return n.file.Path }

type fakeNodes struct {
	known map[string]bool
}

func (n fakeNodes) NodeFor(f host.FileRef) (host.Node, error) {
	if n.known[f.Path] {
		return fileNode{file: f}, nil
	}
	return nil, errors.New("no node")
}

type fakePanel struct {
	key     string
	showing bool
	visible int
}

func (p *fakePanel) Key() string             { return p.key }
func (p *fakePanel) Content() host.Container { return nil }
func (p *fakePanel) Showing() bool           { return p.showing }
func (p *fakePanel) RequestVisible(context.Context) {
	p.visible++
	p.showing = true
}

type fakeEditor struct {
	fakePanel
	kind string
	file host.FileRef
}

func (e *fakeEditor) Kind() string                   { return e.kind }
func (e *fakeEditor) Document() (host.FileRef, bool) { return e.file, !e.file.IsZero() }

type fakeRegistry struct {
	opened    []host.Panel
	activated host.Panel
	ids       map[host.Panel]string
}

func (r *fakeRegistry) Opened() []host.Panel                   { return r.opened }
func (r *fakeRegistry) Activated() host.Panel                  { return r.activated }
func (r *fakeRegistry) Find(string) host.Panel                 { return nil }
func (r *fakeRegistry) Subscribe(host.RegistryListener) func() { return func() {} }
func (r *fakeRegistry) IDOf(p host.Panel) string               { return r.ids[p] }

// shrinkingTree models visible rows of an expandable tree: collapsing a row
// hides its descendants.
type shrinkingTree struct {
	depth    []int
	expanded []bool
	visible  []int
	faults   int
}

func newShrinkingTree(depths ...int) *shrinkingTree {
	t := &shrinkingTree{depth: depths, expanded: make([]bool, len(depths))}
	for i := range t.expanded {
		t.expanded[i] = true
	}
	t.recompute()
	return t
}

func (t *shrinkingTree) recompute() {
	t.visible = t.visible[:0]
	hideBelow := -1
	for i, d := range t.depth {
		if hideBelow >= 0 && d > hideBelow {
			continue
		}
		hideBelow = -1
		t.visible = append(t.visible, i)
		if !t.expanded[i] {
			hideBelow = d
		}
	}
}

func (t *shrinkingTree) Key() string           { return "shrinking" }
func (t *shrinkingTree) Header() host.Header   { return nil }
func (t *shrinkingTree) SetHeader(host.Header) {}
func (t *shrinkingTree) RowCount() int         { return len(t.visible) }

func (t *shrinkingTree) CollapseRow(row int) {
	if row < 0 || row >= len(t.visible) {
		t.faults++
		return
	}
	t.expanded[t.visible[row]] = false
	t.recompute()
}

func (t *shrinkingTree) allVisibleCollapsed() bool {
	for _, idx := range t.visible {
		if t.expanded[idx] {
			return false
		}
	}
	return true
}
