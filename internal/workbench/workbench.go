package workbench

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/logging"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/resolver"
	"github.com/atomicstack/navsync/internal/workspace"
)

// IDOutput identifies the output panel, which never carries a tree.
const IDOutput = "output"

// ErrUnknownPanel is returned when opening an identifier with no descriptor.
var ErrUnknownPanel = errors.New("workbench: unknown panel")

// Descriptor describes a navigation panel that can be opened by identifier.
type Descriptor struct {
	ID    string
	Title string
	Kind  string
}

var catalogue = []Descriptor{
	{ID: panel.IDProjectsLogical, Title: "Projects", Kind: KindProjects},
	{ID: panel.IDProjectsPhysical, Title: "Files", Kind: KindProjects},
	{ID: panel.IDFavorites, Title: "Favorites", Kind: KindFavorites},
	{ID: IDOutput, Title: "Output", Kind: KindOutput},
}

// Catalogue lists the navigation panels in menu order.
func Catalogue() []Descriptor {
	return append([]Descriptor(nil), catalogue...)
}

func describe(id string) (Descriptor, bool) {
	for _, d := range catalogue {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Workbench implements host.Registry, host.Projects and host.Nodes.
type Workbench struct {
	panels   []*Panel
	active   *Panel
	selected map[Area]*Panel
	seq      int

	registryListeners listenerSet[host.RegistryListener]
	projectListeners  listenerSet[func(context.Context)]

	caps     *Capabilities
	docs     host.Documents
	ws       *workspace.Workspace
	toolbars map[string][]ToolbarEntry
}

// New creates an empty workbench with the built-in capabilities registered.
func New() *Workbench {
	w := &Workbench{
		selected: make(map[Area]*Panel),
		caps:     NewCapabilities(),
		toolbars: make(map[string][]ToolbarEntry),
	}
	w.docs = resolver.NewEditorScanner(w)
	registerBuiltins(w)
	return w
}

// Capabilities returns the capability registry.
func (w *Workbench) Capabilities() *Capabilities { return w.caps }

// Documents resolves the focused editor's file.
func (w *Workbench) Documents() host.Documents { return w.docs }

// Workspace returns the current workspace, which may be nil.
func (w *Workbench) Workspace() *workspace.Workspace { return w.ws }

func (w *Workbench) Opened() []host.Panel {
	out := make([]host.Panel, 0, len(w.panels))
	for _, p := range w.panels {
		out = append(out, p)
	}
	return out
}

// Panels returns the open panels in the given area, in opening order.
func (w *Workbench) Panels(area Area) []*Panel {
	var out []*Panel
	for _, p := range w.panels {
		if p.area == area {
			out = append(out, p)
		}
	}
	return out
}

func (w *Workbench) Activated() host.Panel {
	if w.active == nil {
		return nil
	}
	return w.active
}

// Active returns the activated panel as its concrete type.
func (w *Workbench) Active() *Panel { return w.active }

// Selected returns the panel showing in area.
func (w *Workbench) Selected(area Area) *Panel { return w.selected[area] }

func (w *Workbench) Find(id string) host.Panel {
	if p := w.panel(id); p != nil {
		return p
	}
	return nil
}

// Panel returns the open panel registered under id.
func (w *Workbench) Panel(id string) *Panel { return w.panel(id) }

func (w *Workbench) panel(id string) *Panel {
	for _, p := range w.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// IDOf works for closed panels too.
func (w *Workbench) IDOf(p host.Panel) string {
	if wp, ok := p.(*Panel); ok && wp != nil {
		return wp.id
	}
	return ""
}

func (w *Workbench) Subscribe(l host.RegistryListener) func() {
	if l == nil {
		return func() {}
	}
	return w.registryListeners.add(l)
}

// SubscribeProjects registers fn for open-project changes.
func (w *Workbench) SubscribeProjects(fn func(context.Context)) func() {
	if fn == nil {
		return func() {}
	}
	return w.projectListeners.add(fn)
}

// Projects adapts the workbench to host.Projects.
func (w *Workbench) Projects() host.Projects { return projectsStream{w} }

type projectsStream struct{ w *Workbench }

func (s projectsStream) Subscribe(fn func(context.Context)) func() {
	return s.w.SubscribeProjects(fn)
}

// ListenerCounts reports registry and project subscriptions.
func (w *Workbench) ListenerCounts() (registry, projects int) {
	return w.registryListeners.len(), w.projectListeners.len()
}

// Open opens the navigation panel registered under id without activating
// it. An already open panel is returned as is.
func (w *Workbench) Open(ctx context.Context, id string) (*Panel, error) {
	if p := w.panel(id); p != nil {
		return p, nil
	}
	d, ok := describe(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	content := NewContainer()
	if id == IDOutput {
		content.Add(ctx, Label("No output."))
	}
	p := w.newPanel(d.ID, d.Title, d.Kind, AreaNavigation, content)
	w.attach(ctx, p)
	return p, nil
}

func (w *Workbench) newPanel(id, title, kind string, area Area, content *Container) *Panel {
	w.seq++
	return &Panel{
		wb:      w,
		key:     fmt.Sprintf("%s#%d", id, w.seq),
		id:      id,
		title:   title,
		kind:    kind,
		area:    area,
		content: content,
	}
}

func (w *Workbench) attach(ctx context.Context, p *Panel) {
	w.panels = append(w.panels, p)
	if w.selected[p.area] == nil {
		w.show(ctx, p)
	}
	w.publish(ctx, host.RegistryEvent{Kind: host.EventOpened, Panel: p})
}

// Activate makes p the showing panel of its area and the activated panel.
// Closed panels are reopened under their identifier first.
func (w *Workbench) Activate(ctx context.Context, p *Panel) {
	if p == nil {
		return
	}
	if !w.isOpen(p) {
		if p.area != AreaNavigation {
			return
		}
		reopened, err := w.Open(ctx, p.id)
		if err != nil {
			logging.Error(err)
			return
		}
		p = reopened
	}
	w.show(ctx, p)
	w.active = p
	w.publish(ctx, host.RegistryEvent{Kind: host.EventActivated, Panel: p})
}

// ActivateID opens and activates the panel registered under id.
func (w *Workbench) ActivateID(ctx context.Context, id string) (*Panel, error) {
	p, err := w.Open(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Activate(ctx, p)
	return p, nil
}

// Close removes p, moving its area and the activation to a neighbour.
func (w *Workbench) Close(ctx context.Context, p *Panel) {
	idx := w.indexOf(p)
	if idx < 0 {
		return
	}
	w.panels = append(w.panels[:idx], w.panels[idx+1:]...)
	p.showing = false
	if w.selected[p.area] == p {
		delete(w.selected, p.area)
		if siblings := w.Panels(p.area); len(siblings) > 0 {
			w.show(ctx, siblings[len(siblings)-1])
		}
	}
	wasActive := w.active == p
	if wasActive {
		w.active = w.selected[p.area]
		if w.active == nil && len(w.panels) > 0 {
			w.active = w.panels[len(w.panels)-1]
		}
	}
	w.publish(ctx, host.RegistryEvent{Kind: host.EventClosed, Panel: p})
	if wasActive {
		w.publish(ctx, host.RegistryEvent{Kind: host.EventActivated, Panel: w.Activated()})
	}
}

// Cycle activates the next (delta > 0) or previous panel in opening order.
func (w *Workbench) Cycle(ctx context.Context, delta int) {
	if len(w.panels) == 0 {
		return
	}
	idx := w.indexOf(w.active)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta%len(w.panels) + len(w.panels)) % len(w.panels)
	}
	w.Activate(ctx, w.panels[idx])
}

func (w *Workbench) isOpen(p *Panel) bool {
	return w.indexOf(p) >= 0
}

func (w *Workbench) indexOf(p *Panel) int {
	for i, candidate := range w.panels {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (w *Workbench) show(ctx context.Context, p *Panel) {
	if prev := w.selected[p.area]; prev != nil && prev != p {
		prev.showing = false
	}
	w.selected[p.area] = p
	p.showing = true
	w.ensureTree(ctx, p)
}

func (w *Workbench) publish(ctx context.Context, evt host.RegistryEvent) {
	for _, l := range w.registryListeners.snapshot() {
		l(ctx, evt)
	}
}

// ensureTree adds the tree view to a showing navigation panel the first
// time its workspace content is available.
func (w *Workbench) ensureTree(ctx context.Context, p *Panel) {
	if p.tree != nil || !p.showing || !panel.Classify(p.id).Supported() {
		return
	}
	roots, err := w.rootsFor(p.id)
	if err != nil {
		if !errors.Is(err, workspace.ErrNoProjects) {
			logging.Error(err)
		}
		return
	}
	if len(roots) == 0 {
		return
	}
	p.tree = NewTree(p.key+"/tree", roots)
	p.content.Add(ctx, NewContainer(p.tree))
}

func (w *Workbench) rootsFor(id string) ([]*workspace.Entry, error) {
	if w.ws == nil {
		return nil, workspace.ErrNoProjects
	}
	switch panel.Classify(id) {
	case panel.ProjectsLogical:
		return w.ws.LogicalTree()
	case panel.ProjectsPhysical:
		return w.ws.PhysicalTree()
	case panel.Favorites:
		return w.ws.FavoritesTree()
	default:
		return nil, nil
	}
}

// SetWorkspace replaces the workspace, refreshes existing trees, builds
// trees for showing panels that had none and notifies project listeners.
func (w *Workbench) SetWorkspace(ctx context.Context, ws *workspace.Workspace) error {
	w.ws = ws
	var firstErr error
	for _, p := range w.panels {
		if p.tree == nil {
			w.ensureTree(ctx, p)
			continue
		}
		roots, err := w.rootsFor(p.id)
		if err != nil && !errors.Is(err, workspace.ErrNoProjects) {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		p.tree.SetRoots(roots)
	}
	for _, fn := range w.projectListeners.snapshot() {
		fn(ctx)
	}
	return firstErr
}
