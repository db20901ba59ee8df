package workbench

import (
	"context"
	"sort"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/resolver"
)

// Capabilities is the host's action registry, keyed by category and id.
type Capabilities struct {
	actions map[string]host.Action
}

// NewCapabilities returns an empty registry.
func NewCapabilities() *Capabilities {
	return &Capabilities{actions: make(map[string]host.Action)}
}

func capabilityKey(category, id string) string {
	return category + "/" + id
}

// Register installs action under category and id, replacing any previous one.
func (c *Capabilities) Register(category, id string, action host.Action) {
	if action == nil {
		c.Unregister(category, id)
		return
	}
	c.actions[capabilityKey(category, id)] = action
}

// Unregister removes the action registered under category and id.
func (c *Capabilities) Unregister(category, id string) {
	delete(c.actions, capabilityKey(category, id))
}

func (c *Capabilities) ForID(category, id string) (host.Action, bool) {
	action, ok := c.actions[capabilityKey(category, id)]
	return action, ok
}

// Keys lists the registered "category/id" keys in sorted order.
func (c *Capabilities) Keys() []string {
	keys := make([]string, 0, len(c.actions))
	for k := range c.actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// builtin is a context-aware action. Unbound, it falls back to the global
// context (the focused editor's file).
type builtin struct {
	desc    string
	bound   host.Lookup
	enabled func(l host.Lookup) bool
	run     func(ctx context.Context, l host.Lookup)
}

func (b *builtin) Perform(ctx context.Context) {
	if !b.Enabled() {
		return
	}
	b.run(ctx, b.bound)
}

func (b *builtin) WithContext(l host.Lookup) host.Action {
	dup := *b
	dup.bound = l
	return &dup
}

func (b *builtin) Enabled() bool {
	if b.enabled == nil {
		return true
	}
	return b.enabled(b.bound)
}

func (b *builtin) Description() string { return b.desc }

func registerBuiltins(w *Workbench) {
	w.caps.Register(resolver.CategoryProject, resolver.CollapseAllID, &builtin{
		desc: "Collapse All",
		enabled: func(l host.Lookup) bool {
			_, ok := host.LookupOf[string](l)
			return ok
		},
		run: func(ctx context.Context, l host.Lookup) {
			id, _ := host.LookupOf[string](l)
			if p := w.panel(id); p != nil && p.tree != nil {
				p.tree.CollapseAll()
			}
		},
	})
	w.caps.Register(resolver.CategorySelect, resolver.SelectInProjectsID, w.selectInPanel("Select in Projects", panel.IDProjectsLogical))
	w.caps.Register(resolver.CategorySelect, resolver.SelectInFilesID, w.selectInPanel("Select in Files", panel.IDProjectsPhysical))
	w.caps.Register(resolver.CategorySelect, resolver.SelectInFavoritesID, &builtin{
		desc: "Select in Favorites",
		enabled: func(l host.Lookup) bool {
			_, ok := w.favoriteNode(l)
			return ok
		},
		run: func(ctx context.Context, l host.Lookup) {
			node, ok := w.favoriteNode(l)
			if !ok {
				return
			}
			w.reveal(ctx, panel.IDFavorites, node.File().Path)
		},
	})
}

func (w *Workbench) selectInPanel(desc, id string) host.Action {
	return &builtin{
		desc: desc,
		enabled: func(l host.Lookup) bool {
			_, ok := w.contextFile(l)
			return ok
		},
		run: func(ctx context.Context, l host.Lookup) {
			file, ok := w.contextFile(l)
			if !ok {
				return
			}
			w.reveal(ctx, id, file.Path)
		},
	}
}

func (w *Workbench) contextFile(l host.Lookup) (host.FileRef, bool) {
	if file, ok := host.LookupOf[host.FileRef](l); ok && !file.IsZero() {
		return file, true
	}
	if node, ok := host.LookupOf[host.Node](l); ok {
		return node.File(), !node.File().IsZero()
	}
	if l.Len() > 0 || w.docs == nil {
		return host.FileRef{}, false
	}
	return w.docs.ActiveFile()
}

func (w *Workbench) favoriteNode(l host.Lookup) (host.Node, bool) {
	if node, ok := host.LookupOf[host.Node](l); ok {
		_, inside := w.ws.FavoriteRoot(node.File().Path)
		return node, inside
	}
	file, ok := w.contextFile(l)
	if !ok {
		return nil, false
	}
	node, err := w.NodeFor(file)
	if err != nil {
		return nil, false
	}
	return node, true
}

// reveal activates the panel registered under id and selects path in its
// tree.
func (w *Workbench) reveal(ctx context.Context, id, path string) bool {
	p, err := w.ActivateID(ctx, id)
	if err != nil || p.tree == nil {
		return false
	}
	return p.tree.Select(path)
}
