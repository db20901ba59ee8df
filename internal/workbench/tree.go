package workbench

import (
	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/workspace"
)

// Row is one visible line of a Tree.
type Row struct {
	Entry    *workspace.Entry
	Depth    int
	Expanded bool
}

// Tree is the host.TreeView shown in navigation panels. Expansion state is
// keyed by path so it survives a refresh of the underlying entries.
type Tree struct {
	key      string
	header   host.Header
	roots    []*workspace.Entry
	expanded map[string]bool
	rows     []Row
	cursor   int
}

// NewTree builds a tree over roots with every root expanded.
func NewTree(key string, roots []*workspace.Entry) *Tree {
	t := &Tree{key: key, expanded: make(map[string]bool)}
	for _, r := range roots {
		if r.Dir {
			t.expanded[r.Path] = true
		}
	}
	t.roots = roots
	t.recompute()
	return t
}

func (t *Tree) Key() string { return t.key }

func (t *Tree) Header() host.Header { return t.header }

func (t *Tree) SetHeader(h host.Header) { t.header = h }

func (t *Tree) RowCount() int { return len(t.rows) }

// Rows returns the visible rows in display order.
func (t *Tree) Rows() []Row { return t.rows }

func (t *Tree) CollapseRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	path := t.rows[row].Entry.Path
	if !t.expanded[path] {
		return
	}
	delete(t.expanded, path)
	t.recompute()
}

func (t *Tree) ExpandRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	entry := t.rows[row].Entry
	if !entry.Dir || t.expanded[entry.Path] {
		return
	}
	t.expanded[entry.Path] = true
	t.recompute()
}

func (t *Tree) IsExpanded(row int) bool {
	if row < 0 || row >= len(t.rows) {
		return false
	}
	return t.rows[row].Expanded
}

// Toggle flips the expansion of row.
func (t *Tree) Toggle(row int) {
	if t.IsExpanded(row) {
		t.CollapseRow(row)
		return
	}
	t.ExpandRow(row)
}

// CollapseAll collapses every visible row starting from the bottom and
// returns how many rows were visited.
func (t *Tree) CollapseAll() int {
	visited := 0
	for row := t.RowCount() - 1; row >= 0; row-- {
		t.CollapseRow(row)
		visited++
	}
	return visited
}

// Select expands the ancestors of path and moves the cursor onto it.
func (t *Tree) Select(path string) bool {
	for _, root := range t.roots {
		chain := root.Find(path)
		if chain == nil {
			continue
		}
		for _, ancestor := range chain[:len(chain)-1] {
			t.expanded[ancestor.Path] = true
		}
		t.recompute()
		for i, row := range t.rows {
			if row.Entry.Path == path {
				t.cursor = i
				return true
			}
		}
	}
	return false
}

func (t *Tree) Cursor() int { return t.cursor }

// SetCursor clamps i into the visible rows.
func (t *Tree) SetCursor(i int) {
	t.cursor = i
	t.clampCursor()
}

// Selected returns the entry under the cursor.
func (t *Tree) Selected() (*workspace.Entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil, false
	}
	return t.rows[t.cursor].Entry, true
}

// SetRoots swaps the entries shown by the tree, keeping expansion state
// and the selected path when it still exists. Roots that were not shown
// before start expanded, as in NewTree.
func (t *Tree) SetRoots(roots []*workspace.Entry) {
	var selected string
	if entry, ok := t.Selected(); ok {
		selected = entry.Path
	}
	previous := make(map[string]bool, len(t.roots))
	for _, r := range t.roots {
		previous[r.Path] = true
	}
	for _, r := range roots {
		if r.Dir && !previous[r.Path] {
			t.expanded[r.Path] = true
		}
	}
	t.roots = roots
	t.recompute()
	if selected != "" {
		for i, row := range t.rows {
			if row.Entry.Path == selected {
				t.cursor = i
				return
			}
		}
	}
	t.clampCursor()
}

func (t *Tree) recompute() {
	t.rows = t.rows[:0]
	var walk func(entries []*workspace.Entry, depth int)
	walk = func(entries []*workspace.Entry, depth int) {
		for _, e := range entries {
			open := e.Dir && t.expanded[e.Path]
			t.rows = append(t.rows, Row{Entry: e, Depth: depth, Expanded: open})
			if open {
				walk(e.Children, depth+1)
			}
		}
	}
	walk(t.roots, 0)
	t.clampCursor()
}

func (t *Tree) clampCursor() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}
