package workbench

import (
	"testing"

	"github.com/atomicstack/navsync/internal/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowNames(tr *Tree) []string {
	var out []string
	for _, r := range tr.Rows() {
		out = append(out, r.Entry.Name)
	}
	return out
}

func TestTreeExpandCollapse(t *testing.T) {
	f := newFixture(t)
	roots, err := f.ws.LogicalTree()
	require.NoError(t, err)
	tr := NewTree("t", roots)

	assert.Equal(t, []string{"app", "internal", "main.go"}, rowNames(tr))
	tr.ExpandRow(1)
	assert.Equal(t, []string{"app", "internal", "core", "main.go"}, rowNames(tr))
	tr.Toggle(2)
	assert.Equal(t, []string{"app", "internal", "core", "core.go", "main.go"}, rowNames(tr))

	assert.Equal(t, 5, tr.CollapseAll())
	assert.Equal(t, []string{"app"}, rowNames(tr))
	assert.False(t, tr.IsExpanded(0))

	tr.ExpandRow(0)
	assert.Equal(t, []string{"app", "internal", "main.go"}, rowNames(tr), "children stay collapsed")
}

func TestTreeSelectExpandsAncestors(t *testing.T) {
	f := newFixture(t)
	roots, err := f.ws.LogicalTree()
	require.NoError(t, err)
	tr := NewTree("t", roots)
	tr.CollapseAll()

	require.True(t, tr.Select(f.path("app/internal/core/core.go")))
	entry, ok := tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "core.go", entry.Name)
	assert.Equal(t, 3, tr.Cursor())

	assert.False(t, tr.Select(f.path("docs/guide.md")))
}

func TestTreeSetRootsKeepsSelection(t *testing.T) {
	f := newFixture(t)
	roots, _ := f.ws.LogicalTree()
	tr := NewTree("t", roots)
	tr.Select(f.path("app/main.go"))

	again, _ := f.ws.LogicalTree()
	tr.SetRoots(again)
	entry, ok := tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "main.go", entry.Name)

	tr.SetRoots(nil)
	_, ok = tr.Selected()
	assert.False(t, ok)
	assert.Zero(t, tr.Cursor())
}

func TestTreeSetRootsExpandsNewRoots(t *testing.T) {
	dir := func(name string, children ...*workspace.Entry) *workspace.Entry {
		return &workspace.Entry{Name: name, Path: "/w/" + name, Dir: true, Children: children}
	}
	file := func(parent, name string) *workspace.Entry {
		return &workspace.Entry{Name: name, Path: "/w/" + parent + "/" + name}
	}
	app := dir("app", file("app", "main.go"))
	tr := NewTree("t", []*workspace.Entry{app})
	tr.CollapseAll()
	require.Equal(t, []string{"app"}, rowNames(tr))

	docs := dir("docs", file("docs", "guide.md"))
	tr.SetRoots([]*workspace.Entry{app, docs})
	assert.Equal(t, []string{"app", "docs", "guide.md"}, rowNames(tr), "new root expanded, known root keeps its state")

	fresh := NewTree("t", []*workspace.Entry{app, docs})
	tr.ExpandRow(0)
	assert.Equal(t, rowNames(fresh), rowNames(tr))
}

func TestTreeCursorClamps(t *testing.T) {
	f := newFixture(t)
	roots, _ := f.ws.LogicalTree()
	tr := NewTree("t", roots)
	tr.SetCursor(99)
	assert.Equal(t, tr.RowCount()-1, tr.Cursor())
	tr.SetCursor(-3)
	assert.Zero(t, tr.Cursor())
}
