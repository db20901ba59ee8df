package workbench

import (
	"testing"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	wb := New()
	assert.Equal(t, []string{
		resolver.CategoryProject + "/" + resolver.CollapseAllID,
		resolver.CategorySelect + "/" + resolver.SelectInFavoritesID,
		resolver.CategorySelect + "/" + resolver.SelectInFilesID,
		resolver.CategorySelect + "/" + resolver.SelectInProjectsID,
	}, wb.Capabilities().Keys())
	wb.Capabilities().Unregister(resolver.CategorySelect, resolver.SelectInFilesID)
	_, ok := wb.Capabilities().ForID(resolver.CategorySelect, resolver.SelectInFilesID)
	assert.False(t, ok)
}

func TestCollapseCapabilityActsOnNamedPanel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	p, _ := f.wb.ActivateID(f.ctx, panel.IDProjectsLogical)
	require.Greater(t, p.Tree().RowCount(), 1)

	action, ok := f.wb.Capabilities().ForID(resolver.CategoryProject, resolver.CollapseAllID)
	require.True(t, ok)
	action.Perform(f.ctx)
	assert.Greater(t, p.Tree().RowCount(), 1, "unbound collapse does nothing")

	host.Bind(action, host.Fixed(panel.IDProjectsLogical)).Perform(f.ctx)
	assert.Equal(t, 1, p.Tree().RowCount())
}

func TestSelectInProjectsRevealsFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	target := f.path("app/internal/core/core.go")

	action, _ := f.wb.Capabilities().ForID(resolver.CategorySelect, resolver.SelectInFilesID)
	host.Bind(action, host.Fixed(host.FileRef{Path: target})).Perform(f.ctx)

	p := f.wb.Panel(panel.IDProjectsPhysical)
	require.NotNil(t, p)
	assert.Same(t, p, f.wb.Active())
	entry, ok := p.Tree().Selected()
	require.True(t, ok)
	assert.Equal(t, target, entry.Path)
}

func TestUnboundSelectUsesFocusedEditor(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	target := f.path("app/main.go")
	f.wb.OpenEditor(f.ctx, target)

	action, _ := f.wb.Capabilities().ForID(resolver.CategorySelect, resolver.SelectInProjectsID)
	assert.True(t, host.IsEnabled(action))
	action.Perform(f.ctx)

	entry, ok := f.wb.Panel(panel.IDProjectsLogical).Tree().Selected()
	require.True(t, ok)
	assert.Equal(t, target, entry.Path)
}

func TestSelectInFavoritesEnablement(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	action, _ := f.wb.Capabilities().ForID(resolver.CategorySelect, resolver.SelectInFavoritesID)

	assert.False(t, host.IsEnabled(action), "no focused editor")

	f.wb.OpenEditor(f.ctx, f.path("app/main.go"))
	assert.False(t, host.IsEnabled(action), "file outside favorites")

	guide := f.path("docs/guide.md")
	f.wb.OpenEditor(f.ctx, guide)
	require.True(t, host.IsEnabled(action))
	described, ok := action.(host.Described)
	require.True(t, ok)
	assert.Equal(t, "Select in Favorites", described.Description())

	action.Perform(f.ctx)
	fav := f.wb.Panel(panel.IDFavorites)
	require.NotNil(t, fav)
	entry, ok := fav.Tree().Selected()
	require.True(t, ok)
	assert.Equal(t, guide, entry.Path)
}

func TestNodeFor(t *testing.T) {
	f := newFixture(t)
	_, err := f.wb.NodeFor(host.FileRef{Path: f.path("docs/guide.md")})
	assert.ErrorIs(t, err, ErrNoNode, "no workspace")

	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	node, err := f.wb.NodeFor(host.FileRef{Path: f.path("docs/guide.md")})
	require.NoError(t, err)
	assert.Equal(t, "guide.md", node.DisplayName())
	_, err = f.wb.NodeFor(host.FileRef{Path: f.path("app/main.go")})
	assert.ErrorIs(t, err, ErrNoNode)
}
