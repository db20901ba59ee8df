package workbench

import (
	"context"
	"testing"

	"github.com/atomicstack/navsync/internal/host"
	"github.com/atomicstack/navsync/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPublishesAndShowsFirstPanel(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.wb.Subscribe(rec.listen)

	p, err := f.wb.Open(f.ctx, panel.IDProjectsLogical)
	require.NoError(t, err)
	assert.Equal(t, []host.EventKind{host.EventOpened}, rec.kinds())
	assert.True(t, p.Showing())
	assert.Nil(t, p.Tree(), "no workspace yet")
	assert.Same(t, p, f.wb.Find(panel.IDProjectsLogical))
	assert.Equal(t, panel.IDProjectsLogical, f.wb.IDOf(p))

	again, err := f.wb.Open(f.ctx, panel.IDProjectsLogical)
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Len(t, rec.events, 1)
}

func TestOpenUnknownPanel(t *testing.T) {
	f := newFixture(t)
	_, err := f.wb.Open(f.ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownPanel)
}

func TestTreeIsAddedLazilyWhenShowing(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))

	logical, err := f.wb.Open(f.ctx, panel.IDProjectsLogical)
	require.NoError(t, err)
	require.NotNil(t, logical.Tree())

	favorites, err := f.wb.Open(f.ctx, panel.IDFavorites)
	require.NoError(t, err)
	assert.False(t, favorites.Showing())
	assert.Nil(t, favorites.Tree())

	counter := &childCounter{}
	favorites.Container().AddListener(counter)
	f.wb.Activate(f.ctx, favorites)

	require.NotNil(t, favorites.Tree())
	require.Len(t, counter.added, 1)
	nested, ok := counter.added[0].(*Container)
	require.True(t, ok)
	assert.Same(t, favorites.Tree(), nested.Children()[0])
	assert.False(t, logical.Showing())
	assert.Same(t, favorites, f.wb.Active())
}

func TestOutputPanelNeverGetsTree(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	p, err := f.wb.ActivateID(f.ctx, IDOutput)
	require.NoError(t, err)
	assert.Nil(t, p.Tree())
	assert.Len(t, p.Container().Children(), 1)
}

func TestCloseMovesSelectionAndActivation(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	f.wb.Subscribe(rec.listen)
	logical, _ := f.wb.ActivateID(f.ctx, panel.IDProjectsLogical)
	physical, _ := f.wb.ActivateID(f.ctx, panel.IDProjectsPhysical)
	rec.events = nil

	f.wb.Close(f.ctx, physical)

	assert.Equal(t, []host.EventKind{host.EventClosed, host.EventActivated}, rec.kinds())
	assert.Same(t, physical, rec.events[0].Panel)
	assert.Same(t, logical, f.wb.Active())
	assert.True(t, logical.Showing())
	assert.False(t, physical.Showing())
	assert.Nil(t, f.wb.Find(panel.IDProjectsPhysical))
	assert.Equal(t, panel.IDProjectsPhysical, f.wb.IDOf(physical))

	f.wb.Close(f.ctx, physical)
	assert.Len(t, rec.events, 2)
}

func TestReopenCreatesNewInstance(t *testing.T) {
	f := newFixture(t)
	first, _ := f.wb.Open(f.ctx, panel.IDFavorites)
	f.wb.Close(f.ctx, first)
	second, _ := f.wb.Open(f.ctx, panel.IDFavorites)
	assert.NotEqual(t, first.Key(), second.Key())
}

func TestRequestVisibleReopensClosedPanel(t *testing.T) {
	f := newFixture(t)
	p, _ := f.wb.Open(f.ctx, panel.IDFavorites)
	f.wb.Close(f.ctx, p)

	p.RequestVisible(f.ctx)

	reopened := f.wb.Active()
	require.NotNil(t, reopened)
	assert.Equal(t, panel.IDFavorites, reopened.ID())
	assert.NotSame(t, p, reopened)
}

func TestCycleWrapsAround(t *testing.T) {
	f := newFixture(t)
	a, _ := f.wb.ActivateID(f.ctx, panel.IDProjectsLogical)
	b, _ := f.wb.ActivateID(f.ctx, panel.IDFavorites)

	f.wb.Cycle(f.ctx, 1)
	assert.Same(t, a, f.wb.Active())
	f.wb.Cycle(f.ctx, -1)
	assert.Same(t, b, f.wb.Active())
}

func TestSetWorkspaceNotifiesProjectsAndRefreshesTrees(t *testing.T) {
	f := newFixture(t)
	p, _ := f.wb.ActivateID(f.ctx, panel.IDProjectsLogical)
	require.Nil(t, p.Tree())

	calls := 0
	unsubscribe := f.wb.Projects().Subscribe(func(context.Context) { calls++ })
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	assert.Equal(t, 1, calls)
	require.NotNil(t, p.Tree())
	assert.Equal(t, "app", p.Tree().Rows()[0].Entry.Name)

	unsubscribe()
	require.NoError(t, f.wb.SetWorkspace(f.ctx, f.ws))
	assert.Equal(t, 1, calls)
	_, projects := f.wb.ListenerCounts()
	assert.Zero(t, projects)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	f := newFixture(t)
	var unsubscribe func()
	calls := 0
	unsubscribe = f.wb.Subscribe(func(context.Context, host.RegistryEvent) {
		calls++
		unsubscribe()
	})
	other := &recorder{}
	f.wb.Subscribe(other.listen)

	f.wb.Open(f.ctx, panel.IDFavorites)
	f.wb.Open(f.ctx, panel.IDProjectsLogical)

	assert.Equal(t, 1, calls)
	assert.Len(t, other.events, 2)
}
