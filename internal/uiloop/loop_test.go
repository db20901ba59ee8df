package uiloop

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInlineOnLoopContext(t *testing.T) {
	l := New()
	ctx := l.Enter(context.Background())
	ran := false
	Run(ctx, l, func(inner context.Context) {
		ran = true
		assert.True(t, On(inner, l))
	})
	assert.True(t, ran)
	assert.Zero(t, l.Pending())
}

func TestRunQueuesOffLoop(t *testing.T) {
	l := New()
	ran := false
	Run(context.Background(), l, func(ctx context.Context) {
		ran = true
		assert.True(t, On(ctx, l))
	})
	assert.False(t, ran)
	require.Equal(t, 1, l.Pending())

	assert.Equal(t, 1, l.Drain(context.Background()))
	assert.True(t, ran)
}

func TestDrainRunsTasksPostedWhileDraining(t *testing.T) {
	l := New()
	var order []int
	l.Post(func(ctx context.Context) {
		order = append(order, 1)
		l.Post(func(context.Context) { order = append(order, 3) })
		Run(ctx, l, func(context.Context) { order = append(order, 2) })
	})
	assert.Equal(t, 2, l.Drain(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestOtherLoopContextIsNotOnLoop(t *testing.T) {
	a, b := New(), New()
	ctx := a.Enter(context.Background())
	assert.False(t, On(ctx, b))
	ran := false
	Run(ctx, b, func(context.Context) { ran = true })
	assert.False(t, ran)
	assert.Equal(t, 1, b.Pending())
}

func TestPostFromGoroutinesSignalsReady(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Post(func(context.Context) {})
		}()
	}
	wg.Wait()
	<-l.Ready()
	assert.Equal(t, 8, l.Drain(context.Background()))
}

func TestCloseDropsTasks(t *testing.T) {
	l := New()
	l.Post(func(context.Context) { t.Fatal("task ran after close") })
	l.Close()
	l.Close()
	l.Post(func(context.Context) { t.Fatal("task ran after close") })
	assert.Zero(t, l.Drain(context.Background()))
	<-l.Done()
}
