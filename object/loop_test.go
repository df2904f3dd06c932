package object_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/gobject/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopReclaimsBeforeDispatch(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	doomed := m.GenerateObject("Doomed")
	c := &Counter{}
	doomed.AddComponent(c, "c")
	doomed.SetActive(false)

	loop.Once()

	// Reclaimed before any phase ran: released, never started.
	assert.Equal(t, 1, c.Releases)
	assert.Zero(t, c.Starts)
	assert.Zero(t, c.Pres)
}

func TestLoopDrivesPhasesPerTick(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	obj := m.GenerateObject("Thing")
	c := &Counter{}
	obj.AddComponent(c, "c")

	loop.Once()
	loop.Once()
	loop.Once()

	assert.Equal(t, 1, c.Starts)
	assert.Equal(t, 3, c.Pres)
	assert.Equal(t, 3, c.Updates)
	assert.Equal(t, 3, c.Posts)
}

func TestLoopSkipsObjectsDeactivatedMidTick(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	obj := m.GenerateObject("Thing")
	c := &FuncComponent{}
	post := 0
	c.Upd = func() { obj.SetActive(false) }
	c.Post = func() { post++ }
	obj.AddComponent(c, "c")

	loop.Once()
	assert.Zero(t, post, "PostUpdate no-ops once the object deactivates itself")

	loop.Once()
	_, ok := m.GetObject("Thing").Get()
	assert.False(t, ok)
}

func TestLoopPicksUpObjectsSpawnedMidTick(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	spawned := &Counter{}
	spawner := m.GenerateObject("Spawner")
	c := &FuncComponent{}
	c.Upd = func() {
		if _, ok := m.GetObject("Child").Get(); !ok {
			child := m.GenerateObject("Child")
			child.AddComponent(spawned, "c")
		}
	}
	spawner.AddComponent(c, "c")

	loop.Once()
	assert.Zero(t, spawned.Updates, "spawned object joins next tick")

	loop.Once()
	assert.Equal(t, 1, spawned.Starts)
	assert.Equal(t, 1, spawned.Updates)
}

func TestLoopStats(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	obj := m.GenerateObject("Thing")
	obj.AddComponent(&Counter{}, "c")

	loop.Once()
	loop.Once()

	stats := loop.GetStats()
	assert.Equal(t, int64(2), stats.TickCount)
	require.Len(t, stats.Phases, 4)

	names := make([]string, len(stats.Phases))
	for i, p := range stats.Phases {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Reclaim", "PreUpdate", "Update", "PostUpdate"}, names)

	for _, p := range stats.Phases {
		assert.GreaterOrEqual(t, p.TotalDuration, time.Duration(0))
		assert.GreaterOrEqual(t, p.MaxDuration, p.LastDuration)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	m := object.NewManager()
	loop := object.NewLoop(m)

	obj := m.GenerateObject("Thing")
	obj.AddComponent(&Counter{}, "c")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		loop.Run(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
