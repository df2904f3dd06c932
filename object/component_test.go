package object_test

import (
	"testing"

	"github.com/plus3/gobject/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bare embeds Base without overriding anything.
type bare struct {
	object.Base
}

func TestBaseHooksAreNoops(t *testing.T) {
	m := object.NewManager()
	obj := m.GenerateObject("Thing")

	b := &bare{}
	obj.AddComponent(b, "b")

	assert.NotPanics(t, func() {
		tick(obj)
		tick(obj)
		obj.RemoveComponent("b")
	})
}

func TestOwnerReboundOnReattach(t *testing.T) {
	m := object.NewManager()
	first := m.GenerateObject("First")
	second := m.GenerateObject("Second")

	c := &Counter{}
	first.AddComponent(c, "c")

	owner, ok := c.GetOwner().Get()
	require.True(t, ok)
	assert.Same(t, first, owner)

	// Moving the component rebinds the owner reference.
	first.RemoveComponent("c")
	second.AddComponent(c, "c")

	owner, ok = c.GetOwner().Get()
	require.True(t, ok)
	assert.Same(t, second, owner)
}

func TestOwnerStillResolvableAfterDetach(t *testing.T) {
	m := object.NewManager()
	obj := m.GenerateObject("Thing")

	c := &Counter{}
	obj.AddComponent(c, "c")
	obj.RemoveComponent("c")

	// The owner lives on, so the stale back-reference still resolves.
	owner, ok := c.GetOwner().Get()
	require.True(t, ok)
	assert.Same(t, obj, owner)
}

func TestTypeKeyDistinguishesConcreteTypes(t *testing.T) {
	assert.NotEqual(t, object.TypeKey[*Transform](), object.TypeKey[*Velocity]())
	assert.Equal(t, object.TypeKey[*Transform](), object.TypeKey[*Transform]())
}
