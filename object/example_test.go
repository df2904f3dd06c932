package object_test

import (
	"fmt"

	"github.com/plus3/gobject/object"
)

// ExampleManager demonstrates name uniquification, lookup and reclamation.
// Objects are created only through a Manager, which guarantees every live
// object's name is unique and sweeps deactivated objects on Update.
func ExampleManager() {
	m := object.NewManager()

	player := m.GenerateObject("Player")
	enemyA := m.GenerateObject("Enemy")
	enemyB := m.GenerateObject("Enemy")
	fmt.Println(player.GetName(), enemyA.GetName(), enemyB.GetName())

	enemyA.SetActive(false)
	m.Update()

	_, ok := m.GetObject("Enemy").Get()
	fmt.Println("Enemy still registered:", ok)
	_, ok = m.GetObject("Enemy1").Get()
	fmt.Println("Enemy1 still registered:", ok)

	m.ReleaseAllObjects()
	fmt.Println("live objects:", m.Len())

	// Output:
	// Player Enemy Enemy1
	// Enemy still registered: false
	// Enemy1 still registered: true
	// live objects: 0
}

// ExampleAddComponent demonstrates the typed component path. The component is
// stored under its concrete type's canonical key and handed back as a
// non-owning ref that resolves empty once the component is detached.
func ExampleAddComponent() {
	m := object.NewManager()
	obj := m.GenerateObject("Player")

	ref := object.AddComponent(obj, &Transform{X: 10, Y: 20})

	tr, _ := ref.Get()
	owner, _ := tr.GetOwner().Get()
	fmt.Printf("%s at (%.0f, %.0f)\n", owner.GetName(), tr.X, tr.Y)

	object.RemoveComponent[*Transform](obj)
	_, ok := ref.Get()
	fmt.Println("still attached:", ok)

	// Output:
	// Player at (10, 20)
	// still attached: false
}
