package object

import (
	"strconv"

	"github.com/kamstrup/intmap"
)

// ObjectID is a manager-assigned numeric object identity. IDs are never
// reused within one Manager; 0 is never a valid id.
type ObjectID uint64

// Manager owns the set of live GameObjects. It assigns collision-free names,
// indexes objects by name and id, and performs the per-tick reclamation of
// deactivated objects. Managers are independent: any number may coexist.
type Manager struct {
	objects []*GameObject // creation order, stable under removal
	byName  map[string]*GameObject
	byID    *intmap.Map[ObjectID, *GameObject]
	nextID  ObjectID
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		byName: make(map[string]*GameObject),
		byID:   intmap.New[ObjectID, *GameObject](64),
	}
}

// GenerateObject creates, activates and registers a new object. If baseName
// is unused it is taken verbatim; otherwise the smallest positive integer
// suffix that yields an unused name is appended ("X", "X1", "X2", ...).
func (m *Manager) GenerateObject(baseName string) *GameObject {
	m.nextID++
	obj := newGameObject(m.uniqueName(baseName), m.nextID)
	obj.self = newObjectRef(obj)
	obj.SetActive(true)

	m.objects = append(m.objects, obj)
	m.byName[obj.name] = obj
	m.byID.Put(obj.id, obj)
	return obj
}

func (m *Manager) uniqueName(baseName string) string {
	if _, used := m.byName[baseName]; !used {
		return baseName
	}
	for i := 1; ; i++ {
		name := baseName + strconv.Itoa(i)
		if _, used := m.byName[name]; !used {
			return name
		}
	}
}

// GetObject returns a non-owning reference to the object currently registered
// under name, empty if there is none.
func (m *Manager) GetObject(name string) ObjectRef {
	obj, ok := m.byName[name]
	if !ok {
		return ObjectRef{}
	}
	return obj.self
}

// GetObjectByID returns a non-owning reference to the live object with the
// given id, empty if it has been reclaimed or never existed.
func (m *Manager) GetObjectByID(id ObjectID) ObjectRef {
	obj, ok := m.byID.Get(id)
	if !ok {
		return ObjectRef{}
	}
	return obj.self
}

// Objects returns a snapshot of the live objects in creation order. The
// snapshot stays valid while hooks mutate the manager mid-tick.
func (m *Manager) Objects() []*GameObject {
	out := make([]*GameObject, len(m.objects))
	copy(out, m.objects)
	return out
}

// Len returns the number of live objects.
func (m *Manager) Len() int {
	return len(m.objects)
}

// Update performs the reclamation pass: every object whose active flag is
// false is unregistered and destroyed, releasing all of its components.
// Surviving objects keep their relative order. Update drives no phases; that
// is the controlling loop's job.
func (m *Manager) Update() {
	var doomed []*GameObject
	kept := make([]*GameObject, 0, len(m.objects))
	for _, obj := range m.objects {
		if obj.IsActive() {
			kept = append(kept, obj)
		} else {
			doomed = append(doomed, obj)
		}
	}
	if len(doomed) == 0 {
		return
	}
	m.objects = kept

	// Unindex everything first so lookups from OnRelease hooks already
	// miss, then release in creation order.
	for _, obj := range doomed {
		delete(m.byName, obj.name)
		m.byID.Del(obj.id)
	}
	for _, obj := range doomed {
		obj.release()
	}
}

// ReleaseAllObjects unconditionally destroys every live object, active or
// not, and clears both indexes. Intended for full teardown.
func (m *Manager) ReleaseAllObjects() {
	doomed := m.objects
	m.objects = nil
	clear(m.byName)
	m.byID = intmap.New[ObjectID, *GameObject](64)

	for _, obj := range doomed {
		obj.release()
	}
}
