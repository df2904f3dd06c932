package object

import (
	"reflect"
	"slices"
)

// GameObject is a named, independently-lifetimed bag of components driven
// through the PreUpdate/Update/PostUpdate phases. Objects are created only
// through Manager.GenerateObject and destroyed only by the Manager's
// reclamation pass or teardown.
//
// The component table is keyed by string. The named AddComponent path uses a
// caller-supplied key; the generic AddComponent[T] path uses the canonical
// per-type key derived from T, so at most one component per concrete type can
// be attached through it. The two paths share one table: a named attach under
// a type's canonical key is indistinguishable from a typed attach.
type GameObject struct {
	name     string
	id       ObjectID
	active   bool
	started  bool
	released bool

	components map[string]Component
	order      []string // component keys in insertion order

	// keys attached after the start latch, awaiting their OnStart
	pendingStart []string

	self ObjectRef
}

func newGameObject(name string, id ObjectID) *GameObject {
	return &GameObject{
		name:       name,
		id:         id,
		components: make(map[string]Component),
	}
}

// GetName returns the object's registry-assigned name.
func (o *GameObject) GetName() string {
	return o.name
}

// ID returns the object's manager-assigned numeric id.
func (o *GameObject) ID() ObjectID {
	return o.id
}

// SetActive sets the active flag. It invokes no lifecycle hook; an inactive
// object is skipped by the update phases and destroyed by the manager's next
// reclamation pass.
func (o *GameObject) SetActive(active bool) {
	o.active = active
}

// IsActive reports whether the object participates in update phases.
func (o *GameObject) IsActive() bool {
	return o.active
}

// Ref returns a non-owning reference to this object.
func (o *GameObject) Ref() ObjectRef {
	return o.self
}

// AddComponent attaches c under the given key, binding its owner reference to
// this object. A distinct component already stored at that key is released
// first. Attaching to an object that has already started queues the new
// component's OnStart for the next PreUpdate.
func (o *GameObject) AddComponent(c Component, key string) {
	if c == nil {
		panic("object: cannot attach a nil component")
	}

	prior, exists := o.components[key]
	if exists && prior != c {
		prior.OnRelease()
	}
	if !exists {
		o.order = append(o.order, key)
	}
	o.components[key] = c
	c.setOwner(o.self)

	if o.started && prior != c && !slices.Contains(o.pendingStart, key) {
		o.pendingStart = append(o.pendingStart, key)
	}
}

// RemoveComponent releases and detaches the component stored under key.
// It is a silent no-op if the key is absent.
func (o *GameObject) RemoveComponent(key string) {
	c, ok := o.components[key]
	if !ok {
		return
	}
	c.OnRelease()
	delete(o.components, key)
	o.order = slices.DeleteFunc(o.order, func(k string) bool { return k == key })
	o.pendingStart = slices.DeleteFunc(o.pendingStart, func(k string) bool { return k == key })
}

// GetComponent returns a non-owning reference to the component stored under
// key. The ref resolves empty if the key is absent.
func (o *GameObject) GetComponent(key string) Ref[Component] {
	return Ref[Component]{owner: o.self, key: key}
}

// ComponentKeys returns the attached component keys in insertion order.
func (o *GameObject) ComponentKeys() []string {
	return slices.Clone(o.order)
}

// NumComponents returns the number of attached components.
func (o *GameObject) NumComponents() int {
	return len(o.components)
}

// PreUpdate runs the first phase of the tick. On the object's first update it
// broadcasts OnStart to every attached component before any OnPreUpdate;
// components attached later receive their OnStart here on their first tick.
// Inactive objects no-op entirely.
func (o *GameObject) PreUpdate() {
	if !o.active {
		return
	}

	if !o.started {
		// Latch before dispatching so components attached during an
		// OnStart hook are queued for the next tick instead of missed.
		o.started = true
		o.pendingStart = o.pendingStart[:0]
		o.dispatch(Component.OnStart)
	} else if len(o.pendingStart) > 0 {
		pending := o.pendingStart
		o.pendingStart = nil
		for _, key := range pending {
			if c, ok := o.components[key]; ok {
				c.OnStart()
			}
		}
	}

	o.dispatch(Component.OnPreUpdate)
}

// Update runs the second phase of the tick. Inactive objects no-op.
func (o *GameObject) Update() {
	if !o.active {
		return
	}
	o.dispatch(Component.OnUpdate)
}

// PostUpdate runs the third phase of the tick. Inactive objects no-op.
func (o *GameObject) PostUpdate() {
	if !o.active {
		return
	}
	o.dispatch(Component.OnPostUpdate)
}

// dispatch fans hook out to every attached component. The key set is
// snapshotted up front so hooks may add or remove components mid-phase:
// removed keys are skipped for the rest of the phase. Components still
// awaiting their OnStart stay dormant until it fires next PreUpdate.
func (o *GameObject) dispatch(hook func(Component)) {
	for _, key := range slices.Clone(o.order) {
		if slices.Contains(o.pendingStart, key) {
			continue
		}
		if c, ok := o.components[key]; ok {
			hook(c)
		}
	}
}

// release destroys the object: every still-attached component is released
// exactly once and the table is cleared. The released flag is set first so
// that owner refs already resolve empty inside the OnRelease hooks.
func (o *GameObject) release() {
	if o.released {
		return
	}
	o.released = true
	for _, key := range slices.Clone(o.order) {
		if c, ok := o.components[key]; ok {
			c.OnRelease()
		}
	}
	clear(o.components)
	o.order = nil
	o.pendingStart = nil
}

// TypeKey returns the canonical component key for the concrete type T, the
// key used by the generic AddComponent, GetComponent and RemoveComponent.
func TypeKey[T Component]() string {
	return reflect.TypeFor[T]().String()
}

// AddComponent attaches c under the canonical key for its concrete type.
// At most one component per concrete type can be attached this way; a second
// call with the same type replaces (and releases) the first. It returns a
// non-owning reference to the stored component.
func AddComponent[T Component](obj *GameObject, c T) Ref[T] {
	key := TypeKey[T]()
	obj.AddComponent(c, key)
	return Ref[T]{owner: obj.self, key: key}
}

// GetComponent returns a non-owning reference to the component stored under
// T's canonical key. The ref resolves empty if nothing is stored there or if
// the stored component's concrete type is not T.
func GetComponent[T Component](obj *GameObject) Ref[T] {
	return Ref[T]{owner: obj.self, key: TypeKey[T]()}
}

// RemoveComponent releases and detaches the component stored under T's
// canonical key, if any. Components attached under arbitrary explicit names
// are not reachable through this path.
func RemoveComponent[T Component](obj *GameObject) {
	obj.RemoveComponent(TypeKey[T]())
}
