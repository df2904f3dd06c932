package object

import "weak"

// ObjectRef is a non-owning reference to a GameObject. The zero value is
// empty. Resolving a ref whose target has been destroyed (or collected)
// yields empty rather than a stale object, so refs may be held across
// reclamation passes and re-resolved on every use.
type ObjectRef struct {
	ptr weak.Pointer[GameObject]
}

func newObjectRef(obj *GameObject) ObjectRef {
	return ObjectRef{ptr: weak.Make(obj)}
}

// Get resolves the reference. It reports false once the target has been
// destroyed, even while other strong pointers to it still exist.
func (r ObjectRef) Get() (*GameObject, bool) {
	obj := r.ptr.Value()
	if obj == nil || obj.released {
		return nil, false
	}
	return obj, true
}

// Ref is a non-owning reference to a component attached to a GameObject
// under a specific key. The zero value is empty. Get re-resolves through the
// owner's component table on every call, so a ref degrades to empty when the
// component is removed, the owner is destroyed, or the stored component's
// concrete type does not match T.
type Ref[T Component] struct {
	owner ObjectRef
	key   string
}

// Get resolves the reference, reporting false if it cannot be satisfied.
func (r Ref[T]) Get() (T, bool) {
	var zero T
	obj, ok := r.owner.Get()
	if !ok {
		return zero, false
	}
	c, ok := obj.components[r.key]
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
