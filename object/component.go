package object

// Component is the contract implemented by every behavior that can be
// attached to a GameObject. The owning object drives the lifecycle hooks:
// OnStart fires once before the first OnPreUpdate after attachment, the three
// update hooks fire once per active tick in phase order, and OnRelease fires
// exactly once on detachment or owner destruction, whichever comes first.
//
// Hooks have no return value; a component that cannot proceed is expected to
// no-op internally. OnRelease must not assume the owner is still resolvable.
//
// Concrete components embed Base, which supplies no-op defaults for every
// hook and carries the owner reference. The setOwner method is unexported so
// that ownership can only be bound by a GameObject at attach time.
type Component interface {
	OnStart()
	OnPreUpdate()
	OnUpdate()
	OnPostUpdate()
	OnRelease()

	// GetOwner returns a non-owning reference to the owning object.
	// It resolves empty before attachment and after the owner is destroyed.
	GetOwner() ObjectRef

	setOwner(ObjectRef)
}

// Base is the embeddable default implementation of Component.
type Base struct {
	owner ObjectRef
}

func (b *Base) OnStart()      {}
func (b *Base) OnPreUpdate()  {}
func (b *Base) OnUpdate()     {}
func (b *Base) OnPostUpdate() {}
func (b *Base) OnRelease()    {}

// GetOwner returns the owning object reference, empty if unattached.
func (b *Base) GetOwner() ObjectRef {
	return b.owner
}

func (b *Base) setOwner(owner ObjectRef) {
	b.owner = owner
}
