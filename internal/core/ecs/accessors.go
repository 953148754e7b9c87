package ecs

// Assign binds a new component of type T to e. Precondition: !Has[T](r, e)
// — assign does not define overwrite behavior; use AssignOrReplace for
// that. Panics (via the underlying sparse map) if e already has one.
func Assign[T any](r *Registry, e Entity, v T) *T {
	cs := storeOf[T](r)
	cs.Map.Insert(e, v)
	return cs.Map.At(e)
}

// AssignOrReplace binds v to e, overwriting any existing component of
// type T.
func AssignOrReplace[T any](r *Registry, e Entity, v T) *T {
	cs := storeOf[T](r)
	cs.Map.EmplaceOrReplace(e, v)
	return cs.Map.At(e)
}

// Has reports whether e has a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	id := TypeID[T]()
	if id >= len(r.stores) || r.stores[id] == nil {
		return false
	}
	return r.stores[id].Contains(e)
}

// Has2 reports whether e has components of both types.
func Has2[A, B any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e)
}

// Has3 reports whether e has components of all three types.
func Has3[A, B, C any](r *Registry, e Entity) bool {
	return Has[A](r, e) && Has[B](r, e) && Has[C](r, e)
}

// Get returns e's component of type T. Precondition: Has[T](r, e); panics
// with *EntityError otherwise, matching the spec's "missing component on
// get is a programmer error" rule. A type that has never been assigned in
// this registry has no store to construct, so this checks existence the
// same way Has does rather than routing through storeOf.
func Get[T any](r *Registry, e Entity) *T {
	cs, ok := tryStoreOf[T](r)
	if !ok || !cs.Map.Contains(e) {
		panic(&EntityError{Code: ErrMissingComponent, Entity: e, Component: typeName[T](), Message: "get of missing component"})
	}
	return cs.Map.At(e)
}

// Get2 returns e's components of both types. Precondition: both present.
func Get2[A, B any](r *Registry, e Entity) (*A, *B) {
	return Get[A](r, e), Get[B](r, e)
}

// Get3 returns e's components of all three types. Precondition: all present.
func Get3[A, B, C any](r *Registry, e Entity) (*A, *B, *C) {
	return Get[A](r, e), Get[B](r, e), Get[C](r, e)
}

// TryGet returns e's component of type T, or nil if absent. This is the
// recoverable form of Get; like Get, it never constructs a store for a
// type that has never been assigned.
func TryGet[T any](r *Registry, e Entity) *T {
	cs, ok := tryStoreOf[T](r)
	if !ok {
		return nil
	}
	return cs.Map.TryAt(e)
}

// TryGet2 returns e's components of both types, each nil if absent.
func TryGet2[A, B any](r *Registry, e Entity) (*A, *B) {
	return TryGet[A](r, e), TryGet[B](r, e)
}

// TryGet3 returns e's components of all three types, each nil if absent.
func TryGet3[A, B, C any](r *Registry, e Entity) (*A, *B, *C) {
	return TryGet[A](r, e), TryGet[B](r, e), TryGet[C](r, e)
}

// Remove erases e's component of type T. No-op if absent, matching the
// spec's "logic errors in client composition are no-ops" rule.
func Remove[T any](r *Registry, e Entity) {
	id := TypeID[T]()
	if id >= len(r.stores) || r.stores[id] == nil {
		return
	}
	r.stores[id].Erase(e)
}
