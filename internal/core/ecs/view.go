package ecs

// View is a lazy join iterator over the registry's entity store, filtered
// to entities that possess every component type named by ids. It does not
// pivot on the smallest backing pool; it walks entity-store order and
// probes Contains on each requested store, which keeps the yield order
// equal to ascending entity index among entities satisfying the predicate
// regardless of which pool happens to be smallest.
//
// Any mutation of the registry during iteration may invalidate the view,
// except: mutating component values of the current or an earlier entity,
// and erasing the current entity through the registry (safe because the
// view walks the entity store by index and only probes Contains on the
// component stores, so the current slot going dead mid-Each neither moves
// nor skips any later slot). All other mutation during iteration is
// undefined.
type View struct {
	registry *Registry
	ids      []int
}

// Each calls fn for every entity satisfying the view's predicate, in
// ascending index order, stopping early if fn returns false.
func (v *View) Each(fn func(Entity) bool) {
	v.registry.entities.Each(func(e Entity) bool {
		for _, id := range v.ids {
			if id >= len(v.registry.stores) || v.registry.stores[id] == nil || !v.registry.stores[id].Contains(e) {
				return true // doesn't satisfy the predicate; keep scanning
			}
		}
		return fn(e)
	})
}

// View1 returns a view over entities possessing a component of type T.
func View1[T any](r *Registry) *View {
	return r.View(TypeID[T]())
}

// View2 returns a view over entities possessing components of both types.
func View2[A, B any](r *Registry) *View {
	return r.View(TypeID[A](), TypeID[B]())
}

// View3 returns a view over entities possessing components of all three
// types.
func View3[A, B, C any](r *Registry) *View {
	return r.View(TypeID[A](), TypeID[B](), TypeID[C]())
}
