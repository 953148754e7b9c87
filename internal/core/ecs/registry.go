package ecs

import "muscle-dreamer/internal/core/ecs/storage"

// Registry owns the entity store and an ordered collection of type-erased
// component stores, one per component type, indexed by that type's id.
// Registry is not reentrant and does no internal locking; all mutation and
// view iteration must be serialized by the caller.
type Registry struct {
	entities *EntityStore
	stores   []storage.ErasedStore[Entity]
	names    map[Entity]string
	cfg      StoreConfig
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg StoreConfig) *Registry {
	entities := NewEntityStore()
	entities.Reserve(cfg.ReserveEntities)
	return &Registry{
		entities: entities,
		names:    make(map[Entity]string),
		cfg:      cfg,
	}
}

// AcquireEntity allocates a new entity, delegating to the entity store.
func (r *Registry) AcquireEntity() Entity {
	return r.entities.Acquire()
}

// ReleaseEntity erases e from every component store it is present in,
// then releases it in the entity store. Components are always erased
// before the entity store reclaims the slot.
func (r *Registry) ReleaseEntity(e Entity) {
	for _, store := range r.stores {
		if store != nil {
			store.Erase(e)
		}
	}
	delete(r.names, e)
	r.entities.Release(e)
}

// IsValid delegates to the entity store.
func (r *Registry) IsValid(e Entity) bool {
	return r.entities.IsValid(e)
}

// EntityCount delegates to the entity store.
func (r *Registry) EntityCount() int {
	return r.entities.Size()
}

// Name returns e's debug name, if one was set.
func (r *Registry) Name(e Entity) (string, bool) {
	name, ok := r.names[e]
	return name, ok
}

// SetName binds a debug name to e, replacing any existing one.
func (r *Registry) SetName(e Entity, name string) {
	r.names[e] = name
}

func (r *Registry) ensureSlot(id int) {
	for id >= len(r.stores) {
		r.stores = append(r.stores, nil)
	}
}

// storeOf returns the component store for T, constructing it on first use.
// Only assign-shaped operations should call this; a read that finds
// nothing should use tryStoreOf instead, so that merely asking about a
// type an entity never had doesn't allocate storage for it.
func storeOf[T any](r *Registry) *storage.ComponentStore[Entity, T] {
	id := TypeID[T]()
	r.ensureSlot(id)
	if r.stores[id] == nil {
		cs := storage.NewComponentStore[Entity, T](isDuplicatable[T]())
		cs.Reserve(r.cfg.ReserveComponents)
		r.stores[id] = cs
	}
	return r.stores[id].(*storage.ComponentStore[Entity, T])
}

// tryStoreOf returns T's component store without constructing one, and
// false if T has never been assigned in this registry.
func tryStoreOf[T any](r *Registry) (*storage.ComponentStore[Entity, T], bool) {
	id := TypeID[T]()
	if id >= len(r.stores) || r.stores[id] == nil {
		return nil, false
	}
	return r.stores[id].(*storage.ComponentStore[Entity, T]), true
}

// Duplicate allocates a new entity and, for every component store where
// the type is duplicatable, copies src's component onto it.
func (r *Registry) Duplicate(src Entity) Entity {
	dst := r.entities.Acquire()
	for _, store := range r.stores {
		if store != nil {
			store.Duplicate(src, dst)
		}
	}
	return dst
}

// View(ids...) returns a view over the entities that satisfy every
// predicate named by ids (type ids obtained from TypeID[T]). Prefer the
// typed View1/View2/View3 helpers, which collect the ids for you.
func (r *Registry) View(ids ...int) *View {
	return &View{registry: r, ids: ids}
}
