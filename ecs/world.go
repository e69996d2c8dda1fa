package ecs

import (
	"iter"
	"reflect"
)

// MaxParentDepth bounds the parent-chain walk performed by component
// lookups. A chain longer than this (including one containing a cycle) is
// treated as exhausted and the lookup reports "not found".
const MaxParentDepth = 64

// World associates typed component values with lightweight entity
// identifiers. Creation and destruction are staged: a new entity becomes
// visible to iteration, and a destroyed one actually releases its slot,
// only when Commit is called.
//
// A World is not safe for concurrent use. At any instant it permits either
// any number of readers or exactly one mutating call, never both.
type World struct {
	alloc   *allocator
	store   componentStore
	tracker *changeTracker
	parents *parentTable
}

// NewWorld creates an empty World. Worlds are fully independent; counters
// and free lists are never shared between instances.
func NewWorld() *World {
	return &World{
		alloc:   newAllocator(),
		tracker: newChangeTracker(),
		parents: newParentTable(),
	}
}

// CreateEntity allocates a new entity. The entity accepts component
// operations immediately but stays hidden from Entities and ListEntities
// until the next Commit.
func (w *World) CreateEntity() Entity {
	e := w.alloc.allocate()
	w.store.ensure(e.Index)
	w.tracker.markAdded(e.Index, e.Generation)
	return e
}

// DestroyEntity stages an entity for destruction at the next Commit. It has
// no immediate effect on storage: the entity stays valid and keeps its
// components until the removal is committed. Reports whether the entity was
// valid when staged.
func (w *World) DestroyEntity(e Entity) bool {
	w.tracker.markRemoved(e.Index, e.Generation)
	return w.IsValid(e)
}

// IsValid reports whether e currently identifies a live entity in this
// World. A stale or out-of-range entity is simply invalid, not an error.
func (w *World) IsValid(e Entity) bool {
	return w.alloc.isValid(e)
}

// Generation returns the generation currently occupying a slot index, or 0
// when the slot is free or has never been allocated.
func (w *World) Generation(idx uint32) uint32 {
	return w.alloc.generation(idx)
}

// Commit applies all staged removals, prunes parent links with an invalid
// endpoint and resets the added/changed/removed logs, establishing a new
// "since last commit" baseline.
func (w *World) Commit() {
	for _, e := range w.tracker.commit() {
		// A staged pair is only honored if that exact entity still
		// occupies the slot; stale pairs are dropped.
		if w.alloc.isValid(e) {
			w.alloc.release(e.Index)
			w.store.clear(e.Index)
		}
	}
	w.parents.prune(w.IsValid)
}

// AddComponent attaches a component value to an entity, replacing any value
// of the same type and returning a pointer at the replaced value, or nil.
// The component may be passed by value or as a pointer; either way the
// World stores its own copy. Returns nil without storing anything when the
// entity is not valid.
//
// Component types must be value types: maps, channels, functions and
// pointers are rejected.
func (w *World) AddComponent(e Entity, component any) any {
	if !w.IsValid(e) {
		return nil
	}

	rv := reflect.ValueOf(component)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Invalid:
		panic("components cannot be pointers, maps, channels, or functions")
	}

	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)

	w.tracker.markChanged(e.Index, e.Generation)
	return w.store.insert(e.Index, rv.Type(), ptr.Interface())
}

// Component returns a pointer at the stored value of the given type,
// searching the entity itself first and then its ancestors in nearest-first
// order. Returns nil if the chain is exhausted, any link is invalid, or the
// walk exceeds MaxParentDepth.
func (w *World) Component(e Entity, compType reflect.Type) any {
	cur := e
	for depth := 0; depth <= MaxParentDepth; depth++ {
		if !w.IsValid(cur) {
			return nil
		}
		if c := w.store.get(cur.Index, compType); c != nil {
			return c
		}
		parent, ok := w.parents.parentOf(cur)
		if !ok {
			return nil
		}
		cur = parent
	}
	return nil
}

// HasComponentType reports whether the entity, or any ancestor reached
// through its parent chain, holds a component of the given type.
func (w *World) HasComponentType(e Entity, compType reflect.Type) bool {
	return w.Component(e, compType) != nil
}

// MutComponent returns a pointer at the entity's own stored value of the
// given type and marks the entity changed. Unlike Component it never walks
// the parent chain: mutation is not inherited, so an entity can never alias
// an ancestor's value through its own handle.
func (w *World) MutComponent(e Entity, compType reflect.Type) any {
	if !w.IsValid(e) {
		return nil
	}
	c := w.store.get(e.Index, compType)
	if c == nil {
		return nil
	}
	w.tracker.markChanged(e.Index, e.Generation)
	return c
}

// RemoveComponentType detaches and returns the entity's own component of
// the given type, nil if absent. Ancestors are never touched.
func (w *World) RemoveComponentType(e Entity, compType reflect.Type) any {
	if !w.IsValid(e) {
		return nil
	}
	prev := w.store.remove(e.Index, compType)
	if prev != nil {
		w.tracker.markChanged(e.Index, e.Generation)
	}
	return prev
}

// ComponentTypes returns the component types currently attached to the
// entity itself, in unspecified order. Inherited components are not listed.
func (w *World) ComponentTypes(e Entity) []reflect.Type {
	if !w.IsValid(e) {
		return nil
	}
	return w.store.types(e.Index)
}

// SetParent links child to parent for component fallback lookup,
// overwriting any prior parent. Fails without mutating when either endpoint
// is not currently valid.
func (w *World) SetParent(child, parent Entity) bool {
	if !w.IsValid(child) || !w.IsValid(parent) {
		return false
	}
	w.parents.link(child, parent)
	return true
}

// GetParent returns the stored parent of child. The link is only reported
// while child itself is valid.
func (w *World) GetParent(child Entity) (Entity, bool) {
	if !w.IsValid(child) {
		return NoEntity, false
	}
	return w.parents.parentOf(child)
}

// UnlinkParent removes any parent association for child. Safe no-op if
// there is none.
func (w *World) UnlinkParent(child Entity) {
	w.parents.unlink(child)
}

// Entities returns a lazy, forward-only iterator over the committed live
// entities, in slot order. Entities created since the last commit are
// skipped. The World must not be mutated while iteration is in progress.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for idx, gen := range w.alloc.active {
			if gen == 0 || w.tracker.pendingAdd(uint32(idx)) {
				continue
			}
			if !yield(Entity{Index: uint32(idx), Generation: gen}) {
				return
			}
		}
	}
}

// ListEntities returns an eager snapshot of the committed live entities.
// The snapshot can be kept while mutating the World, unlike Entities.
func (w *World) ListEntities() []Entity {
	out := make([]Entity, 0, w.Len())
	for e := range w.Entities() {
		out = append(out, e)
	}
	return out
}

// ListAdditions returns the entities created since the last commit. Pairs
// that no longer match the slot table are dropped.
func (w *World) ListAdditions() []Entity {
	return w.filterValid(w.tracker.listAdded())
}

// ListRemovals returns the entities staged for destruction.
func (w *World) ListRemovals() []Entity {
	return w.tracker.listRemoved()
}

// ListChanges returns the entities whose component set or contents were
// touched since the last commit. Pairs that no longer match the slot table
// are dropped.
func (w *World) ListChanges() []Entity {
	return w.filterValid(w.tracker.listChanged())
}

func (w *World) filterValid(entities []Entity) []Entity {
	out := entities[:0]
	for _, e := range entities {
		if w.alloc.isValid(e) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live entities, including ones created since
// the last commit.
func (w *World) Len() int {
	n := 0
	for _, gen := range w.alloc.active {
		if gen != 0 {
			n++
		}
	}
	return n
}

// WorldStats is a point-in-time snapshot of a World's bookkeeping, used by
// the debug UI and the stress report.
type WorldStats struct {
	EntityCount     int
	SlotCount       int
	FreeSlots       int
	ParentLinks     int
	PendingAdds     int
	PendingRemovals int
	PendingChanges  int
}

// Stats collects a WorldStats snapshot.
func (w *World) Stats() WorldStats {
	return WorldStats{
		EntityCount:     w.Len(),
		SlotCount:       int(w.alloc.nextIdx),
		FreeSlots:       len(w.alloc.free),
		ParentLinks:     len(w.parents.links),
		PendingAdds:     w.tracker.added.Len(),
		PendingRemovals: w.tracker.removed.Len(),
		PendingChanges:  w.tracker.changed.Len(),
	}
}
