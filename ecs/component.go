package ecs

import "reflect"

// This file is the generic front of the component API. Each function is a
// thin typed wrapper over the World's reflect.Type surface.

// Add attaches a component value to an entity. If the entity already held a
// value of type T it is replaced, and the previous value is returned with
// ok set. Does nothing on an invalid entity.
func Add[T any](w *World, e Entity, component T) (prev T, ok bool) {
	replaced := w.AddComponent(e, &component)
	if replaced == nil {
		return prev, false
	}
	return *replaced.(*T), true
}

// Get returns a pointer to the entity's component of type T, consulting the
// parent chain in nearest-first order when the entity itself has none.
// Returns nil if no value is found.
func Get[T any](w *World, e Entity) *T {
	c := w.Component(e, reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}

// GetMut returns a pointer to the entity's own component of type T and
// marks the entity changed. The parent chain is never consulted; inherited
// components cannot be mutated through a child's handle.
func GetMut[T any](w *World, e Entity) *T {
	c := w.MutComponent(e, reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}

// Remove detaches the entity's own component of type T, returning the
// removed value with ok set when one was present.
func Remove[T any](w *World, e Entity) (removed T, ok bool) {
	prev := w.RemoveComponentType(e, reflect.TypeFor[T]())
	if prev == nil {
		return removed, false
	}
	return *prev.(*T), true
}

// Has reports whether the entity, or any ancestor on its parent chain,
// holds a component of type T.
func Has[T any](w *World, e Entity) bool {
	return w.HasComponentType(e, reflect.TypeFor[T]())
}
