package ecs

import "reflect"

// componentStore is the type-keyed component storage backing a World. Each
// slot owns one map from component type to a pointer at the stored value,
// so at most one value of a given type exists per entity at a time.
//
// reflect.Type is the stable type identifier: two values share a key iff
// they are the same concrete Go type.
type componentStore struct {
	slots []map[reflect.Type]any
}

// ensure grows the slot sequence to cover idx. Slot maps are allocated
// lazily on first insert.
func (s *componentStore) ensure(idx uint32) {
	for int(idx) >= len(s.slots) {
		s.slots = append(s.slots, nil)
	}
}

// insert stores a pointer at a component value under its type, returning
// the previously stored pointer of that type, or nil if there was none.
func (s *componentStore) insert(idx uint32, t reflect.Type, ptr any) any {
	if s.slots[idx] == nil {
		s.slots[idx] = make(map[reflect.Type]any)
	}
	prev := s.slots[idx][t]
	s.slots[idx][t] = ptr
	return prev
}

// get returns the stored pointer for a component type, nil if absent.
func (s *componentStore) get(idx uint32, t reflect.Type) any {
	return s.slots[idx][t]
}

// remove deletes and returns the stored pointer, nil if absent.
func (s *componentStore) remove(idx uint32, t reflect.Type) any {
	prev := s.slots[idx][t]
	delete(s.slots[idx], t)
	return prev
}

func (s *componentStore) contains(idx uint32, t reflect.Type) bool {
	_, ok := s.slots[idx][t]
	return ok
}

// clear drops every component value for a slot. Used on destruction.
func (s *componentStore) clear(idx uint32) {
	s.slots[idx] = nil
}

func (s *componentStore) count(idx uint32) int {
	return len(s.slots[idx])
}

// types returns the component types currently stored in a slot, in
// unspecified order.
func (s *componentStore) types(idx uint32) []reflect.Type {
	if len(s.slots[idx]) == 0 {
		return nil
	}
	out := make([]reflect.Type, 0, len(s.slots[idx]))
	for t := range s.slots[idx] {
		out = append(out, t)
	}
	return out
}
