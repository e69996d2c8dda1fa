// Package ecs provides an in-memory entity/component store with staged
// creation and destruction, change tracking between commits, and component
// inheritance along parent links.
package ecs

import "fmt"

// Entity identifies an object stored in a World. It pairs a reusable slot
// index with a generation counter so that a recycled index is never confused
// with the entity that previously occupied it.
type Entity struct {
	// Index selects the storage slot for this entity.
	Index uint32
	// Generation disambiguates reuse of the slot. A generation of 0 is
	// reserved to mean "no entity" and is never assigned to a live one.
	Generation uint32
}

// NoEntity is the zero Entity. It is never valid in any World.
var NoEntity = Entity{}

// IsZero reports whether e is the reserved "no entity" value.
func (e Entity) IsZero() bool {
	return e.Generation == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("entity(%d:%d)", e.Index, e.Generation)
}
