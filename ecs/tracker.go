package ecs

import "github.com/kamstrup/intmap"

// changeTracker records which entities were created, staged for destruction
// or touched since the last commit. Each log maps slot index to the
// generation it was recorded for, so a staged operation stays tied to the
// exact entity identity rather than just the slot.
type changeTracker struct {
	added   *intmap.Map[uint32, uint32]
	removed *intmap.Map[uint32, uint32]
	changed *intmap.Map[uint32, uint32]
}

func newChangeTracker() *changeTracker {
	return &changeTracker{
		added:   intmap.New[uint32, uint32](64),
		removed: intmap.New[uint32, uint32](64),
		changed: intmap.New[uint32, uint32](64),
	}
}

// The marks are idempotent upserts; re-marking overwrites the generation.

func (t *changeTracker) markAdded(idx, gen uint32)   { t.added.Put(idx, gen) }
func (t *changeTracker) markRemoved(idx, gen uint32) { t.removed.Put(idx, gen) }
func (t *changeTracker) markChanged(idx, gen uint32) { t.changed.Put(idx, gen) }

// pendingAdd reports whether a slot holds an entity created since the last
// commit. Such entities are hidden from iteration and listing.
func (t *changeTracker) pendingAdd(idx uint32) bool {
	_, ok := t.added.Get(idx)
	return ok
}

func (t *changeTracker) listAdded() []Entity   { return snapshot(t.added) }
func (t *changeTracker) listRemoved() []Entity { return snapshot(t.removed) }
func (t *changeTracker) listChanged() []Entity { return snapshot(t.changed) }

// snapshot copies a log into an eager Entity slice, order unspecified.
func snapshot(m *intmap.Map[uint32, uint32]) []Entity {
	out := make([]Entity, 0, m.Len())
	m.ForEach(func(idx, gen uint32) bool {
		out = append(out, Entity{Index: idx, Generation: gen})
		return true
	})
	return out
}

// commit clears the added and changed logs unconditionally and drains the
// removal log, handing the staged removals to the caller for processing.
func (t *changeTracker) commit() []Entity {
	t.added.Clear()
	t.changed.Clear()

	staged := snapshot(t.removed)
	t.removed.Clear()
	return staged
}
