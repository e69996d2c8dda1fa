package ecs

// allocator hands out entity identifiers for a single World. Slot indices
// are recycled through a LIFO free list; generations are issued from a
// monotonic counter and never reused.
type allocator struct {
	// active holds the generation currently occupying each slot, 0 for a
	// free slot. It grows to cover the newest generation and never shrinks.
	active []uint32
	// free is a LIFO stack of slot indices available for reuse.
	free    []uint32
	nextIdx uint32
	nextGen uint32
}

func newAllocator() *allocator {
	return &allocator{
		// Generation 0 means "no entity", so issuing starts at 1.
		nextGen: 1,
	}
}

// allocate returns a fresh Entity, reusing a free slot index when one is
// available. It cannot fail; exhaustion of the counters is out of scope.
func (a *allocator) allocate() Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = a.nextIdx
		a.nextIdx++
	}

	gen := a.nextGen
	a.nextGen++

	// The generation is a strict upper bound for every index issued so
	// far, so growing to cover it always covers idx as well.
	if int(gen) >= len(a.active) {
		grown := make([]uint32, gen+1)
		copy(grown, a.active)
		a.active = grown
	}
	a.active[idx] = gen

	return Entity{Index: idx, Generation: gen}
}

// release frees a slot for reuse. Only the commit protocol calls this, so a
// slot never re-enters circulation while its removal is still pending.
func (a *allocator) release(idx uint32) {
	a.free = append(a.free, idx)
	a.active[idx] = 0
}

// isValid reports whether e currently occupies its slot. Out-of-range
// indices are invalid, not an error.
func (a *allocator) isValid(e Entity) bool {
	if int(e.Index) >= len(a.active) {
		return false
	}
	return e.Generation != 0 && a.active[e.Index] == e.Generation
}

// generation returns the generation occupying a slot, 0 when the slot is
// free or has never been allocated.
func (a *allocator) generation(idx uint32) uint32 {
	if int(idx) >= len(a.active) {
		return 0
	}
	return a.active[idx]
}
