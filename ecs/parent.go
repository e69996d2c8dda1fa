package ecs

// Parent is a plain payload component referencing the parent of an entity.
// It carries no behavior; attach it like any other component.
type Parent struct {
	Entity Entity
}

// Children is a plain payload component listing the children of a parental
// entity.
type Children struct {
	Entities []Entity
}

// parentTable stores the parent link consulted during component fallback
// lookup. An entry is meaningful only while both endpoints are valid;
// stale entries are pruned at commit time, not eagerly.
type parentTable struct {
	links map[Entity]Entity
}

func newParentTable() *parentTable {
	return &parentTable{links: make(map[Entity]Entity)}
}

// link associates child with parent, overwriting any prior parent.
func (p *parentTable) link(child, parent Entity) {
	p.links[child] = parent
}

// parentOf returns the stored parent for child, if any.
func (p *parentTable) parentOf(child Entity) (Entity, bool) {
	parent, ok := p.links[child]
	return parent, ok
}

// unlink removes any association for child. No-op if absent.
func (p *parentTable) unlink(child Entity) {
	delete(p.links, child)
}

// prune drops every link where either endpoint fails the predicate. The
// commit protocol runs this with the World's validity check.
func (p *parentTable) prune(valid func(Entity) bool) {
	for child, parent := range p.links {
		if !valid(child) || !valid(parent) {
			delete(p.links, child)
		}
	}
}
