package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/entworld/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCreateEntityIdentifiers(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()

	// Indices start at 0, generations at 1 (0 means invalid).
	assert.Equal(t, uint32(0), e1.Index)
	assert.Equal(t, uint32(1), e1.Generation)
	assert.Equal(t, uint32(1), e2.Index)
	assert.Equal(t, uint32(2), e2.Generation)

	assert.NotEqual(t, e1, e2)
	assert.True(t, world.IsValid(e1))
	assert.True(t, world.IsValid(e2))
}

func TestEntityUniqueness(t *testing.T) {
	world := ecs.NewWorld()

	seen := make(map[ecs.Entity]bool)
	indices := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		e := world.CreateEntity()
		assert.False(t, seen[e], "entity %v issued twice", e)
		assert.False(t, indices[e.Index], "index %d live twice", e.Index)
		seen[e] = true
		indices[e.Index] = true
	}
}

func TestSlotReuseAfterCommit(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()

	assert.True(t, world.DestroyEntity(e1))
	world.Commit()
	assert.False(t, world.IsValid(e1))
	assert.True(t, world.IsValid(e2))

	// The freed slot is reused, but with a generation never issued before.
	e3 := world.CreateEntity()
	assert.Equal(t, uint32(0), e3.Index)
	assert.Equal(t, uint32(3), e3.Generation)
	assert.False(t, world.IsValid(e1))
}

func TestGenerationsNeverReused(t *testing.T) {
	world := ecs.NewWorld()

	issued := make(map[uint32]bool)
	for i := 0; i < 50; i++ {
		e := world.CreateEntity()
		assert.False(t, issued[e.Generation], "generation %d issued twice", e.Generation)
		issued[e.Generation] = true

		if i%2 == 0 {
			world.DestroyEntity(e)
			world.Commit()
		}
	}
}

func TestDestroyIsStagedUntilCommit(t *testing.T) {
	world := ecs.NewWorld()

	e := world.CreateEntity()
	ecs.Add(world, e, Health{Current: 80, Max: 100})

	world.DestroyEntity(e)

	// Still valid with components intact until the commit.
	assert.True(t, world.IsValid(e))
	health := ecs.Get[Health](world, e)
	assert.NotNil(t, health)
	assert.Equal(t, 80, health.Current)

	world.Commit()

	assert.False(t, world.IsValid(e))
	assert.Nil(t, ecs.Get[Health](world, e))
}

func TestDestroyInvalidEntity(t *testing.T) {
	world := ecs.NewWorld()

	stale := ecs.Entity{Index: 7, Generation: 42}
	assert.False(t, world.DestroyEntity(stale))

	// Committing a stale removal must not free anyone else's slot.
	e := world.CreateEntity()
	world.Commit()
	assert.True(t, world.IsValid(e))
}

func TestComponentRoundTrip(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	_, replaced := ecs.Add(world, e, Position{X: 3, Y: 4})
	assert.False(t, replaced)

	pos := ecs.Get[Position](world, e)
	assert.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	// Absent type is a silent miss, not an error.
	assert.Nil(t, ecs.Get[Velocity](world, e))
	assert.False(t, ecs.Has[Velocity](world, e))
	assert.True(t, ecs.Has[Position](world, e))
}

func TestPrimitiveComponents(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	ecs.Add(world, e, Score(32))
	ecs.Add(world, e, Tag("boss"))

	score := ecs.Get[Score](world, e)
	assert.NotNil(t, score)
	assert.Equal(t, Score(32), *score)

	tag := ecs.Get[Tag](world, e)
	assert.NotNil(t, tag)
	assert.Equal(t, Tag("boss"), *tag)
}

func TestReplaceOnInsert(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	ecs.Add(world, e, Name{Value: "first"})
	prev, replaced := ecs.Add(world, e, Name{Value: "second"})

	assert.True(t, replaced)
	assert.Equal(t, "first", prev.Value)

	name := ecs.Get[Name](world, e)
	assert.Equal(t, "second", name.Value)
}

func TestMutationVisibility(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	ecs.Add(world, e, Position{X: 4, Y: 13})

	pos := ecs.GetMut[Position](world, e)
	assert.NotNil(t, pos)
	pos.X = 10
	pos.Y = 14

	read := ecs.Get[Position](world, e)
	assert.Equal(t, float32(10), read.X)
	assert.Equal(t, float32(14), read.Y)
}

func TestRemoveComponent(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	ecs.Add(world, e, Velocity{DX: 1, DY: 2})

	removed, ok := ecs.Remove[Velocity](world, e)
	assert.True(t, ok)
	assert.Equal(t, float32(1), removed.DX)
	assert.False(t, ecs.Has[Velocity](world, e))

	_, ok = ecs.Remove[Velocity](world, e)
	assert.False(t, ok)
}

func TestStaleEntityOperationsAreNoOps(t *testing.T) {
	world := ecs.NewWorld()

	e := world.CreateEntity()
	ecs.Add(world, e, Position{X: 1, Y: 1})
	stale := e

	world.DestroyEntity(e)
	world.Commit()

	_, ok := ecs.Add(world, stale, Position{X: 9, Y: 9})
	assert.False(t, ok)
	assert.Nil(t, ecs.Get[Position](world, stale))
	assert.Nil(t, ecs.GetMut[Position](world, stale))
	assert.False(t, ecs.Has[Position](world, stale))
	_, ok = ecs.Remove[Position](world, stale)
	assert.False(t, ok)
}

func TestVisibilityDeferredUntilCommit(t *testing.T) {
	world := ecs.NewWorld()

	e := world.CreateEntity()

	// Fresh entities accept component operations immediately...
	ecs.Add(world, e, Position{X: 1, Y: 2})
	assert.NotNil(t, ecs.Get[Position](world, e))

	// ...but stay hidden from iteration and listing until a commit.
	assert.Empty(t, world.ListEntities())
	for range world.Entities() {
		t.Fatal("uncommitted entity yielded by iterator")
	}

	world.Commit()

	assert.Equal(t, []ecs.Entity{e}, world.ListEntities())
	count := 0
	for got := range world.Entities() {
		assert.Equal(t, e, got)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestIterator(t *testing.T) {
	world := ecs.NewWorld()

	// Half the entities get a Position component.
	for i := 0; i < 10; i++ {
		e := world.CreateEntity()
		if i%2 == 0 {
			ecs.Add(world, e, Position{X: float32(i), Y: float32(i * 2)})
		}
	}
	world.Commit()

	iterCount := 0
	posCount := 0
	for e := range world.Entities() {
		iterCount++
		if ecs.Get[Position](world, e) != nil {
			posCount++
		}
	}

	assert.Equal(t, 10, iterCount)
	assert.Equal(t, 5, posCount)
}

func TestIteratorEarlyStop(t *testing.T) {
	world := ecs.NewWorld()
	for i := 0; i < 5; i++ {
		world.CreateEntity()
	}
	world.Commit()

	count := 0
	for range world.Entities() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestListEntitiesAndDestroyAll(t *testing.T) {
	world := ecs.NewWorld()

	for i := 0; i < 10; i++ {
		world.CreateEntity()
	}
	world.Commit()

	// The eager snapshot can drive mutation of the world.
	for _, e := range world.ListEntities() {
		world.DestroyEntity(e)
	}
	world.Commit()

	for range world.Entities() {
		t.Fatal("entity survived destruction of the full listing")
	}
	assert.Equal(t, 0, world.Len())
}

func TestChangeLogs(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	world.Commit()

	t.Run("additions", func(t *testing.T) {
		e3 := world.CreateEntity()
		assert.ElementsMatch(t, []ecs.Entity{e3}, world.ListAdditions())
		world.Commit()
		assert.Empty(t, world.ListAdditions())
	})

	t.Run("changes", func(t *testing.T) {
		ecs.Add(world, e1, Position{X: 1, Y: 1})
		pos := ecs.GetMut[Position](world, e1)
		pos.X = 2
		ecs.Add(world, e2, Score(1))
		ecs.Remove[Score](world, e2)

		assert.ElementsMatch(t, []ecs.Entity{e1, e2}, world.ListChanges())
		world.Commit()
		assert.Empty(t, world.ListChanges())
	})

	t.Run("removals", func(t *testing.T) {
		world.DestroyEntity(e2)
		assert.ElementsMatch(t, []ecs.Entity{e2}, world.ListRemovals())
		world.Commit()
		assert.Empty(t, world.ListRemovals())
		assert.False(t, world.IsValid(e2))
	})
}

func TestGetComponentDoesNotMarkChanged(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()
	ecs.Add(world, e, Position{X: 1, Y: 1})
	world.Commit()

	_ = ecs.Get[Position](world, e)
	_ = ecs.Has[Position](world, e)
	assert.Empty(t, world.ListChanges())

	_ = ecs.GetMut[Position](world, e)
	assert.ElementsMatch(t, []ecs.Entity{e}, world.ListChanges())
}

func TestGeneration(t *testing.T) {
	world := ecs.NewWorld()

	assert.Equal(t, uint32(0), world.Generation(0))

	e := world.CreateEntity()
	assert.Equal(t, e.Generation, world.Generation(e.Index))

	world.DestroyEntity(e)
	world.Commit()
	assert.Equal(t, uint32(0), world.Generation(e.Index))

	// Out of range is 0, not a panic.
	assert.Equal(t, uint32(0), world.Generation(9999))
}

func TestStats(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	world.Commit()

	ecs.Add(world, e1, Position{})
	world.SetParent(e2, e1)
	e3 := world.CreateEntity()
	world.DestroyEntity(e2)

	stats := world.Stats()
	assert.Equal(t, 3, stats.EntityCount)
	assert.Equal(t, 3, stats.SlotCount)
	assert.Equal(t, 0, stats.FreeSlots)
	assert.Equal(t, 1, stats.ParentLinks)
	assert.Equal(t, 1, stats.PendingAdds)
	assert.Equal(t, 1, stats.PendingRemovals)
	assert.Equal(t, 1, stats.PendingChanges)

	world.Commit()
	stats = world.Stats()
	assert.Equal(t, 2, stats.EntityCount)
	assert.Equal(t, 1, stats.FreeSlots)
	assert.Equal(t, 0, stats.PendingAdds)
	assert.Equal(t, 0, stats.PendingRemovals)
	assert.Equal(t, 0, stats.PendingChanges)
	_ = e3
}

func TestWorldsAreIndependent(t *testing.T) {
	a := ecs.NewWorld()
	b := ecs.NewWorld()

	ea := a.CreateEntity()
	eb := b.CreateEntity()

	// Same index and generation, but each world only knows its own.
	assert.Equal(t, ea, eb)
	a.Commit()
	b.Commit()

	a.DestroyEntity(ea)
	a.Commit()

	assert.False(t, a.IsValid(ea))
	assert.True(t, b.IsValid(eb))
}

func TestInvalidComponentKinds(t *testing.T) {
	world := ecs.NewWorld()
	e := world.CreateEntity()

	tests := []struct {
		name      string
		component any
	}{
		{"map", map[string]int{}},
		{"chan", make(chan int)},
		{"func", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() {
				world.AddComponent(e, tt.component)
			})
		})
	}
}

func TestEntityString(t *testing.T) {
	e := ecs.Entity{Index: 3, Generation: 7}
	assert.Equal(t, "entity(3:7)", fmt.Sprintf("%v", e))
	assert.True(t, ecs.NoEntity.IsZero())
	assert.False(t, e.IsZero())
}
