package ecs

import (
	"fmt"
	"iter"
)

// DefaultCapacity is the number of slots used when a driver has no reason to
// pick another size.
const DefaultCapacity = 64

// Table is a fixed-capacity sequence of entity slots. Slot order is the
// iteration order for every system.
type Table struct {
	entities []Entity
}

// NewTable creates a table with the given number of slots. All slots start
// with an empty signature.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		panic(fmt.Sprintf("ecs: table capacity must be positive, got %d", capacity))
	}

	return &Table{
		entities: make([]Entity, capacity),
	}
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.entities)
}

// Contains reports whether id addresses a slot of this table.
func (t *Table) Contains(id EntityId) bool {
	return int(id) < len(t.entities)
}

// Entity returns the slot at id. Panics if id is out of range.
func (t *Table) Entity(id EntityId) *Entity {
	return &t.entities[id]
}

// All iterates every slot in order, occupied or not.
func (t *Table) All() iter.Seq2[EntityId, *Entity] {
	return func(yield func(EntityId, *Entity) bool) {
		for i := range t.entities {
			if !yield(EntityId(i), &t.entities[i]) {
				return
			}
		}
	}
}

// Matching iterates, in slot order, every entity whose signature contains
// all bits of required.
func (t *Table) Matching(required Signature) iter.Seq2[EntityId, *Entity] {
	return func(yield func(EntityId, *Entity) bool) {
		for i := range t.entities {
			if !Matches(required, t.entities[i].signature) {
				continue
			}
			if !yield(EntityId(i), &t.entities[i]) {
				return
			}
		}
	}
}

// Count returns the number of entities matching required.
func (t *Table) Count(required Signature) int {
	n := 0
	for i := range t.entities {
		if Matches(required, t.entities[i].signature) {
			n++
		}
	}
	return n
}

// FirstFree returns the lowest slot with no components.
func (t *Table) FirstFree() (EntityId, bool) {
	for i := range t.entities {
		if t.entities[i].signature.IsZero() {
			return EntityId(i), true
		}
	}
	return 0, false
}

// Reset clears every slot's signature
func (t *Table) Reset() {
	for i := range t.entities {
		t.entities[i].Clear()
	}
}
