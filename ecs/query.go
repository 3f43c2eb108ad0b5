package ecs

import "iter"

// Query selects the entities of a table whose signature contains a fixed
// required mask. Execute scans the table and caches the matching slots so a
// system can walk them more than once per tick.
type Query struct {
	required Signature

	table       *Table
	cachedSlots []EntityId
	cacheValid  bool
}

// NewQuery creates a query requiring every given component flag.
func NewQuery(flags ...Signature) Query {
	var required Signature
	for _, f := range flags {
		required.Set(f)
	}
	return Query{required: required}
}

// Mask returns the required component mask.
func (q *Query) Mask() Signature {
	return q.required
}

// Matches reports whether an entity with signature satisfies this query.
func (q *Query) Matches(signature Signature) bool {
	return Matches(q.required, signature)
}

// Execute rebuilds the slot cache from table, in slot order.
func (q *Query) Execute(table *Table) {
	if cap(q.cachedSlots) < table.Cap() {
		q.cachedSlots = make([]EntityId, 0, table.Cap())
	}
	q.cachedSlots = q.cachedSlots[:0]
	q.table = table

	for i := range table.entities {
		if Matches(q.required, table.entities[i].signature) {
			q.cachedSlots = append(q.cachedSlots, EntityId(i))
		}
	}

	q.cacheValid = true
}

// Slots returns the cached matching slots. The slice is reused by the next
// Execute.
func (q *Query) Slots() []EntityId {
	return q.cachedSlots
}

// Len returns the number of cached matches.
func (q *Query) Len() int {
	return len(q.cachedSlots)
}

// Iter returns an iterator over the cached matches.
// Panics if Execute() has not been called.
func (q *Query) Iter() iter.Seq2[EntityId, *Entity] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, *Entity) bool) {
		for _, id := range q.cachedSlots {
			if !yield(id, q.table.Entity(id)) {
				return
			}
		}
	}
}
