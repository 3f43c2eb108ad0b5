package ecs

import "github.com/kamstrup/intmap"

// CollisionSystem reports, once per tick, whether any two entities with a
// Position occupy the same point. Scanning stops at the first pair found.
type CollisionSystem struct {
	Query

	collided bool
	first    EntityId
	second   EntityId

	spatial *intmap.Map[uint64, EntityId]
}

// CollisionOption configures a CollisionSystem.
type CollisionOption func(*CollisionSystem)

// WithSpatialHash makes the system bucket positions in a hash map instead of
// comparing every pair. Results are the same, the reported pair may differ.
func WithSpatialHash() CollisionOption {
	return func(s *CollisionSystem) {
		s.spatial = intmap.New[uint64, EntityId](DefaultCapacity)
	}
}

// NewCollisionSystem creates a collision system requiring Position.
func NewCollisionSystem(opts ...CollisionOption) *CollisionSystem {
	s := &CollisionSystem{
		Query: NewQuery(PositionFlag),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collided reports whether the last tick found a colliding pair.
func (s *CollisionSystem) Collided() bool {
	return s.collided
}

// Pair returns the colliding pair found by the last tick, lower slot first.
func (s *CollisionSystem) Pair() (EntityId, EntityId, bool) {
	return s.first, s.second, s.collided
}

// Tick resets the outcome and searches for a colliding pair.
func (s *CollisionSystem) Tick(table *Table) {
	s.collided = false
	s.first, s.second = 0, 0

	s.Execute(table)

	if s.spatial != nil {
		s.scanSpatial(table)
		return
	}
	s.scanPairs(table)
}

// scanPairs compares every unordered pair of matching slots exactly once.
func (s *CollisionSystem) scanPairs(table *Table) {
	slots := s.cachedSlots
	for i := 0; i < len(slots); i++ {
		a := table.entities[slots[i]].position
		for j := i + 1; j < len(slots); j++ {
			if table.entities[slots[j]].position == a {
				s.report(slots[i], slots[j])
				return
			}
		}
	}
}

func (s *CollisionSystem) scanSpatial(table *Table) {
	s.spatial.Clear()

	for _, id := range s.cachedSlots {
		pos := table.entities[id].position
		key := packPosition(pos)

		prev, ok := s.spatial.Get(key)
		if !ok {
			s.spatial.Put(key, id)
			continue
		}
		if table.entities[prev].position == pos {
			s.report(prev, id)
			return
		}

		// Distinct positions share a key only when coordinates overflow
		// 32 bits; the exhaustive scan stays exact in that case.
		s.scanPairs(table)
		return
	}
}

func (s *CollisionSystem) report(a, b EntityId) {
	s.collided = true
	s.first, s.second = a, b
}

func packPosition(p Position) uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}
