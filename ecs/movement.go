package ecs

// MovementSystem adds each entity's velocity to its position once per tick.
type MovementSystem struct {
	Query
}

// NewMovementSystem creates a movement system requiring Position and Velocity.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{
		Query: NewQuery(PositionFlag, VelocityFlag),
	}
}

// Tick moves every matching entity by one unit step.
func (s *MovementSystem) Tick(table *Table) {
	s.Execute(table)

	for _, id := range s.cachedSlots {
		e := &table.entities[id]
		e.position.X += e.velocity.X
		e.position.Y += e.velocity.Y
	}
}
