package ecs

// Position is a point on the integer grid.
type Position struct {
	X, Y int
}

// Velocity is a per-tick displacement.
type Velocity struct {
	X, Y int
}
