package ecs

// StoredPosition returns the position storage regardless of the signature.
func StoredPosition(e *Entity) Position {
	return e.position
}
