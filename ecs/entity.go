package ecs

// EntityId is the slot index of an entity in its Table
type EntityId uint32

// Entity is one slot of a Table. It reserves storage for every known component
// kind; the signature decides which of them are present. Component data is
// only reachable through accessors that consult the signature, so a removed
// component can never be read back.
type Entity struct {
	signature Signature
	position  Position
	velocity  Velocity
}

// Signature returns the set of components currently present.
func (e *Entity) Signature() Signature {
	return e.signature
}

// Has reports whether every component in mask is present.
func (e *Entity) Has(mask Signature) bool {
	return Matches(mask, e.signature)
}

// AddPosition writes the position and marks the component present.
func (e *Entity) AddPosition(x, y int) {
	e.position = Position{X: x, Y: y}
	e.signature.Set(PositionFlag)
}

// RemovePosition marks the position absent.
func (e *Entity) RemovePosition() {
	e.signature.Unset(PositionFlag)
}

// Position returns the position and whether it is present.
func (e *Entity) Position() (Position, bool) {
	if !e.signature.HasAll(PositionFlag) {
		return Position{}, false
	}
	return e.position, true
}

// PositionRef returns a pointer to the position for in-place updates, or nil
// when the entity has no position.
func (e *Entity) PositionRef() *Position {
	if !e.signature.HasAll(PositionFlag) {
		return nil
	}
	return &e.position
}

// AddVelocity writes the velocity and marks the component present.
func (e *Entity) AddVelocity(x, y int) {
	e.velocity = Velocity{X: x, Y: y}
	e.signature.Set(VelocityFlag)
}

// RemoveVelocity marks the velocity absent.
func (e *Entity) RemoveVelocity() {
	e.signature.Unset(VelocityFlag)
}

// Velocity returns the velocity and whether it is present.
func (e *Entity) Velocity() (Velocity, bool) {
	if !e.signature.HasAll(VelocityFlag) {
		return Velocity{}, false
	}
	return e.velocity, true
}

// VelocityRef returns a pointer to the velocity for in-place updates, or nil
// when the entity has no velocity.
func (e *Entity) VelocityRef() *Velocity {
	if !e.signature.HasAll(VelocityFlag) {
		return nil
	}
	return &e.velocity
}

// Clear removes every component, leaving the slot free for reuse.
func (e *Entity) Clear() {
	e.signature = 0
}
