package ecs

import "github.com/kamstrup/intmap"

// Commands provides a buffer for deferred component changes that are applied
// at the end of a tick. This keeps signatures stable while systems run.
type Commands struct {
	clears  []EntityId
	removes []removeCommand
	adds    []addCommand
	defers  []deferCommand

	cleared *intmap.Map[EntityId, struct{}]
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{
		cleared: intmap.New[EntityId, struct{}](16),
	}
}

type deferCommand struct {
	fn func()
}

type removeCommand struct {
	entity EntityId
	flag   Signature
}

type addCommand struct {
	entity EntityId
	flag   Signature
	x, y   int
}

// Defer queues a function to run after all component changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Clear queues the removal of every component of entity.
func (c *Commands) Clear(entity EntityId) {
	c.clears = append(c.clears, entity)
}

// AddPosition queues a position addition.
func (c *Commands) AddPosition(entity EntityId, x, y int) {
	c.adds = append(c.adds, addCommand{entity: entity, flag: PositionFlag, x: x, y: y})
}

// RemovePosition queues a position removal.
func (c *Commands) RemovePosition(entity EntityId) {
	c.removes = append(c.removes, removeCommand{entity: entity, flag: PositionFlag})
}

// AddVelocity queues a velocity addition.
func (c *Commands) AddVelocity(entity EntityId, x, y int) {
	c.adds = append(c.adds, addCommand{entity: entity, flag: VelocityFlag, x: x, y: y})
}

// RemoveVelocity queues a velocity removal.
func (c *Commands) RemoveVelocity(entity EntityId) {
	c.removes = append(c.removes, removeCommand{entity: entity, flag: VelocityFlag})
}

// Pending returns the number of queued commands.
func (c *Commands) Pending() int {
	return len(c.clears) + len(c.removes) + len(c.adds) + len(c.defers)
}

// Flush applies all queued commands to table, resetting the buffer state.
// Clears run first; removals and additions targeting a cleared entity are
// dropped.
func (c *Commands) Flush(table *Table) {
	c.cleared.Clear()

	for _, id := range c.clears {
		table.Entity(id).Clear()
		c.cleared.Put(id, struct{}{})
	}

	for _, cmd := range c.removes {
		if _, ok := c.cleared.Get(cmd.entity); ok {
			continue
		}
		e := table.Entity(cmd.entity)
		switch cmd.flag {
		case PositionFlag:
			e.RemovePosition()
		case VelocityFlag:
			e.RemoveVelocity()
		}
	}

	for _, cmd := range c.adds {
		if _, ok := c.cleared.Get(cmd.entity); ok {
			continue
		}
		e := table.Entity(cmd.entity)
		switch cmd.flag {
		case PositionFlag:
			e.AddPosition(cmd.x, cmd.y)
		case VelocityFlag:
			e.AddVelocity(cmd.x, cmd.y)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.clears = c.clears[:0]
	c.removes = c.removes[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
