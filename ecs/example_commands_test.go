package ecs_test

import (
	"fmt"

	"github.com/plus3/sigecs/ecs"
)

// ExampleCommands queues component changes between ticks. Nothing changes
// until the scheduler flushes the buffer at the end of its next tick.
func ExampleCommands() {
	table := ecs.NewTable(2)
	table.Entity(0).AddPosition(0, 0)

	scheduler := ecs.NewScheduler(table)
	scheduler.Register(ecs.NewMovementSystem())

	scheduler.Commands().AddVelocity(0, 2, 1)
	scheduler.Commands().AddPosition(1, 5, 5)
	fmt.Println("before:", table.Entity(0).Signature(), "/", table.Entity(1).Signature())

	scheduler.Once()
	fmt.Println("after one tick:", table.Entity(0).Signature(), "/", table.Entity(1).Signature())

	scheduler.Once()
	pos, _ := table.Entity(0).Position()
	fmt.Printf("entity 0 at (%d, %d)\n", pos.X, pos.Y)

	// Output:
	// before: Position / None
	// after one tick: Position|Velocity / Position
	// entity 0 at (2, 1)
}
