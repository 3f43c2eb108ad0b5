package ecs_test

import (
	"fmt"

	"github.com/plus3/sigecs/ecs"
)

// ExampleQuery shows a query caching the slots that carry both Position and
// Velocity. The cache stays valid until the next Execute.
func ExampleQuery() {
	table := ecs.NewTable(4)
	table.Entity(0).AddPosition(0, 0)
	table.Entity(0).AddVelocity(1, 0)
	table.Entity(1).AddPosition(10, 10)
	table.Entity(2).AddPosition(20, 20)
	table.Entity(2).AddVelocity(-1, -1)

	query := ecs.NewQuery(ecs.PositionFlag, ecs.VelocityFlag)
	query.Execute(table)

	fmt.Println("Moving entities:")
	for id, e := range query.Iter() {
		pos, _ := e.Position()
		vel, _ := e.Velocity()
		fmt.Printf("%d: (%d, %d) -> (%d, %d)\n", id, pos.X, pos.Y, pos.X+vel.X, pos.Y+vel.Y)
	}

	// Output:
	// Moving entities:
	// 0: (0, 0) -> (1, 0)
	// 2: (20, 20) -> (19, 19)
}
