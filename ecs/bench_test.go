package ecs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/plus3/sigecs/ecs"
)

func populate(table *ecs.Table, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for id := range table.All() {
		switch rng.Intn(4) {
		case 0:
		case 1:
			table.Entity(id).AddPosition(rng.Intn(1<<20), rng.Intn(1<<20))
		default:
			table.Entity(id).AddPosition(rng.Intn(1<<20), rng.Intn(1<<20))
			table.Entity(id).AddVelocity(rng.Intn(3)-1, rng.Intn(3)-1)
		}
	}
}

func TestTicksDoNotAllocate(t *testing.T) {
	for _, strategy := range collisionStrategies {
		t.Run(strategy.name, func(t *testing.T) {
			table := ecs.NewTable(256)
			populate(table, 1)

			movement := ecs.NewMovementSystem()
			collision := ecs.NewCollisionSystem(strategy.opts...)
			movement.Tick(table)
			collision.Tick(table)

			allocs := testing.AllocsPerRun(100, func() {
				movement.Tick(table)
				collision.Tick(table)
			})
			if allocs != 0 {
				t.Errorf("expected allocation-free ticks, got %.1f allocs per run", allocs)
			}
		})
	}
}

func BenchmarkMovementTick(b *testing.B) {
	for _, size := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			table := ecs.NewTable(size)
			populate(table, 1)
			movement := ecs.NewMovementSystem()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				movement.Tick(table)
			}
		})
	}
}

func BenchmarkCollisionTick(b *testing.B) {
	for _, strategy := range collisionStrategies {
		for _, size := range []int{64, 1024} {
			b.Run(fmt.Sprintf("%s/%d", strategy.name, size), func(b *testing.B) {
				table := ecs.NewTable(size)
				populate(table, 2)
				collision := ecs.NewCollisionSystem(strategy.opts...)

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					collision.Tick(table)
				}
			})
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	table := ecs.NewTable(1024)
	populate(table, 3)

	scheduler := ecs.NewScheduler(table)
	scheduler.Register(ecs.NewMovementSystem())
	scheduler.Register(ecs.NewCollisionSystem(ecs.WithSpatialHash()))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once()
	}
}

func BenchmarkCommandsFlush(b *testing.B) {
	table := ecs.NewTable(1024)
	commands := ecs.NewCommands()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := ecs.EntityId(i % table.Cap())
		commands.AddPosition(id, i, i)
		commands.RemoveVelocity(id)
		commands.Clear(ecs.EntityId((i + 1) % table.Cap()))
		commands.Flush(table)
	}
}
