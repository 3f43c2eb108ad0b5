package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/sigecs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The table capacity; roughly three quarters of the slots are populated.")
	spatial := flag.Bool("spatial", true, "Use the spatial-hash collision scan instead of the pairwise scan.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup Table and Scheduler
	table := ecs.NewTable(*entityCount)
	scheduler := ecs.NewScheduler(table)
	var collisionOpts []ecs.CollisionOption
	if *spatial {
		collisionOpts = append(collisionOpts, ecs.WithSpatialHash())
	}
	collision := ecs.NewCollisionSystem(collisionOpts...)
	scheduler.Register(ecs.NewMovementSystem())
	scheduler.Register(collision)

	// 2. Populate the table
	log.Printf("Populating table with %d slots...\n", *entityCount)
	populated := PopulateRandom(table, rand.New(rand.NewSource(time.Now().UnixNano())))
	log.Printf("Population complete: %d entities.\n", populated)

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Capacity:       *entityCount,
		Entities:       populated,
		Spatial:        *spatial,
		GCPauseMetrics: *gcPauseMetrics,
		Table:          table,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once()
			updateDuration := time.Since(updateStart)

			report.TickTime.Record(updateDuration)
			totalUpdates++
			if collision.Collided() {
				report.CollisionTicks++
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.TickTime.Summarize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// PopulateRandom fills about three quarters of the table: a third of those
// with Position only, the rest with Position and a small Velocity. It returns
// the number of occupied slots.
func PopulateRandom(table *ecs.Table, rng *rand.Rand) int {
	span := table.Cap() * 4
	populated := 0
	for _, e := range table.All() {
		if rng.Intn(4) == 0 {
			continue
		}
		e.AddPosition(rng.Intn(span), rng.Intn(span))
		if rng.Intn(3) != 0 {
			e.AddVelocity(rng.Intn(3)-1, rng.Intn(3)-1)
		}
		populated++
	}
	return populated
}
