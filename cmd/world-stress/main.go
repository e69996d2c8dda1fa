//go:generate go run ../stressgen -count 16 -out components_gen.go
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

	"github.com/plus3/entworld/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 200, "Entities created and destroyed per commit cycle.")
	parentRatio := flag.Float64("parent-ratio", 0.25, "Fraction of entities linked to a parent.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting world stress test...")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := ecs.NewWorld()

	// 1. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(world, rng, *parentRatio)
	}
	world.Commit()
	log.Println("Population complete.")

	// 2. Run the churn loop
	report := &Report{
		Duration:    *duration,
		Entities:    *entityCount,
		Churn:       *churn,
		Components:  generatedComponentCount,
		ParentRatio: *parentRatio,

		GCPauseMetrics: *gcPauseMetrics,
		CycleTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalCycles int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			cycleStart := time.Now()
			runCycle(world, rng, *churn, *parentRatio)
			cycleDuration := time.Since(cycleStart)

			report.CycleTime.Samples = append(report.CycleTime.Samples, cycleDuration)
			totalCycles++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalCycles = totalCycles
	report.CycleTime.Finalize()
	report.FinalStats = world.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// spawnRandomEntity creates an entity carrying 1 to 5 random components,
// optionally parented to an existing committed entity.
func spawnRandomEntity(world *ecs.World, rng *rand.Rand, parentRatio float64) ecs.Entity {
	e := world.CreateEntity()

	numComponents := rng.Intn(5) + 1
	for i := 0; i < numComponents; i++ {
		attachComponent(world, e, rng.Intn(generatedComponentCount), rng)
	}

	if rng.Float64() < parentRatio {
		if candidates := world.ListEntities(); len(candidates) > 0 {
			world.SetParent(e, candidates[rng.Intn(len(candidates))])
		}
	}

	return e
}

// runCycle performs one commit window of churn: create, mutate, read
// through parent chains, destroy, commit.
func runCycle(world *ecs.World, rng *rand.Rand, churn int, parentRatio float64) {
	for i := 0; i < churn; i++ {
		spawnRandomEntity(world, rng, parentRatio)
	}

	entities := world.ListEntities()
	if len(entities) == 0 {
		world.Commit()
		return
	}

	// Touch roughly half of the churn budget with mutations.
	for i := 0; i < churn/2; i++ {
		e := entities[rng.Intn(len(entities))]
		mutateComponent(world, e, rng.Intn(generatedComponentCount), rng)
	}

	// Stage removals to keep the population level.
	for i := 0; i < churn; i++ {
		world.DestroyEntity(entities[rng.Intn(len(entities))])
	}

	world.Commit()
}
