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

	"github.com/plus3/gobject/object"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 10000, "The initial number of objects to create.")
	maxComponents := flag.Int("components", 5, "The maximum number of components attached to each object.")
	churn := flag.Int("churn", 8, "Objects deactivated (and replaced) per tick to exercise reclamation.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting object lifecycle stress test...")

	// 1. Setup Manager and Loop
	manager := object.NewManager()
	loop := object.NewLoop(manager)
	rng := rand.New(rand.NewSource(1))

	// 2. Populate the manager with initial objects
	log.Printf("Populating manager with %d objects...\n", *objectCount)
	for i := 0; i < *objectCount; i++ {
		obj := manager.GenerateObject("Stress")
		AttachRandomComponents(obj, rng.Intn(*maxComponents)+1, rng)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		Components:     generatedComponentCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			// Deactivate a random slice of objects and regenerate the
			// same count, so every tick reclaims and re-uniquifies.
			if *churn > 0 {
				live := manager.Objects()
				for i := 0; i < *churn && len(live) > 0; i++ {
					live[rng.Intn(len(live))].SetActive(false)
				}
			}

			tickStart := time.Now()
			loop.Once()
			tickDuration := time.Since(tickStart)

			for i := 0; i < *churn && manager.Len() < *objectCount; i++ {
				obj := manager.GenerateObject("Stress")
				AttachRandomComponents(obj, rng.Intn(*maxComponents)+1, rng)
			}

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	report.PhaseStats = loop.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	manager.ReleaseAllObjects()

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
