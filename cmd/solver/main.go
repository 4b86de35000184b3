package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tour-planner-service/internal/adapters/citysource"
	"tour-planner-service/internal/config"
	"tour-planner-service/internal/services"
)

// main runs one hill-climbing optimisation over a city file and prints the
// best tour and its distance.
func main() {
	config.Load()

	inputPath := config.Get("INPUT_PATH", "data/att48.tsp.txt")

	iterations, err := config.GetInt("ITERATIONS", 1000)
	if err != nil {
		log.Fatal(err)
	}
	neighbors, err := config.GetInt("NEIGHBORS", 1000)
	if err != nil {
		log.Fatal(err)
	}
	workers, err := config.GetInt("WORKERS", 1)
	if err != nil {
		log.Fatal(err)
	}
	seedCfg, err := config.GetInt64Ptr("SEED")
	if err != nil {
		log.Fatal(err)
	}

	seed := time.Now().UnixNano()
	if seedCfg != nil {
		seed = *seedCfg
	}

	cities, err := citysource.ReadCitiesFile(inputPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded cities=%d from %s", len(cities), inputPath)

	start := time.Now()
	res, err := services.HillClimb(context.Background(), cities, services.HillClimbOptions{
		Iterations: iterations,
		Neighbors:  neighbors,
		Workers:    workers,
		RNG:        rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf(
		"Search done iterations=%d neighbors=%d workers=%d seed=%d improvements=%d dur=%dms",
		iterations, neighbors, workers, seed, res.Improvements, time.Since(start).Milliseconds(),
	)

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stdout, "Tour (%d cities):\n", len(res.Tour))
	for i, c := range res.Tour {
		p.Fprintf(os.Stdout, "  %3d  (%.2f, %.2f)\n", i+1, c.X, c.Y)
	}
	p.Fprintf(os.Stdout, "Distance: %.4f\n", res.Distance)
}
