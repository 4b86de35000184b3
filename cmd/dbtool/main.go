package main

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"tour-planner-service/internal/adapters/citysource"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/config"
	"tour-planner-service/internal/platform/db"
)

func main() {
	config.Load()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/att48.tsp.txt")
	dataset := config.Get("DATASET", "att48")
	initAndSeed(db, seedPath, dataset)
}

func initAndSeed(db *sql.DB, seedPath, dataset string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	cities, err := citysource.ReadCitiesFile(seedPath)
	if err != nil {
		log.Fatalf("reading cities failed: %v", err)
	}

	log.Printf("Seeding dataset=%s cities=%d...", dataset, len(cities))
	if err := repositories.SeedPostgresCities(context.Background(), db, dataset, cities); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
