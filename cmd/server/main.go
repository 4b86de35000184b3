package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/citysource"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/api"
	"tour-planner-service/internal/config"
	"tour-planner-service/internal/platform/db"
	"tour-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	databaseURL := config.Get("DATABASE_URL", "")
	redisAddr := config.Get("REDIS_ADDR", "")
	seedPath := config.Get("SEED_PATH", "")
	dataset := config.Get("DATASET", "att48")

	defaultIterations, err := config.GetInt("DEFAULT_ITERATIONS", 100)
	if err != nil {
		log.Fatal(err)
	}
	defaultNeighbors, err := config.GetInt("DEFAULT_NEIGHBORS", 100)
	if err != nil {
		log.Fatal(err)
	}

	store, err := openStore(databaseURL, dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.db.Close()

	// Optional dataset import on startup for local runs.
	if seedPath != "" {
		if err := importDataset(store, seedPath, dataset); err != nil {
			log.Fatal(err)
		}
		log.Printf("Imported dataset=%s from %s", dataset, seedPath)
	}

	deps := api.RouterDeps{
		Cities:            store.cities,
		Runs:              store.runs,
		DefaultIterations: defaultIterations,
		DefaultNeighbors:  defaultNeighbors,
	}

	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		deps.Cache = cache.NewRedisResultCache(client, 24*time.Hour)
		log.Printf("Result cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(deps)

	// Write timeout leaves room for long hill-climbing runs.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

type store struct {
	db       *sql.DB
	postgres bool
	cities   ports.CityRepository
	runs     ports.RunRepository
}

// openStore prefers Postgres when a DATABASE_URL is configured, SQLite otherwise.
func openStore(databaseURL, dbPath string) (*store, error) {
	if databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &store{
			db:       conn,
			postgres: true,
			cities:   repositories.NewSQLCityRepository(conn),
			runs:     repositories.NewSQLRunRepository(conn),
		}, nil
	}

	conn, err := db.OpenSqlite(dbPath)
	if err != nil {
		return nil, err
	}
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &store{
		db:     conn,
		cities: repositories.NewSqliteCityRepository(conn),
		runs:   repositories.NewSqliteRunRepository(conn),
	}, nil
}

func importDataset(s *store, path, dataset string) error {
	cities, err := citysource.ReadCitiesFile(path)
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	ctx := context.Background()
	if s.postgres {
		err = repositories.SeedPostgresCities(ctx, s.db, dataset, cities)
	} else {
		err = repositories.SeedCities(ctx, s.db, dataset, cities)
	}
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	return nil
}
