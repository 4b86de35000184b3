package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/metrics"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

// Dataset label for runs over cities supplied with the request.
const InlineDataset = "inline"

type SolveRequest struct {
	// Dataset names stored cities. When Cities is non-nil it only labels the run.
	Dataset    string
	Cities     []domain.City
	Iterations int
	Neighbors  int
	Workers    int
	// Seed makes the run reproducible. Nil picks a time-based seed.
	Seed *int64
}

type SolveResult struct {
	Run          *domain.Run
	Cached       bool
	Restarts     int
	Improvements int
}

// Solve loads the cities, runs the hill climber and records the outcome.
//
// Runs with an explicit seed are deterministic, so they are looked up in and
// written to cache (when non-nil). runs may be nil to skip persistence.
// Cache failures are logged and never fail the request.
func Solve(
	ctx context.Context,
	req SolveRequest,
	cityRepo ports.CityRepository,
	runs ports.RunRepository,
	cache ports.ResultCache,
) (_ *SolveResult, err error) {
	defer obs.Time(ctx, "solve")(&err)
	defer func() {
		if err != nil {
			metrics.SolveTotal.WithLabelValues("error").Inc()
		}
	}()

	cities, dataset, err := resolveCities(ctx, req, cityRepo)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	var key string
	if req.Seed != nil && cache != nil {
		key = ResultCacheKey(dataset, cities, req.Iterations, req.Neighbors, seed)
		cached, cerr := cache.Get(ctx, key)
		switch {
		case cerr == nil:
			metrics.SolveTotal.WithLabelValues("cached").Inc()
			return &SolveResult{Run: cached, Cached: true}, nil
		case !errors.Is(cerr, ports.ErrCacheMiss):
			log.Printf("solve: result cache lookup failed dataset=%s err=%v", dataset, cerr)
		}
	}

	start := time.Now()
	res, err := HillClimb(ctx, cities, HillClimbOptions{
		Iterations: req.Iterations,
		Neighbors:  req.Neighbors,
		Workers:    req.Workers,
		RNG:        rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("solve: dataset %q: %w", dataset, err)
	}
	metrics.SolveDuration.Observe(time.Since(start).Seconds())
	metrics.RestartsTotal.Add(float64(res.Restarts))
	metrics.ImprovementsTotal.Add(float64(res.Improvements))
	metrics.BestDistance.WithLabelValues(dataset).Set(res.Distance)

	run := &domain.Run{
		Dataset:    dataset,
		Iterations: req.Iterations,
		Neighbors:  req.Neighbors,
		Seed:       seed,
		Tour:       res.Tour,
		Distance:   res.Distance,
		CreatedAt:  time.Now().UTC(),
	}

	if runs != nil {
		id, err := runs.SaveRun(ctx, run)
		if err != nil {
			return nil, fmt.Errorf("solve: save run: %w", err)
		}
		run.RunID = id
	}

	if key != "" {
		if err := cache.Put(ctx, key, run); err != nil {
			log.Printf("solve: result cache store failed dataset=%s err=%v", dataset, err)
		}
	}

	metrics.SolveTotal.WithLabelValues("computed").Inc()
	log.Printf(
		"solve: dataset=%s cities=%d iterations=%d neighbors=%d seed=%d distance=%.4f improvements=%d",
		dataset, len(cities), req.Iterations, req.Neighbors, seed, res.Distance, res.Improvements,
	)

	return &SolveResult{
		Run:          run,
		Restarts:     res.Restarts,
		Improvements: res.Improvements,
	}, nil
}

func resolveCities(ctx context.Context, req SolveRequest, cityRepo ports.CityRepository) ([]domain.City, string, error) {
	if req.Cities != nil {
		dataset := req.Dataset
		if dataset == "" {
			dataset = InlineDataset
		}
		return req.Cities, dataset, nil
	}

	if req.Dataset == "" {
		return nil, "", errors.New("solve: dataset or cities must be provided")
	}
	if cityRepo == nil {
		return nil, "", errors.New("solve: city repository is nil")
	}

	cities, err := cityRepo.ListCities(ctx, req.Dataset)
	if err != nil {
		return nil, "", fmt.Errorf("solve: load dataset %q: %w", req.Dataset, err)
	}

	return cities, req.Dataset, nil
}

// ResultCacheKey identifies a deterministic run: same dataset label, same
// cities in the same order, same parameters and same seed. Worker count does
// not affect the result and is not part of the key.
func ResultCacheKey(dataset string, cities []domain.City, iterations, neighbors int, seed int64) string {
	h := xxhash.New()

	var buf [8]byte
	for _, c := range cities {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c.X))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c.Y))
		_, _ = h.Write(buf[:])
	}

	params := "|" + strconv.Itoa(len(dataset)) + ":" + dataset + "|" + strconv.Itoa(len(cities)) +
		"|" + strconv.Itoa(iterations) + "|" + strconv.Itoa(neighbors) + "|" + strconv.FormatInt(seed, 10)
	_, _ = h.WriteString(params)

	return strconv.FormatUint(h.Sum64(), 16)
}
