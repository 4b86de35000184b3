package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"tour-planner-service/internal/domain"
)

var (
	ErrInvalidIterations = errors.New("hill climb: iterations must be positive")
	ErrInvalidNeighbors  = errors.New("hill climb: neighbors must be positive")
)

// ClimbHook observes every accepted state of a restart.
// Step 0 is the shuffled starting tour. When Workers > 1 the hook is called
// from several goroutines and must be safe for concurrent use.
type ClimbHook func(restart, step int, distance float64)

// HillClimbOptions configures one optimisation run.
type HillClimbOptions struct {
	// Number of random restarts. Must be >= 1.
	Iterations int
	// Neighbors generated per climb step. Must be >= 1.
	Neighbors int
	// Restarts run concurrently when Workers > 1. The result does not
	// depend on this value.
	Workers int
	// RNG seeds the run. If nil, a time-based RNG is used.
	RNG *rand.Rand
	// Hook is optional.
	Hook ClimbHook
}

// HillClimbResult is the best tour found across all restarts.
type HillClimbResult struct {
	Tour         domain.Tour
	Distance     float64
	Restarts     int
	Improvements int
}

type restartResult struct {
	tour         domain.Tour
	distance     float64
	improvements int
}

// HillClimb approximates a shortest closed tour through cities using
// random-restart hill climbing over the pairwise-swap neighbourhood.
//
// The unshuffled input is the baseline best. Each restart shuffles the cities
// and repeatedly moves to the best of opts.Neighbors sampled swaps while that
// move is strictly shorter. A restart replaces the best only when strictly
// shorter, folded in restart order.
//
// Inputs with fewer than two cities are returned as-is with distance 0.
// The input slice is never modified.
func HillClimb(ctx context.Context, cities []domain.City, opts HillClimbOptions) (*HillClimbResult, error) {
	if opts.Iterations < 1 {
		return nil, ErrInvalidIterations
	}
	if opts.Neighbors < 1 {
		return nil, ErrInvalidNeighbors
	}

	input := domain.Tour(cities).Clone()
	if input == nil {
		input = domain.Tour{}
	}

	best := input.Clone()
	bestDistance := best.Distance()

	// No swap can change a tour of fewer than two cities.
	if len(input) < 2 {
		return &HillClimbResult{Tour: best, Distance: bestDistance}, nil
	}

	rng := opts.RNG
	if rng == nil {
		rng = newTimeSeededRNG()
	}
	parent := rng.Int63()

	results, err := runRestarts(ctx, input, parent, opts)
	if err != nil {
		return nil, err
	}

	improvements := 0
	for _, r := range results {
		improvements += r.improvements
		if r.distance < bestDistance {
			best = r.tour
			bestDistance = r.distance
		}
	}

	if !best.IsPermutationOf(input) {
		panic("hill climb: best tour is not a permutation of the input cities")
	}

	return &HillClimbResult{
		Tour:         best,
		Distance:     bestDistance,
		Restarts:     len(results),
		Improvements: improvements,
	}, nil
}

func runRestarts(ctx context.Context, input domain.Tour, parent int64, opts HillClimbOptions) ([]restartResult, error) {
	results := make([]restartResult, opts.Iterations)

	if opts.Workers <= 1 {
		for r := 0; r < opts.Iterations; r++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("hill climb: restart %d: %w", r, err)
			}
			results[r] = climb(input, r, restartRNG(parent, r), opts)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	// Each restart writes only its own slot; the caller folds them after Wait.
	for r := 0; r < opts.Iterations; r++ {
		r := r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("hill climb: restart %d: %w", r, err)
			}
			results[r] = climb(input, r, restartRNG(parent, r), opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// climb runs one restart from a fresh shuffle until no sampled neighbour is
// strictly shorter than the current tour.
func climb(input domain.Tour, restart int, rng *rand.Rand, opts HillClimbOptions) restartResult {
	current := input.Clone()
	rng.Shuffle(len(current), func(i, j int) {
		current[i], current[j] = current[j], current[i]
	})
	currentDistance := current.Distance()

	if opts.Hook != nil {
		opts.Hook(restart, 0, currentDistance)
	}

	steps := 0
	for {
		neighbors := GenerateNeighbors(current, opts.Neighbors, rng)
		neighbor, neighborDistance, err := SelectBestNeighbor(neighbors)
		if err != nil || !(neighborDistance < currentDistance) {
			break
		}

		// The batch is dropped here, so the selected neighbour has no other owner.
		current = neighbor
		currentDistance = neighborDistance
		steps++

		if opts.Hook != nil {
			opts.Hook(restart, steps, currentDistance)
		}
	}

	return restartResult{tour: current, distance: currentDistance, improvements: steps}
}
