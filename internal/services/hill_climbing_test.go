package services

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-planner-service/internal/domain"
)

func randomCities(n int, seed int64) []domain.City {
	rng := rand.New(rand.NewSource(seed))
	cities := make([]domain.City, n)
	for i := range cities {
		cities[i] = domain.City{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return cities
}

func TestHillClimbUnitSquare(t *testing.T) {
	// bow-tie order, 2 + 2*sqrt(2)
	cities := []domain.City{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}

	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 20,
		Neighbors:  50,
		RNG:        rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Distance)
	assert.Equal(t, 4.0, res.Tour.Distance())
	assert.True(t, res.Tour.IsPermutationOf(cities))
	assert.Equal(t, 20, res.Restarts)
}

func TestHillClimbSingleCity(t *testing.T) {
	cities := []domain.City{{X: 3, Y: 7}}

	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 5,
		Neighbors:  5,
		RNG:        rand.New(rand.NewSource(1)),
		Hook: func(int, int, float64) {
			t.Fatal("no climb should run for a single city")
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, domain.Tour{{X: 3, Y: 7}}, res.Tour)
	assert.Zero(t, res.Restarts)
}

func TestHillClimbEmpty(t *testing.T) {
	res, err := HillClimb(context.Background(), nil, HillClimbOptions{Iterations: 1, Neighbors: 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Distance)
	assert.NotNil(t, res.Tour)
	assert.Empty(t, res.Tour)
}

func TestHillClimbTwoCities(t *testing.T) {
	cities := []domain.City{{X: 0, Y: 0}, {X: 3, Y: 4}}

	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 10,
		Neighbors:  4,
		RNG:        rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, res.Distance)
	// no swap can improve a 2-city cycle, so the baseline stays best
	assert.Equal(t, domain.Tour(cities), res.Tour)
	assert.Zero(t, res.Improvements)
}

func TestHillClimbInnerLoopNonIncreasing(t *testing.T) {
	cities := randomCities(15, 11)

	trace := map[int][]float64{}
	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 8,
		Neighbors:  30,
		RNG:        rand.New(rand.NewSource(5)),
		Hook: func(restart, step int, d float64) {
			require.Equal(t, len(trace[restart]), step)
			trace[restart] = append(trace[restart], d)
		},
	})
	require.NoError(t, err)
	require.Len(t, trace, 8)

	steps := 0
	for r, ds := range trace {
		for i := 1; i < len(ds); i++ {
			assert.Less(t, ds[i], ds[i-1], "restart %d step %d", r, i)
		}
		// the best result can be no worse than any restart's final tour
		assert.LessOrEqual(t, res.Distance, ds[len(ds)-1])
		steps += len(ds) - 1
	}
	assert.Equal(t, steps, res.Improvements)
}

func TestHillClimbNoWorseThanInputOrder(t *testing.T) {
	cities := randomCities(20, 21)
	baseline := domain.Tour(cities).Distance()

	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 3,
		Neighbors:  2,
		RNG:        rand.New(rand.NewSource(9)),
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Distance, baseline)
	assert.InDelta(t, res.Tour.Distance(), res.Distance, 1e-9)
	assert.True(t, res.Tour.IsPermutationOf(cities))
}

func TestHillClimbDoesNotMutateInput(t *testing.T) {
	cities := randomCities(10, 2)
	snapshot := append([]domain.City(nil), cities...)

	res, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 4,
		Neighbors:  10,
		RNG:        rand.New(rand.NewSource(4)),
	})
	require.NoError(t, err)

	assert.Equal(t, snapshot, cities)

	// the returned tour does not share storage with the input
	res.Tour[0] = domain.City{X: -1, Y: -1}
	assert.Equal(t, snapshot, cities)
}

func TestHillClimbDeterministicForSeed(t *testing.T) {
	cities := randomCities(12, 8)
	opts := func() HillClimbOptions {
		return HillClimbOptions{Iterations: 6, Neighbors: 20, RNG: rand.New(rand.NewSource(77))}
	}

	a, err := HillClimb(context.Background(), cities, opts())
	require.NoError(t, err)
	b, err := HillClimb(context.Background(), cities, opts())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHillClimbParallelMatchesSequential(t *testing.T) {
	cities := randomCities(14, 31)

	seq, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 16,
		Neighbors:  25,
		RNG:        rand.New(rand.NewSource(99)),
	})
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	par, err := HillClimb(context.Background(), cities, HillClimbOptions{
		Iterations: 16,
		Neighbors:  25,
		Workers:    4,
		RNG:        rand.New(rand.NewSource(99)),
		Hook: func(int, int, float64) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, seq.Improvements+16, calls)
}

func TestHillClimbInvalidOptions(t *testing.T) {
	cities := randomCities(4, 1)

	_, err := HillClimb(context.Background(), cities, HillClimbOptions{Iterations: 0, Neighbors: 1})
	assert.ErrorIs(t, err, ErrInvalidIterations)

	_, err = HillClimb(context.Background(), cities, HillClimbOptions{Iterations: 1, Neighbors: 0})
	assert.ErrorIs(t, err, ErrInvalidNeighbors)
}

func TestHillClimbCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 3} {
		_, err := HillClimb(ctx, randomCities(6, 1), HillClimbOptions{
			Iterations: 10,
			Neighbors:  5,
			Workers:    workers,
			RNG:        rand.New(rand.NewSource(1)),
		})
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func TestRestartSeedStreamsDiffer(t *testing.T) {
	seen := map[int64]int{}
	for r := 0; r < 64; r++ {
		s := restartSeed(12345, uint64(r))
		_, dup := seen[s]
		require.False(t, dup, "restart %d reuses seed of restart %d", r, seen[s])
		seen[s] = r
	}
}
