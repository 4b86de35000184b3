package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-planner-service/internal/domain"
)

func TestGenerateNeighborsArePermutations(t *testing.T) {
	base := domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 2}, {X: 7, Y: 1}, {X: 3, Y: 3}}
	snapshot := base.Clone()

	neighbors := GenerateNeighbors(base, 200, rand.New(rand.NewSource(7)))
	require.Len(t, neighbors, 200)

	for i, n := range neighbors {
		require.Len(t, n, len(base), "neighbor %d", i)
		assert.True(t, n.IsPermutationOf(base), "neighbor %d is not a permutation: %v", i, n)

		diff := 0
		for k := range n {
			if n[k] != base[k] {
				diff++
			}
		}
		// one swap moves either zero or exactly two positions
		assert.Contains(t, []int{0, 2}, diff, "neighbor %d differs in %d positions", i, diff)
	}

	assert.Equal(t, snapshot, base, "base tour was mutated")
}

func TestGenerateNeighborsIndependentStorage(t *testing.T) {
	base := domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	neighbors := GenerateNeighbors(base, 3, rand.New(rand.NewSource(1)))
	require.Len(t, neighbors, 3)

	before1 := neighbors[1].Clone()
	neighbors[0][0] = domain.City{X: 99, Y: 99}

	assert.Equal(t, before1, neighbors[1])
	assert.NotEqual(t, domain.City{X: 99, Y: 99}, base[0])
}

func TestGenerateNeighborsDeterministicForSeed(t *testing.T) {
	base := domain.Tour{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 2, Y: 8}, {X: 6, Y: 6}}

	a := GenerateNeighbors(base, 25, rand.New(rand.NewSource(42)))
	b := GenerateNeighbors(base, 25, rand.New(rand.NewSource(42)))

	assert.Equal(t, a, b)
}

func TestGenerateNeighborsDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, GenerateNeighbors(domain.Tour{}, 5, rng))
	assert.Empty(t, GenerateNeighbors(domain.Tour{{X: 1, Y: 1}}, 0, rng))

	single := GenerateNeighbors(domain.Tour{{X: 1, Y: 1}}, 3, rng)
	require.Len(t, single, 3)
	for _, n := range single {
		assert.Equal(t, domain.Tour{{X: 1, Y: 1}}, n)
	}
}

func TestSelectBestNeighbor(t *testing.T) {
	long := domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	square := domain.Tour{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

	best, d, err := SelectBestNeighbor([]domain.Tour{long, square, long})
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
	assert.Equal(t, square, best)
}

func TestSelectBestNeighborTieKeepsFirst(t *testing.T) {
	first := domain.Tour{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	// same cycle, reversed direction
	second := domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	worse := domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}}

	best, d, err := SelectBestNeighbor([]domain.Tour{worse, first, second})
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
	assert.Equal(t, first, best)
}

func TestSelectBestNeighborEmpty(t *testing.T) {
	_, _, err := SelectBestNeighbor(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}
