package services

import (
	"errors"
	"math/rand"

	"tour-planner-service/internal/domain"
)

var ErrNoCandidates = errors.New("select neighbor: candidate list is empty")

// GenerateNeighbors builds n candidate tours from base.
//
// Every candidate is an independent copy of base with two positions, drawn
// uniformly with replacement, exchanged. Drawing the same position twice
// yields a copy equal to base. The base tour is never mutated.
func GenerateNeighbors(base domain.Tour, n int, rng *rand.Rand) []domain.Tour {
	if n < 1 || len(base) == 0 {
		return []domain.Tour{}
	}

	size := len(base)
	neighbors := make([]domain.Tour, 0, n)
	for k := 0; k < n; k++ {
		neighbor := base.Clone()
		i := rng.Intn(size)
		j := rng.Intn(size)
		neighbor[i], neighbor[j] = neighbor[j], neighbor[i]
		neighbors = append(neighbors, neighbor)
	}

	return neighbors
}

// SelectBestNeighbor returns the candidate with the shortest cycle and its
// distance. Ties keep the earliest candidate.
func SelectBestNeighbor(candidates []domain.Tour) (domain.Tour, float64, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrNoCandidates
	}

	best := candidates[0]
	bestDistance := best.Distance()

	for _, c := range candidates[1:] {
		d := c.Distance()
		if d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, bestDistance, nil
}
