package domain

import "math"

// Immutable planar coordinates of a city.
// Identity is positional; input identifiers are dropped after parsing.
type City struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Return the straight-line Euclidean distance between two cities.
func Distance(a, b City) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
