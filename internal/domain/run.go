package domain

import "time"

// Represents the final outcome of one optimisation run.
// A Run is produced once the search finishes; intermediate search state
// is never recorded.
type Run struct {
	RunID      int64
	Dataset    string
	Iterations int
	Neighbors  int
	Seed       int64
	Tour       Tour
	Distance   float64
	CreatedAt  time.Time
}
