package services

import (
	"math/rand"
	"time"
)

// newTimeSeededRNG returns a non-deterministic generator for production runs.
func newTimeSeededRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// restartSeed mixes a parent seed and a restart index into an independent
// seed (SplitMix64 finalizer). Each restart owns its own *rand.Rand so that
// restarts can run on any goroutine and still reproduce the same sequence.
func restartSeed(parent int64, restart uint64) int64 {
	x := uint64(parent) ^ (restart + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

func restartRNG(parent int64, restart int) *rand.Rand {
	return rand.New(rand.NewSource(restartSeed(parent, uint64(restart))))
}
