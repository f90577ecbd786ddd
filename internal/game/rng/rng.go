// Package rng provides the seeded random source used for deterministic
// deals. Shuffles performed with the same seed string always produce the
// same permutation, which replay and the solver rely on.
package rng

import (
	"hash/fnv"
	"time"
)

// SeededRandom is a small deterministic PRNG (SplitMix64 step) whose
// stream is a pure function of the seed string.
type SeededRandom struct {
	state uint64
}

// NewSeededRandom derives the initial state from the seed string.
func NewSeededRandom(seed string) *SeededRandom {
	h := fnv.New64a()
	h.Write([]byte(seed))
	state := h.Sum64()
	if state == 0 {
		state = 0x9e3779b97f4a7c15
	}
	return &SeededRandom{state: state}
}

// NewTimeRandom returns a non-deterministic source for unseeded shuffles.
func NewTimeRandom() *SeededRandom {
	return &SeededRandom{state: uint64(time.Now().UnixNano()) | 1}
}

// Next returns the next raw 64-bit value in the stream.
func (r *SeededRandom) Next() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs a Fisher-Yates shuffle over n elements using swap.
func Shuffle(n int, swap func(i, j int), r *SeededRandom) {
	if r == nil {
		r = NewTimeRandom()
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
