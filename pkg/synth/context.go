// Package synth produces synthetic rows. It contains the request-scoped
// random context shared by all samplers, the generic fake-value fillers, and
// the pattern-conditioned synthesizer that generates rows matching a learned
// PatternProfile.
//
// All randomness flows through a Context created per request, so concurrent
// requests never share mutable state and a seeded Context makes generation
// fully deterministic.
package synth

import (
	"math/rand"
	"time"
)

// Context carries the random source for one generation request. It is not
// safe for concurrent use; create one Context per request.
type Context struct {
	rng *rand.Rand
}

// NewContext creates a context seeded from the current time.
func NewContext() *Context {
	return NewSeededContext(time.Now().UnixNano())
}

// NewSeededContext creates a deterministic context from an explicit seed.
// Tests and replayable generation use this.
func NewSeededContext(seed int64) *Context {
	return &Context{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (c *Context) Intn(n int) int {
	return c.rng.Intn(n)
}

// IntBetween returns a uniform int in the closed interval [lo, hi].
func (c *Context) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (c *Context) Float64() float64 {
	return c.rng.Float64()
}

// UniformFloat returns a uniform float in the closed interval [min, max].
func (c *Context) UniformFloat(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + c.rng.Float64()*(max-min)
}

// Gauss returns a normally distributed float with the given mean and
// standard deviation.
func (c *Context) Gauss(mean, stddev float64) float64 {
	return mean + c.rng.NormFloat64()*stddev
}

// Bool returns true with the given probability.
func (c *Context) Bool(probTrue float64) bool {
	return c.rng.Float64() < probTrue
}

// Choice returns a uniformly random element of values.
// Panics on an empty slice; callers guard emptiness.
func Choice[T any](c *Context, values []T) T {
	return values[c.rng.Intn(len(values))]
}

// Weighted pairs a candidate value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice samples one value from an explicit discrete distribution.
// Weights need not sum to 1; non-positive total weight degrades to the first
// candidate.
func WeightedChoice[T any](c *Context, candidates []Weighted[T]) T {
	total := 0.0
	for _, cand := range candidates {
		if cand.Weight > 0 {
			total += cand.Weight
		}
	}
	if total <= 0 {
		return candidates[0].Value
	}

	target := c.rng.Float64() * total
	for _, cand := range candidates {
		if cand.Weight <= 0 {
			continue
		}
		target -= cand.Weight
		if target < 0 {
			return cand.Value
		}
	}
	return candidates[len(candidates)-1].Value
}
