// Package datagen provides the seeded random source and sampling utilities
// shared by all table generators.
package datagen

import (
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// Rand is the single random source threaded through every generator.
// It combines a seeded gofakeit faker (names, contact details) with a seeded
// math/rand generator (distribution sampling). Generators must receive a
// *Rand explicitly and never construct their own.
type Rand struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// New creates a Rand seeded for a reproducible run.
func New(seed int64) *Rand {
	return &Rand{
		faker: gofakeit.New(uint64(seed)),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Int returns a random integer in [min, max].
func (r *Rand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Intn returns a random integer in [0, n).
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Float64 returns a random float in [min, max).
func (r *Rand) Float64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Normal samples a normally distributed value.
func (r *Rand) Normal(mean, std float64) float64 {
	return mean + r.rng.NormFloat64()*std
}

// NormalClamped samples a normal value clamped to [min, max]. Clamping is
// mandatory: downstream consumers assume domain-valid values.
func (r *Rand) NormalClamped(mean, std, min, max float64) float64 {
	return Clamp(r.Normal(mean, std), min, max)
}

// Poisson samples a Poisson-distributed count (Knuth's method).
func (r *Rand) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= r.rng.Float64()
		if p <= l {
			return k - 1
		}
	}
}

// Email produces a deterministic-looking email address for a customer name.
func (r *Rand) Email() string {
	return r.faker.Email()
}

// Phone produces a phone number.
func (r *Rand) Phone() string {
	return r.faker.Phone()
}

// Choose returns a random element from the given slice.
func Choose[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[r.Intn(len(items))]
}

// ChooseWeighted returns a random element based on non-negative weights.
// The weights need not be normalized.
func ChooseWeighted[T any](r *Rand, items []T, weights []float64) T {
	if len(items) == 0 || len(weights) != len(items) {
		var zero T
		return zero
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return items[len(items)-1]
	}

	x := r.Float64(0, total)
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if x < cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Round2 rounds to 2 decimal places (money).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place (percentages, ratings, scores).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round4 rounds to 4 decimal places (rates, shares).
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
