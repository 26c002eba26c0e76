// Package chance provides the random source shared by the game engine.
package chance

import "math/rand/v2"

// Source is the single random source consulted for event rolls,
// dialogue selection and stress increments.
type Source interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

type defaultSource struct{}

// New returns a Source backed by the global math/rand/v2 generator.
func New() Source {
	return defaultSource{}
}

func (defaultSource) Intn(n int) int   { return rand.IntN(n) }
func (defaultSource) Float64() float64 { return rand.Float64() }

// Seeded returns a reproducible Source.
func Seeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) Intn(n int) int   { return s.r.IntN(n) }
func (s *seededSource) Float64() float64 { return s.r.Float64() }

// Roll reports whether an event with the given probability fires.
func Roll(src Source, probability float64) bool {
	return src.Float64() < probability
}

// Pick returns a uniformly chosen element of items, or the zero value
// and false when items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}

// Between returns a uniform integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
