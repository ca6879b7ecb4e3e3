package core

import "math/rand/v2"

// Source yields uniform samples in [0, 1). *rand.Rand satisfies it, as do
// RNG and SequenceSource.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform sample in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Between returns a uniform sample in [lo, hi). Inverted bounds are swapped.
func Between(src Source, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniform index in [0, n). It returns 0 when n <= 0.
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// SequenceSource replays a fixed list of samples, cycling when exhausted.
// Tests use it to pin generated values exactly.
type SequenceSource struct {
	Values []float64
	next   int
}

// NewSequenceSource returns a SequenceSource over the given samples.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Float64 returns the next sample. An empty sequence always yields 0.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Drawn reports how many samples have been consumed.
func (s *SequenceSource) Drawn() int { return s.next }
