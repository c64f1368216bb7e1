// pkg/rng/source.go
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream every randomized draw in the simulation
// pulls from. Implementations need not be safe for concurrent use.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed Source. A zero seed is replaced by the
// current wall-clock time.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform returns a value drawn uniformly from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// UniformInt returns an integer drawn uniformly from [lo, hi].
func UniformInt(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// Sign returns -1 or +1 with equal probability.
func Sign(src Source) float64 {
	if src.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Sequence replays a fixed list of values and wraps around when
// exhausted. It exists for tests that need exact draws.
type Sequence struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float, or 0 if none were given.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// IntN returns the next scripted int reduced modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return ((v % n) + n) % n
}
