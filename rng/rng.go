package rng

import (
	"math/rand/v2"
	"sync"
)

// goldenRatio64 offsets the second PCG seed so both halves differ even for
// seed 0.
const goldenRatio64 = 0x9e3779b97f4a7c15

// Source is the subset of *rand.Rand the randomized helpers depend on.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source backed by the top-level
// math/rand/v2 functions. It is safe for concurrent use.
func Default() Source { return globalSource{} }

// New returns a *rand.Rand seeded deterministically from seed.
// Two sources created with the same seed produce the same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Pick returns the first non-nil source in srcs, or [Default] if there is none.
// Typed nil pointers (a nil *rand.Rand or *Locked) count as nil.
// It backs the optional trailing source argument of the randomized helpers.
func Pick(srcs ...Source) Source {
	for _, src := range srcs {
		if !isNil(src) {
			return src
		}
	}
	return Default()
}

func isNil(src Source) bool {
	switch s := src.(type) {
	case nil:
		return true
	case *rand.Rand:
		return s == nil
	case *Locked:
		return s == nil
	}
	return false
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// ─────────────────────────────────────────────────────────────────────────────
// Locked
// ─────────────────────────────────────────────────────────────────────────────

// Locked wraps a *rand.Rand so it can be shared between goroutines.
// A *rand.Rand on its own is not safe for concurrent use.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked wraps r. A nil r is replaced by New(0).
func NewLocked(r *rand.Rand) *Locked {
	if r == nil {
		r = New(0)
	}
	return &Locked{r: r}
}

// IntN implements [Source].
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Float64 implements [Source].
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
