package testutil

import (
	"math/rand"
	"sync"
)

// ReferencePrimes computes all primes up to n with a plain, unsegmented
// Sieve of Eratosthenes. Slow and simple; used as ground truth.
func ReferencePrimes(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	composite := make([]bool, n+1)
	for p := uint64(2); p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for j := p * p; j <= n; j += p {
			composite[j] = true
		}
	}

	var primes []uint64
	for v := uint64(2); v <= n; v++ {
		if !composite[v] {
			primes = append(primes, v)
		}
	}
	return primes
}

// IsPrime checks primality by trial division. Independent of any sieve
// code, so it can cross-check sieve output.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	for d := uint64(2); d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// RNG is a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random uint64 in [0,n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}
