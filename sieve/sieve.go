package sieve

import (
	"math"

	"github.com/hupe1980/sievego/bitmap"
)

// CeilSqrt returns ceil(sqrt(n)) computed exactly for the full uint64 range.
// math.Sqrt alone loses precision above 2^52, so the float result is used
// only as a starting point and fixed up with integer arithmetic.
func CeilSqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	s := uint64(math.Sqrt(float64(n)))

	// Fix up to floor(sqrt(n)). Division avoids overflow of s*s near 2^32.
	for s > 0 && s > n/s {
		s--
	}
	for s+1 <= n/(s+1) {
		s++
	}

	if s*s == n {
		return s
	}
	return s + 1
}

// BasePrimes computes the ordered set of primes up to ceil(sqrt(n)) using a
// classic in-place sieve. These are the only factors needed to sieve any
// block above the base region.
//
// n < 2 yields an empty set.
func BasePrimes(n uint64, kind bitmap.Kind) ([]uint64, error) {
	m := CeilSqrt(n)
	if m < 2 {
		return nil, nil
	}

	bm, err := bitmap.New(kind, m+1)
	if err != nil {
		return nil, err
	}

	for p := uint64(2); p*p <= m; p++ {
		if bm.Test(p) {
			continue
		}
		for j := p * p; j <= m; j += p {
			bm.Set(j)
		}
	}

	var primes []uint64
	for i := uint64(2); i <= m; i++ {
		if !bm.Test(i) {
			primes = append(primes, i)
		}
	}
	return primes, nil
}

// BlockBounds computes the half-open candidate range [lo, hi) of the given
// block. Block 0 starts directly above the base-sieve region; the final
// block is clamped to n+1 so the union of all blocks with [2, sqrtN] is
// exactly [2, n].
//
// A block that starts past n is empty (hi == lo); downstream stages treat it
// as a no-op. Arithmetic that would overflow uint64 is rejected with
// ErrBoundsOverflow.
func BlockBounds(block, blockSize, sqrtN, n uint64) (lo, hi uint64, err error) {
	if n == math.MaxUint64 {
		// hi is exclusive, so the last block needs n+1.
		return 0, 0, &ErrBoundsOverflow{Block: block, BlockSize: blockSize}
	}

	offset := block * blockSize
	if block != 0 && offset/block != blockSize {
		return 0, 0, &ErrBoundsOverflow{Block: block, BlockSize: blockSize}
	}

	lo = sqrtN + 1 + offset
	if lo < offset {
		return 0, 0, &ErrBoundsOverflow{Block: block, BlockSize: blockSize}
	}

	if lo > n {
		return lo, lo, nil
	}

	hi = lo + blockSize
	if hi < lo || hi > n+1 {
		hi = n + 1
	}
	return lo, hi, nil
}

// SieveRange marks every composite in [lo, hi) using the base primes,
// returning a block-local bitmap whose index k corresponds to the absolute
// value lo+k.
//
// The base set must contain every prime up to sqrt(hi-1); given that, a
// composite in the range always has a factor in the set, so no full-range
// trial marking is needed.
func SieveRange(lo, hi uint64, basePrimes []uint64, kind bitmap.Kind) (bitmap.Bitmap, error) {
	var cells uint64
	if hi > lo {
		cells = hi - lo
	}

	bm, err := bitmap.New(kind, cells)
	if err != nil {
		return nil, err
	}
	if cells == 0 {
		return bm, nil
	}

	for _, p := range basePrimes {
		// Smallest multiple of p that is >= lo.
		var start uint64
		if rem := lo % p; rem == 0 {
			start = lo
		} else {
			d := p - rem
			if lo > math.MaxUint64-d {
				continue
			}
			start = lo + d
		}
		if start >= hi {
			continue
		}

		for k := start - lo; k < cells; k += p {
			bm.Set(k)
		}
	}

	return bm, nil
}

// ExtractPrimes scans a range bitmap and returns the primes it represents,
// in increasing order, with absolute values reconstructed from lo.
func ExtractPrimes(bm bitmap.Bitmap, lo uint64) []uint64 {
	cells := bm.Len()
	if cells == 0 {
		return nil
	}

	primes := make([]uint64, 0, cells/4)
	for k := uint64(0); k < cells; k++ {
		if bm.Test(k) {
			continue
		}
		if v := lo + k; v >= 2 {
			primes = append(primes, v)
		}
	}
	return primes
}
