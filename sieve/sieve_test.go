package sieve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego/bitmap"
)

func isPrime(v uint64) bool {
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

func TestCeilSqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{99, 10},
		{100, 10},
		{101, 11},
		{1 << 40, 1 << 20},
		{(1 << 40) + 1, (1 << 20) + 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilSqrt(tt.n), "CeilSqrt(%d)", tt.n)
	}
}

func TestBasePrimes(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{4, []uint64{2}},
		{5, []uint64{2, 3}},
		{100, []uint64{2, 3, 5, 7}},
		{120, []uint64{2, 3, 5, 7, 11}},
	}

	for _, tt := range tests {
		got, err := BasePrimes(tt.n, bitmap.KindPacked)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "BasePrimes(%d)", tt.n)
	}
}

func TestBasePrimes_KindsAgree(t *testing.T) {
	for _, kind := range []bitmap.Kind{bitmap.KindPacked, bitmap.KindBytes, bitmap.KindRoaring} {
		got, err := BasePrimes(10000, kind)
		require.NoError(t, err)

		want, err := BasePrimes(10000, bitmap.KindPacked)
		require.NoError(t, err)

		assert.Equal(t, want, got, "kind %s", kind)
	}
}

func TestBlockBounds(t *testing.T) {
	// n=100 -> sqrtN=10, blocks cover [11, 101).
	tests := []struct {
		block    uint64
		wantLo   uint64
		wantHi   uint64
	}{
		{0, 11, 21},
		{1, 21, 31},
		{8, 91, 101},
		{9, 101, 101}, // past n: empty
	}

	for _, tt := range tests {
		lo, hi, err := BlockBounds(tt.block, 10, 10, 100)
		require.NoError(t, err)
		assert.Equal(t, tt.wantLo, lo, "block %d lo", tt.block)
		assert.Equal(t, tt.wantHi, hi, "block %d hi", tt.block)
	}
}

func TestBlockBounds_ClampsLastBlock(t *testing.T) {
	// n=25, sqrtN=5, blockSize=7: block 2 covers [20, 26) only.
	lo, hi, err := BlockBounds(2, 7, 5, 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), lo)
	assert.Equal(t, uint64(26), hi)
}

func TestBlockBounds_Overflow(t *testing.T) {
	_, _, err := BlockBounds(math.MaxUint64/2, 4, 10, math.MaxUint64-1)
	var overflow *ErrBoundsOverflow
	require.ErrorAs(t, err, &overflow)

	_, _, err = BlockBounds(0, 8, 2, math.MaxUint64)
	require.ErrorAs(t, err, &overflow)
}

func TestSieveRange(t *testing.T) {
	base, err := BasePrimes(100, bitmap.KindPacked)
	require.NoError(t, err)

	bm, err := SieveRange(11, 31, base, bitmap.KindPacked)
	require.NoError(t, err)

	for k := uint64(0); k < bm.Len(); k++ {
		v := 11 + k
		assert.Equal(t, !isPrime(v), bm.Test(k), "value %d", v)
	}
}

func TestSieveRange_EmptyRange(t *testing.T) {
	bm, err := SieveRange(50, 50, []uint64{2, 3, 5, 7}, bitmap.KindPacked)
	require.NoError(t, err)
	assert.Zero(t, bm.Len())

	primes := ExtractPrimes(bm, 50)
	assert.Empty(t, primes)
}

func TestSieveRange_StartPastRange(t *testing.T) {
	// 7's first multiple >= 11 is 14, outside [11, 13): no cell marked by 7.
	bm, err := SieveRange(11, 13, []uint64{7}, bitmap.KindPacked)
	require.NoError(t, err)
	assert.False(t, bm.Test(0))
	assert.False(t, bm.Test(1))
}

func TestExtractPrimes(t *testing.T) {
	base, err := BasePrimes(100, bitmap.KindPacked)
	require.NoError(t, err)

	bm, err := SieveRange(11, 31, base, bitmap.KindPacked)
	require.NoError(t, err)

	got := ExtractPrimes(bm, 11)
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, got)
}

func TestSieveRange_TrialDivisionCrossCheck(t *testing.T) {
	const n = 10000
	sqrtN := CeilSqrt(n)

	base, err := BasePrimes(n, bitmap.KindPacked)
	require.NoError(t, err)

	for _, kind := range []bitmap.Kind{bitmap.KindPacked, bitmap.KindBytes, bitmap.KindRoaring} {
		for block := uint64(0); block < 8; block++ {
			lo, hi, err := BlockBounds(block, 1000, sqrtN, n)
			require.NoError(t, err)

			bm, err := SieveRange(lo, hi, base, kind)
			require.NoError(t, err)

			for _, p := range ExtractPrimes(bm, lo) {
				assert.True(t, isPrime(p), "kind %s reported composite %d as prime", kind, p)
			}

			primes := ExtractPrimes(bm, lo)
			set := make(map[uint64]bool, len(primes))
			for _, p := range primes {
				set[p] = true
			}
			for v := lo; v < hi; v++ {
				if isPrime(v) && !set[v] {
					t.Fatalf("kind %s dropped prime %d in [%d, %d)", kind, v, lo, hi)
				}
			}
		}
	}
}
