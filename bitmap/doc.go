// Package bitmap provides the primality-marker bitmaps used by the
// segmented sieve.
//
// A bitmap is a fixed-length run of cells indexed by candidate value (base
// sieve) or by offset within a block (range sieve). A set cell means
// "composite". Three physical encodings are available:
//
//   - Packed: one bit per cell (uint64 words)
//   - Bytes: one byte per cell
//   - Roaring: compressed Roaring Bitmap cells
//
// The encodings are semantically interchangeable; they differ only in memory
// footprint and cache behavior, which is exactly the axis the benchmarks
// compare.
package bitmap
