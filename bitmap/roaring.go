package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Roaring is a compressed bitmap backed by a 32-bit Roaring Bitmap. It wraps
// the official roaring implementation.
//
// Cell indices are limited to 32 bits, which is always sufficient here: range
// bitmaps are indexed by block-local offset and base bitmaps by values up to
// sqrt(n).
type Roaring struct {
	rb   *roaring.Bitmap
	size uint64
}

func newRoaring(size uint64) *Roaring {
	return &Roaring{
		rb:   roaring.New(),
		size: size,
	}
}

// Set marks the cell at index i.
func (b *Roaring) Set(i uint64) {
	if i >= b.size {
		return
	}
	b.rb.Add(uint32(i))
}

// Test reports whether the cell at index i is marked.
func (b *Roaring) Test(i uint64) bool {
	if i >= b.size {
		return false
	}
	return b.rb.Contains(uint32(i))
}

// Len returns the number of cells.
func (b *Roaring) Len() uint64 {
	return b.size
}

// Cardinality returns the number of marked cells.
func (b *Roaring) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// SizeInBytes returns the actual compressed size of the bitmap.
func (b *Roaring) SizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}
