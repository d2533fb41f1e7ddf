package bitmap

// Packed is a one-bit-per-cell bitmap backed by uint64 words.
type Packed struct {
	bits []uint64
	size uint64
}

func newPacked(size uint64) *Packed {
	return &Packed{
		bits: make([]uint64, (size+63)/64),
		size: size,
	}
}

// Set marks the cell at index i.
func (b *Packed) Set(i uint64) {
	if i >= b.size {
		return
	}
	b.bits[i>>6] |= 1 << (i & 63)
}

// Test reports whether the cell at index i is marked.
func (b *Packed) Test(i uint64) bool {
	if i >= b.size {
		return false
	}
	return b.bits[i>>6]&(1<<(i&63)) != 0
}

// Len returns the number of cells.
func (b *Packed) Len() uint64 {
	return b.size
}
