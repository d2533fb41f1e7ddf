package bitmap

// Bytes is a byte-per-cell bitmap. It trades 8x the memory of Packed for
// branch-free single-byte stores, which can win on small blocks that stay in
// cache.
type Bytes struct {
	cells []byte
}

func newBytes(size uint64) *Bytes {
	return &Bytes{cells: make([]byte, size)}
}

// Set marks the cell at index i.
func (b *Bytes) Set(i uint64) {
	if i >= uint64(len(b.cells)) {
		return
	}
	b.cells[i] = 1
}

// Test reports whether the cell at index i is marked.
func (b *Bytes) Test(i uint64) bool {
	if i >= uint64(len(b.cells)) {
		return false
	}
	return b.cells[i] != 0
}

// Len returns the number of cells.
func (b *Bytes) Len() uint64 {
	return uint64(len(b.cells))
}
