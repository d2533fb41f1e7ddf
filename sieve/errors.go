package sieve

import "fmt"

// ErrBoundsOverflow indicates that computing a block's candidate range would
// overflow uint64. Surfaced before any sieving work is done for the block.
type ErrBoundsOverflow struct {
	Block     uint64
	BlockSize uint64
}

func (e *ErrBoundsOverflow) Error() string {
	return fmt.Sprintf("block bounds overflow: block=%d blockSize=%d", e.Block, e.BlockSize)
}
