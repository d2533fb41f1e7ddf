package bitmap

import (
	"fmt"
	"math"
)

// Bitmap is a fixed-length sequence of composite markers.
//
// Implementations are NOT safe for concurrent mutation. The sieve never
// shares a bitmap between goroutines before it is fully written, so no
// locking is required.
type Bitmap interface {
	// Set marks the cell at index i as composite. Out-of-range indices are
	// ignored.
	Set(i uint64)

	// Test reports whether the cell at index i is marked composite.
	Test(i uint64) bool

	// Len returns the number of cells.
	Len() uint64
}

// Kind selects the physical cell encoding.
type Kind int

const (
	// KindPacked stores one bit per cell. Default.
	KindPacked Kind = iota
	// KindBytes stores one byte per cell.
	KindBytes
	// KindRoaring stores cells in a compressed Roaring Bitmap.
	KindRoaring
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPacked:
		return "packed"
	case KindBytes:
		return "bytes"
	case KindRoaring:
		return "roaring"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrInvalidKind indicates an unrecognized cell encoding.
type ErrInvalidKind struct {
	Kind Kind
}

func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid bitmap kind: %d", int(e.Kind))
}

// ErrTooLarge indicates a requested bitmap exceeds what the encoding can
// index.
type ErrTooLarge struct {
	Kind Kind
	Size uint64
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("bitmap size %d exceeds %s encoding limit", e.Size, e.Kind)
}

// New allocates a bitmap of size cells with all cells clear.
func New(kind Kind, size uint64) (Bitmap, error) {
	switch kind {
	case KindPacked:
		if size > math.MaxUint64-63 {
			return nil, &ErrTooLarge{Kind: kind, Size: size}
		}
		return newPacked(size), nil
	case KindBytes:
		return newBytes(size), nil
	case KindRoaring:
		if size > math.MaxUint32 {
			return nil, &ErrTooLarge{Kind: kind, Size: size}
		}
		return newRoaring(size), nil
	default:
		return nil, &ErrInvalidKind{Kind: kind}
	}
}

// SizeBytes estimates the heap footprint of a bitmap of size cells. Used for
// memory accounting before allocation; the roaring estimate is a worst-case
// upper bound since its actual size depends on fill pattern.
func SizeBytes(kind Kind, size uint64) uint64 {
	switch kind {
	case KindPacked:
		return (size + 63) / 64 * 8
	case KindBytes:
		return size
	case KindRoaring:
		// Worst case: one container per 65536 cells, 8KB each.
		return (size+65535)/65536*8192 + 64
	default:
		return size
	}
}
