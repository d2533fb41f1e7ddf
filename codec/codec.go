// Package codec implements the snapshot encoding for computed prime lists.
//
// A snapshot is a self-describing byte stream: a fixed header names the
// compressor, so any reader can decode a snapshot without out-of-band
// configuration. The payload is the delta-varint encoding of the ordered
// prime list, optionally compressed.
package codec

import "fmt"

// Compressor compresses and decompresses snapshot payloads.
// Implementations must be safe for concurrent use.
type Compressor interface {
	// Name returns the stable identifier stored in the snapshot header.
	Name() string

	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Default is the compressor used when none is specified.
var Default Compressor = Zstd{}

// ByName returns a built-in compressor by its stable name.
//
// This is what makes snapshots self-describing: the header stores the
// compressor name and readers resolve it here.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// ErrUnknownCompressor indicates a snapshot header names a compressor this
// build does not provide.
type ErrUnknownCompressor struct {
	Name string
}

func (e *ErrUnknownCompressor) Error() string {
	return fmt.Sprintf("unknown compressor: %q", e.Name)
}

// None is the identity compressor.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
