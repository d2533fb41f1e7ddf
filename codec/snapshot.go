package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Snapshot layout:
//
//	magic    [4]byte  "SVP1"
//	nameLen  uint8
//	name     [nameLen]byte   compressor name, resolved via ByName
//	paylen   uvarint         compressed payload length
//	payload  [paylen]byte
//
// The uncompressed payload is:
//
//	count    uvarint
//	first    uvarint         first prime
//	deltas   uvarint...      count-1 gaps between consecutive primes
//
// Delta-varint keeps even uncompressed snapshots small: prime gaps fit in
// one or two bytes far beyond any practical n.
var snapshotMagic = [4]byte{'S', 'V', 'P', '1'}

// ErrBadSnapshot indicates the input is not a prime snapshot or is
// truncated/corrupt.
var ErrBadSnapshot = errors.New("malformed prime snapshot")

// EncodeSnapshot writes the ordered prime list to w using the given
// compressor. A nil compressor selects Default.
func EncodeSnapshot(w io.Writer, primes []uint64, c Compressor) error {
	if c == nil {
		c = Default
	}

	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("compressor name too long: %q", name)
	}

	payload := encodePrimes(primes)
	compressed, err := c.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress snapshot payload: %w", err)
	}

	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(len(name))}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(name)); err != nil {
		return err
	}

	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(compressed)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}

	_, err = w.Write(compressed)
	return err
}

// DecodeSnapshot reads a snapshot back into an ordered prime list. The
// compressor is resolved from the header.
func DecodeSnapshot(r io.Reader) ([]uint64, error) {
	br := asByteReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadSnapshot)
	}

	nameLen, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(br, nameBuf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	c, ok := ByName(string(nameBuf))
	if !ok {
		return nil, &ErrUnknownCompressor{Name: string(nameBuf)}
	}

	payLen, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	compressed := make([]byte, payLen)
	if _, err := io.ReadFull(br, compressed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	payload, err := c.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	return decodePrimes(payload)
}

func encodePrimes(primes []uint64) []byte {
	buf := make([]byte, 0, len(primes)*2+binary.MaxVarintLen64)
	var tmp [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(tmp[:], uint64(len(primes)))
	buf = append(buf, tmp[:n]...)

	prev := uint64(0)
	for i, p := range primes {
		v := p
		if i > 0 {
			v = p - prev
		}
		n = binary.PutUvarint(tmp[:], v)
		buf = append(buf, tmp[:n]...)
		prev = p
	}
	return buf
}

func decodePrimes(payload []byte) ([]uint64, error) {
	pos := 0
	next := func() (uint64, error) {
		v, n := binary.Uvarint(payload[pos:])
		if n <= 0 {
			return 0, fmt.Errorf("%w: truncated payload", ErrBadSnapshot)
		}
		pos += n
		return v, nil
	}

	count, err := next()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	primes := make([]uint64, 0, count)
	prev := uint64(0)
	for i := uint64(0); i < count; i++ {
		v, err := next()
		if err != nil {
			return nil, err
		}
		if i > 0 {
			v += prev
			if v < prev {
				return nil, fmt.Errorf("%w: delta overflow", ErrBadSnapshot)
			}
		}
		primes = append(primes, v)
		prev = v
	}
	return primes, nil
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

func asByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return &simpleByteReader{r: r}
}

type simpleByteReader struct {
	r   io.Reader
	one [1]byte
}

func (s *simpleByteReader) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *simpleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.one[:]); err != nil {
		return 0, err
	}
	return s.one[0], nil
}
