// Package bitstream models encoded bit sequences and provides bit-level
// reading and writing on top of pooled byte buffers.
//
// A Bits value is an immutable sequence of bits with an exact length; the
// bits are packed MSB-first, so bit 0 of the stream is the most significant
// bit of the first byte. Writer accumulates bits in a 64-bit window and
// flushes full windows to a pooled buffer in big-endian order; Reader
// performs buffered bit extraction capped at the exact stream length, so
// the zero padding in the final byte is never surfaced.
//
// The package is deliberately unaware of code tables. The codec package
// composes it with the code package to encode and decode symbol streams.
package bitstream

import (
	"fmt"
	"strings"

	"github.com/arloliu/prefixcode/errs"
)

// Bits is an immutable sequence of bits of exact length.
//
// The zero value is the empty stream. Bits values own their storage; they
// can be retained, compared, and read concurrently.
type Bits struct {
	data []byte
	n    int
}

// FromBytes creates a Bits value from packed MSB-first bytes and an exact
// bit count. Only the first ceil(nbits/8) bytes are used, and the unused
// low bits of the final byte are cleared. The input slice is copied.
//
// Returns an error if nbits is negative or exceeds the available bits.
func FromBytes(data []byte, nbits int) (Bits, error) {
	if nbits < 0 || nbits > len(data)*8 {
		return Bits{}, fmt.Errorf("bitstream: bit count %d out of range for %d bytes", nbits, len(data))
	}
	if nbits == 0 {
		return Bits{}, nil
	}

	numBytes := (nbits + 7) / 8
	owned := make([]byte, numBytes)
	copy(owned, data[:numBytes])

	// Clear padding so that equal streams are byte-equal.
	if rem := nbits % 8; rem != 0 {
		owned[numBytes-1] &= byte(0xFF << (8 - rem))
	}

	return Bits{data: owned, n: nbits}, nil
}

// Parse builds a Bits value from a textual bit sequence such as "100110".
//
// Returns errs.ErrInvalidBit if the string contains a character other than
// '0' or '1'.
func Parse(s string) (Bits, error) {
	w := NewWriter()
	defer w.Finish()

	for i := range len(s) {
		switch s[i] {
		case '0':
			w.WriteBit(0)
		case '1':
			w.WriteBit(1)
		default:
			return Bits{}, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidBit, s[i], i)
		}
	}

	return w.Bits(), nil
}

// Len returns the number of bits in the stream.
func (b Bits) Len() int {
	return b.n
}

// IsEmpty reports whether the stream contains no bits.
func (b Bits) IsEmpty() bool {
	return b.n == 0
}

// Bit returns the i-th bit of the stream (0 or 1).
//
// Panics if i is out of range.
func (b Bits) Bit(i int) byte {
	if i < 0 || i >= b.n {
		panic("bitstream: bit index out of range")
	}

	return (b.data[i>>3] >> (7 - (i & 7))) & 1
}

// Bytes returns the packed MSB-first representation of the stream. The
// unused low bits of the final byte are zero. The returned slice is a copy.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)

	return out
}

// Size returns the number of bytes the packed stream occupies.
func (b Bits) Size() int {
	return len(b.data)
}

// Equal reports whether two streams have the same length and the same bits.
func (b Bits) Equal(other Bits) bool {
	if b.n != other.n {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders the stream as a sequence of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := range b.n {
		sb.WriteByte('0' + b.Bit(i))
	}

	return sb.String()
}
