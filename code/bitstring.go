package code

import (
	"fmt"
	"strings"

	"github.com/arloliu/prefixcode/errs"
)

// MaxCodeLen is the maximum number of bits a single code word can hold.
const MaxCodeLen = 64

// Bitstring is a single code word of up to MaxCodeLen bits.
//
// The bits are stored right-aligned in a uint64: the first bit of the code
// word is the most significant bit of the low Len() bits. Bitstring is a
// comparable value type; two Bitstrings are equal (==) exactly when they
// have the same length and the same bits.
//
// The zero value is the empty code word. Valid tables never contain it, but
// it is the natural starting point for AppendBit during tree traversal.
type Bitstring struct {
	bits uint64
	size uint8
}

// MakeBitstring creates a Bitstring of the given size from the low 'size'
// bits of 'bits'. Higher bits are masked off.
//
// Panics if size is negative or exceeds MaxCodeLen; out-of-range sizes are
// programming errors, not data errors.
func MakeBitstring(size int, bits uint64) Bitstring {
	if size < 0 || size > MaxCodeLen {
		panic("code: MakeBitstring size out of range")
	}
	if size < MaxCodeLen {
		bits &= (uint64(1) << size) - 1
	}

	return Bitstring{bits: bits, size: uint8(size)}
}

// ParseBitstring parses a textual bit sequence such as "1011" into a
// Bitstring.
//
// Returns errs.ErrInvalidBit if the string contains a character other than
// '0' or '1', and errs.ErrCodeTooLong if it is longer than MaxCodeLen.
func ParseBitstring(s string) (Bitstring, error) {
	if len(s) > MaxCodeLen {
		return Bitstring{}, fmt.Errorf("%w: %d bits", errs.ErrCodeTooLong, len(s))
	}

	var bits uint64
	for i := range len(s) {
		switch s[i] {
		case '0':
			bits <<= 1
		case '1':
			bits = bits<<1 | 1
		default:
			return Bitstring{}, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidBit, s[i], i)
		}
	}

	return Bitstring{bits: bits, size: uint8(len(s))}, nil
}

// Len returns the number of bits in the code word.
func (b Bitstring) Len() int {
	return int(b.size)
}

// IsEmpty reports whether the code word has zero bits.
func (b Bitstring) IsEmpty() bool {
	return b.size == 0
}

// Bit returns the i-th bit of the code word (0 or 1), where index 0 is the
// first bit written to a stream.
//
// Panics if i is out of range.
func (b Bitstring) Bit(i int) byte {
	if i < 0 || i >= int(b.size) {
		panic("code: Bitstring bit index out of range")
	}

	return byte(b.bits>>(int(b.size)-1-i)) & 1
}

// AppendBit returns a new Bitstring with the given bit (0 or 1) appended.
// The receiver is unchanged.
//
// Panics if the code word is already MaxCodeLen bits long; builders check
// the depth bound before appending.
func (b Bitstring) AppendBit(bit byte) Bitstring {
	if b.size >= MaxCodeLen {
		panic("code: AppendBit exceeds MaxCodeLen")
	}

	return Bitstring{
		bits: b.bits<<1 | uint64(bit&1),
		size: b.size + 1,
	}
}

// Uint64 returns the code word right-aligned in a uint64, suitable for
// bit-level writers that take (value, width) pairs.
func (b Bitstring) Uint64() uint64 {
	return b.bits
}

// IsPrefixOf reports whether b is a proper or improper prefix of other.
// The empty code word is a prefix of everything.
func (b Bitstring) IsPrefixOf(other Bitstring) bool {
	if b.size > other.size {
		return false
	}

	return other.bits>>(other.size-b.size) == b.bits
}

// String renders the code word as a sequence of '0' and '1' characters.
func (b Bitstring) String() string {
	if b.size == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(int(b.size))
	for i := range int(b.size) {
		sb.WriteByte('0' + b.Bit(i))
	}

	return sb.String()
}
