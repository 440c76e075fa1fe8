package bitstream

import (
	"encoding/binary"
)

// Reader provides buffered bit-level reading over a Bits stream.
//
// The reader refills a 64-bit window from the packed bytes and extracts bits
// from the most significant position. Reads are capped at the exact stream
// length, so the zero padding in the final byte is never returned.
//
// A Reader is not safe for concurrent use; create one per goroutine.
type Reader struct {
	data     []byte
	nbits    int    // Total valid bits in the stream
	pos      int    // Bits consumed so far
	bytePos  int    // Next byte to load into the window
	bitBuf   uint64 // Window holding loaded bits, left-aligned
	bitCount int    // Number of valid bits in the window
}

// NewReader creates a Reader positioned at the first bit of the stream.
func NewReader(b Bits) *Reader {
	return &Reader{
		data:  b.data,
		nbits: b.n,
	}
}

// Remaining returns the number of bits left to read.
func (r *Reader) Remaining() int {
	return r.nbits - r.pos
}

// ReadBit reads the next bit from the stream.
//
// Returns the bit (0 or 1) and true, or 0 and false when the stream is
// exhausted.
func (r *Reader) ReadBit() (byte, bool) {
	if r.pos >= r.nbits {
		return 0, false
	}

	if r.bitCount == 0 {
		if !r.fillBuffer() {
			return 0, false
		}
	}

	// Extract most significant bit (already 0 or 1, no mask needed)
	bit := byte(r.bitBuf >> 63)
	r.bitBuf <<= 1
	r.bitCount--
	r.pos++

	return bit, true
}

// ReadBits reads numBits bits and returns them right-aligned in a uint64.
//
// If fewer than numBits bits remain, it returns 0 and false without
// consuming anything. numBits must be between 0 and 64.
func (r *Reader) ReadBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}
	if numBits > r.nbits-r.pos {
		return 0, false
	}

	r.pos += numBits

	if numBits <= r.bitCount {
		shift := 64 - numBits
		result := r.bitBuf >> shift
		r.bitBuf <<= numBits
		r.bitCount -= numBits

		return result, true
	}

	var result uint64
	firstRead := true

	for numBits > 0 {
		if r.bitCount == 0 {
			if !r.fillBuffer() {
				return 0, false
			}
		}

		bitsToRead := numBits
		if bitsToRead > r.bitCount {
			bitsToRead = r.bitCount
		}

		// Extract bits from the most significant position
		shift := 64 - bitsToRead
		shiftedBits := r.bitBuf >> shift

		if firstRead {
			result = shiftedBits
			firstRead = false
		} else {
			result = (result << bitsToRead) | shiftedBits
		}

		r.bitBuf <<= bitsToRead
		r.bitCount -= bitsToRead
		numBits -= bitsToRead
	}

	return result, true
}

// fillBuffer refills the bit window from the byte stream.
//
// Reads up to 8 bytes and left-aligns them for MSB extraction. The window
// size is clamped to the stream's exact bit length, so padding bits in the
// final byte never become readable.
func (r *Reader) fillBuffer() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	bytesAvailable := len(r.data) - r.bytePos
	bytesToRead := 8
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	if bytesToRead == 8 {
		// Fast path: full window load via binary.BigEndian
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bitCount = 64
		r.bytePos += 8
	} else {
		r.bitBuf = 0
		for range bytesToRead {
			r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
			r.bytePos++
		}

		// Left-align partial loads for consistent MSB extraction
		r.bitBuf <<= (8 - bytesToRead) * 8
		r.bitCount = bytesToRead * 8
	}

	// Trim window bits that lie past the stream's bit length.
	if loaded := r.bytePos * 8; loaded > r.nbits {
		r.bitCount -= loaded - r.nbits
	}

	return true
}
