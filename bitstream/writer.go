package bitstream

import (
	"encoding/binary"

	"github.com/arloliu/prefixcode/internal/pool"
)

// Writer accumulates bits into a growing stream.
//
// Bits are collected in a 64-bit window and flushed to a pooled byte buffer
// whenever the window fills, keeping the hot path free of per-bit byte
// arithmetic. The stream snapshot is available at any time through Bits().
//
// A Writer is not safe for concurrent use. Call Finish() when done to return
// the internal buffer to the pool; afterwards the Writer is unusable and any
// write panics.
type Writer struct {
	bitBuf   uint64 // Bit window for accumulating bits before flushing
	bitCount int    // Number of valid bits in bitBuf
	n        int    // Total bits written since creation or Reset
	buf      *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a pooled buffer.
func NewWriter() *Writer {
	return &Writer{
		buf: pool.GetStreamBuffer(),
	}
}

// WriteBit appends a single bit (0 or 1) to the stream.
func (w *Writer) WriteBit(bit byte) {
	if w.buf == nil {
		panic("writer already finished - cannot write bits after Finish()")
	}

	w.bitBuf = w.bitBuf<<1 | uint64(bit&1)
	w.bitCount++
	w.n++

	if w.bitCount == 64 {
		w.flushBits()
	}
}

// WriteBits appends the low numBits bits of value to the stream, most
// significant bit first. numBits must be between 0 and 64.
func (w *Writer) WriteBits(value uint64, numBits int) {
	if w.buf == nil {
		panic("writer already finished - cannot write bits after Finish()")
	}
	if numBits == 0 {
		return
	}

	// Mask value to only include the specified number of bits
	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	w.n += numBits

	// Calculate how many bits fit in the current window
	available := 64 - w.bitCount

	if numBits <= available {
		// All bits fit in the current window
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		if w.bitCount == 64 {
			w.flushBits()
		}
	} else {
		// Split across the window boundary
		highBits := numBits - available
		w.bitBuf = (w.bitBuf << available) | (value >> highBits)
		w.bitCount = 64
		w.flushBits()

		w.bitBuf = value & ((1 << highBits) - 1)
		w.bitCount = highBits
	}
}

// Len returns the total number of bits written since creation or Reset.
func (w *Writer) Len() int {
	return w.n
}

// Bits returns a snapshot of the stream written so far.
//
// The snapshot owns its storage and stays valid after further writes,
// Reset, or Finish. The Writer itself is unchanged and remains usable.
func (w *Writer) Bits() Bits {
	if w.buf == nil {
		panic("writer already finished - cannot snapshot after Finish()")
	}
	if w.n == 0 {
		return Bits{}
	}

	numBytes := (w.n + 7) / 8
	data := make([]byte, 0, numBytes)
	data = append(data, w.buf.Bytes()...)

	// Append the pending window bits, left-aligned and zero-padded.
	if w.bitCount > 0 {
		alignedBits := w.bitBuf << (64 - w.bitCount)
		pendingBytes := (w.bitCount + 7) / 8
		for i := range pendingBytes {
			shift := 56 - (i * 8)
			data = append(data, byte(alignedBits>>shift))
		}
	}

	return Bits{data: data, n: w.n}
}

// Reset clears the Writer for reuse, retaining the pooled buffer.
func (w *Writer) Reset() {
	if w.buf == nil {
		panic("writer already finished - cannot reset after Finish()")
	}

	w.bitBuf = 0
	w.bitCount = 0
	w.n = 0
	w.buf.Reset()
}

// Finish returns the internal buffer to the pool and makes the Writer
// unusable. Retrieve the stream with Bits() before calling Finish.
//
// Use defer to release the buffer even on error paths:
//
//	w := bitstream.NewWriter()
//	defer w.Finish()
func (w *Writer) Finish() {
	if w.buf == nil {
		return // Already finished
	}

	pool.PutStreamBuffer(w.buf)
	w.buf = nil
}

// flushBits writes the full 64-bit window to the byte buffer.
//
// The window is organized big-endian (most significant bits first), so the
// flushed bytes continue the stream in order.
func (w *Writer) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8

	w.buf.Grow(numBytes)

	// Shift bits to align to the byte boundary (left-align)
	alignedBits := w.bitBuf << (64 - w.bitCount)

	startLen := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)

	bs := w.buf.Slice(startLen, startLen+numBytes)

	// Fast path: use binary.BigEndian for full window flushes
	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, alignedBits)
	} else {
		for i := range numBytes {
			shift := 56 - (i * 8)
			bs[i] = byte(alignedBits >> shift)
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}
