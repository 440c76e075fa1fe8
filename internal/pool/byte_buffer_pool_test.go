package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	data := bb.Bytes()

	assert.Equal(t, []byte("hello"), data)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &data[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_LenCap(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)

	assert.Equal(t, 0, bb.Len(), "empty buffer should have zero length")
	assert.Equal(t, StreamBufferDefaultSize, bb.Cap())

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len(), "buffer length should match data")

	bb.B = append(bb.B, []byte(" data")...)
	assert.Equal(t, 9, bb.Len(), "buffer length should update after append")
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, []byte("abcdefgh")...)

	assert.Equal(t, []byte("cde"), bb.Slice(2, 5))

	// Writing through the slice mutates the buffer, the pattern the bit
	// writer relies on when it flushes a word into reserved space.
	s := bb.Slice(0, 2)
	s[0] = 'X'
	assert.Equal(t, byte('X'), bb.B[0])

	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(5, 2) })
	assert.Panics(t, func() { bb.Slice(0, cap(bb.B)+1) })
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(16)

	require.True(t, bb.Extend(8), "extend within capacity should succeed")
	assert.Equal(t, 8, bb.Len())

	require.True(t, bb.Extend(8), "extend up to capacity should succeed")
	assert.Equal(t, 16, bb.Len())

	assert.False(t, bb.Extend(1), "extend beyond capacity should fail")
	assert.Equal(t, 16, bb.Len(), "failed extend should not change length")
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.ExtendOrGrow(8)
	assert.Equal(t, 8, bb.Len())

	// Beyond capacity: must reallocate and still extend.
	bb.ExtendOrGrow(8)
	assert.Equal(t, 16, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), 16)
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(100) // Request growth smaller than available capacity

	assert.Equal(t, originalCap, cap(bb.B), "should not reallocate when capacity is sufficient")
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, make([]byte, StreamBufferDefaultSize)...) // Fill to capacity

	bb.Grow(1024) // Request 1KB more

	assert.GreaterOrEqual(t, cap(bb.B), StreamBufferDefaultSize+1024, "should have at least requested capacity")
	assert.Equal(t, StreamBufferDefaultSize, len(bb.B), "length should not change")
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	// Buffers past 4x the default size grow by 25% instead of a fixed step.
	bb := NewByteBuffer(StreamBufferDefaultSize)
	largeSize := 4*StreamBufferDefaultSize + 1024
	bb.B = make([]byte, largeSize)

	bb.Grow(2048) // Request 2KB more

	assert.GreaterOrEqual(t, cap(bb.B), largeSize+2048, "should have at least requested capacity")
}

func TestByteBuffer_Grow_MoreThanDefaultGrowth(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	bb.B = append(bb.B, make([]byte, StreamBufferDefaultSize)...) // Fill to capacity

	hugeSize := StreamBufferDefaultSize * 10
	bb.Grow(hugeSize)

	assert.GreaterOrEqual(t, cap(bb.B), StreamBufferDefaultSize+hugeSize, "should accommodate huge growth request")
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(StreamBufferDefaultSize * 2) // Force reallocation

	assert.Equal(t, testData, bb.B, "data should be preserved after growth")
}

func TestByteBuffer_Grow_ZeroBytes(t *testing.T) {
	bb := NewByteBuffer(StreamBufferDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(0)

	assert.Equal(t, originalCap, cap(bb.B), "Grow(0) should not change capacity")
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestNewByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(8192, 65536)

	require.NotNil(t, pool)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 8192, "buffer should have at least default size")

	pool.Put(bb)
}

func TestByteBufferPool_CustomSizes(t *testing.T) {
	tests := []struct {
		name         string
		defaultSize  int
		maxThreshold int
	}{
		{"Small pool", 1024, 4096},
		{"Medium pool", 16384, 131072},
		{"Large pool", 1048576, 8388608},
		{"No threshold", 8192, 0}, // 0 means no limit
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewByteBufferPool(tt.defaultSize, tt.maxThreshold)
			bb := pool.Get()
			assert.GreaterOrEqual(t, cap(bb.B), tt.defaultSize)
			pool.Put(bb)
		})
	}
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	// Get a buffer and grow it beyond maxThreshold
	bb := pool.Get()
	bb.Grow(10000)

	assert.Greater(t, cap(bb.B), 4096, "buffer should have grown beyond threshold")

	// Put it back - should be discarded
	pool.Put(bb)

	// Get another buffer - should be a fresh one (not the large one)
	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 4096*2, "should not reuse buffer larger than threshold")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	pool := NewByteBufferPool(1024, 0) // 0 means no limit

	bb := pool.Get()
	bb.Grow(1024 * 1024) // 1MB

	assert.Greater(t, cap(bb.B), 100000, "buffer should have grown to large size")

	// Put it back - should be accepted (no threshold)
	pool.Put(bb)

	bb2 := pool.Get()
	assert.NotNil(t, bb2)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	assert.NotPanics(t, func() {
		pool.Put(nil)
	})
}

// =============================================================================
// Stream Pool Tests
// =============================================================================

func TestGetStreamBuffer(t *testing.T) {
	bb := GetStreamBuffer()

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, cap(bb.B), StreamBufferDefaultSize, "pooled buffer should have at least default capacity")

	PutStreamBuffer(bb)
}

func TestPutStreamBuffer_NilBuffer(t *testing.T) {
	// Should not panic
	assert.NotPanics(t, func() {
		PutStreamBuffer(nil)
	})
}

func TestStreamBuffer_ResetOnPut(t *testing.T) {
	bb := GetStreamBuffer()
	bb.B = append(bb.B, []byte("stale bits")...)

	PutStreamBuffer(bb)

	assert.Equal(t, 0, len(bb.B), "PutStreamBuffer should reset the buffer")

	bb2 := GetStreamBuffer()
	assert.Equal(t, 0, len(bb2.B), "buffer from pool should be empty")
	PutStreamBuffer(bb2)
}

func TestStreamBuffer_MaxThreshold(t *testing.T) {
	bb := GetStreamBuffer()
	bb.Grow(StreamBufferMaxThreshold + 4096)

	assert.Greater(t, cap(bb.B), StreamBufferMaxThreshold, "buffer should have grown beyond threshold")

	// Put it back - should be discarded
	PutStreamBuffer(bb)

	bb2 := GetStreamBuffer()
	assert.LessOrEqual(t, cap(bb2.B), StreamBufferMaxThreshold, "should not reuse overly large buffer")
	PutStreamBuffer(bb2)
}

func TestStreamBuffer_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numIterations = 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetStreamBuffer()
				bb.ExtendOrGrow(8)
				assert.Equal(t, 8, bb.Len())
				PutStreamBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

// TestStreamBuffer_WriterPattern drives the buffer the way the bit stream
// writer does: reserve word-sized chunks with ExtendOrGrow, fill them
// through Slice, and hand the accumulated bytes back at the end.
func TestStreamBuffer_WriterPattern(t *testing.T) {
	bb := GetStreamBuffer()
	defer PutStreamBuffer(bb)

	for word := range 64 {
		start := bb.Len()
		bb.ExtendOrGrow(8)
		chunk := bb.Slice(start, start+8)
		for i := range chunk {
			chunk[i] = byte(word)
		}
	}

	require.Equal(t, 64*8, bb.Len())
	assert.Equal(t, byte(0), bb.B[0])
	assert.Equal(t, byte(63), bb.B[bb.Len()-1])
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkPool_GetPut(b *testing.B) {
	for b.Loop() {
		bb := GetStreamBuffer()
		PutStreamBuffer(bb)
	}
}

func BenchmarkPool_GetExtendPut(b *testing.B) {
	for b.Loop() {
		bb := GetStreamBuffer()
		bb.ExtendOrGrow(8)
		PutStreamBuffer(bb)
	}
}

func BenchmarkByteBuffer_Grow(b *testing.B) {
	for b.Loop() {
		bb := NewByteBuffer(StreamBufferDefaultSize)
		bb.Grow(1024 * 1024) // 1MB
	}
}

func BenchmarkPool_vs_NewBuffer(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for b.Loop() {
			bb := GetStreamBuffer()
			bb.ExtendOrGrow(1024)
			PutStreamBuffer(bb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for b.Loop() {
			bb := NewByteBuffer(StreamBufferDefaultSize)
			bb.ExtendOrGrow(1024)
		}
	})
}

func BenchmarkConcurrentGetPut(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bb := GetStreamBuffer()
			bb.ExtendOrGrow(64)
			PutStreamBuffer(bb)
		}
	})
}
