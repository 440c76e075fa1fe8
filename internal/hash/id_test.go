package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestDigest_MatchesFlatHash(t *testing.T) {
	d := NewDigest()
	d.AddUint64(0x0102030405060708)
	d.AddUint32(0x090A0B0C)
	d.AddByte(0x0D)

	flat := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	assert.Equal(t, xxhash.Sum64(flat), d.Sum64())
}

func TestDigest_Deterministic(t *testing.T) {
	build := func() uint64 {
		d := NewDigest()
		d.AddByte(3)
		d.AddUint64(0xDEADBEEF)
		d.AddUint32('a')

		return d.Sum64()
	}

	assert.Equal(t, build(), build())
}

func TestDigest_OrderSensitive(t *testing.T) {
	first := NewDigest()
	first.AddUint32(1)
	first.AddUint32(2)

	second := NewDigest()
	second.AddUint32(2)
	second.AddUint32(1)

	assert.NotEqual(t, first.Sum64(), second.Sum64())
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for b.Loop() {
		ID(randStr)
	}
}

func BenchmarkDigest(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		d := NewDigest()
		for i := range 64 {
			d.AddUint64(uint64(i))
		}
		_ = d.Sum64()
	}
}
