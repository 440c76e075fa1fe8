package compress

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/prefixcode/format"
)

// testPayloads covers the shapes this package actually sees: repetitive
// corpus text, near-entropy packed streams (modeled by random bytes), and
// empty input.
func testPayloads() map[string][]byte {
	rng := rand.New(rand.NewSource(42))
	packed := make([]byte, 8192)
	for i := range packed {
		packed[i] = byte(rng.Intn(256))
	}

	return map[string][]byte{
		"corpus text":   []byte(strings.Repeat("it was the best of times, it was the worst of times. ", 200)),
		"packed stream": packed,
		"tiny":          []byte{0xAB},
		"empty":         nil,
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := []struct {
		name  string
		codec Codec
	}{
		{name: "noop", codec: NewNoOpCompressor()},
		{name: "zstd", codec: NewZstdCompressor()},
		{name: "s2", codec: NewS2Compressor()},
		{name: "lz4", codec: NewLZ4Compressor()},
	}

	for i := range codecs {
		tc := codecs[i]
		t.Run(tc.name, func(t *testing.T) {
			for name, payload := range testPayloads() {
				compressed, err := tc.codec.Compress(payload)
				require.NoError(t, err, "payload %q", name)

				decompressed, err := tc.codec.Decompress(compressed)
				require.NoError(t, err, "payload %q", name)

				if len(payload) == 0 {
					require.Empty(t, decompressed, "payload %q", name)
					continue
				}
				require.Equal(t, payload, decompressed, "payload %q", name)
			}
		})
	}
}

func TestCodecs_CompressibleTextShrinks(t *testing.T) {
	payload := []byte(strings.Repeat("banana banana banana ", 500))

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "algorithm %s", ct)
	}
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionLZ4, "corpus")
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = CreateCodec(format.CompressionType(0), "corpus")
	require.Error(t, err)
	require.ErrorContains(t, err, "corpus")
}

func TestCompressionStats(t *testing.T) {
	tests := []struct {
		name        string
		stats       CompressionStats
		wantRatio   float64
		wantSavings float64
	}{
		{
			name:        "half size",
			stats:       CompressionStats{OriginalSize: 1000, CompressedSize: 500},
			wantRatio:   0.5,
			wantSavings: 50.0,
		},
		{
			name:        "no benefit",
			stats:       CompressionStats{OriginalSize: 800, CompressedSize: 800},
			wantRatio:   1.0,
			wantSavings: 0.0,
		},
		{
			name:        "expansion",
			stats:       CompressionStats{OriginalSize: 100, CompressedSize: 125},
			wantRatio:   1.25,
			wantSavings: -25.0,
		},
		{
			name:        "zero original",
			stats:       CompressionStats{OriginalSize: 0, CompressedSize: 9},
			wantRatio:   0.0,
			wantSavings: 100.0,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.wantRatio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.wantSavings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}

func TestMeasure(t *testing.T) {
	payload := []byte(strings.Repeat("aaaaaaaabbbbcc", 1000))

	stats, err := Measure(NewZstdCompressor(), format.CompressionZstd, payload)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(payload)), stats.OriginalSize)
	require.Less(t, stats.CompressedSize, stats.OriginalSize)
	require.Less(t, stats.CompressionRatio(), 1.0)

	stats, err = Measure(NewNoOpCompressor(), format.CompressionNone, payload)
	require.NoError(t, err)
	require.Equal(t, stats.OriginalSize, stats.CompressedSize)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)
}

func TestZstd_RejectsCorruptedInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}

func TestS2_RejectsCorruptedInput(t *testing.T) {
	codec := NewS2Compressor()

	_, err := codec.Decompress([]byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB})
	require.Error(t, err)
}

func TestLZ4_AdaptiveBufferGrowth(t *testing.T) {
	// Highly compressible input: the decompressed size is far more than 4x
	// the compressed size, so Decompress must grow its buffer to finish.
	payload := make([]byte, 256*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestNoOp_Identity(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("pass through")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}
