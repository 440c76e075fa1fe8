package compress

import (
	"fmt"

	"github.com/arloliu/prefixcode/format"
)

// Compressor compresses packed bit-stream payloads for storage or transport.
//
// The interface is sized for this library's payloads: packed code streams
// and their corpora, usually a few hundred bytes to a few hundred kilobytes.
// Huffman-packed streams are close to entropy already and rarely shrink
// much further; fixed-width baselines and raw corpora are where the byte
// compressors earn their keep.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Separate interfaces allow asymmetric implementations where compression
// and decompression have different performance characteristics or resource
// requirements.
//
// Thread safety: implementations must be safe for concurrent use or
// document their requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// The input must have been produced by the same algorithm. The
	// decompressor validates the data format and returns an error if the
	// data is corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// Useful for implementations that handle both operations with shared
// internal state or optimizations.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the outcome of compressing one payload.
//
// The ratio analyzer reports one of these per requested algorithm so
// callers can weigh byte-level compressors against code-level packing.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Values above 1.0
// indicate overhead, which does happen on already-packed code streams.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate better compression.
//
// Returns:
//   - float64: Space savings percentage (0-100)
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec and reports the resulting sizes.
//
// Parameters:
//   - codec: Codec to measure
//   - algorithm: Algorithm label recorded in the stats
//   - data: Payload to compress
//
// Returns:
//   - CompressionStats: Sizes before and after compression
//   - error: Compression error if any
func Measure(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, err
	}

	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
