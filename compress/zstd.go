package compress

// ZstdCompressor provides Zstandard compression for stored payloads.
//
// Zstd trades compression speed for ratio, which suits corpora and
// fixed-width baseline streams kept around for comparison runs:
//   - Archival of corpora and decoded text
//   - Network transmission where bandwidth is limited
//   - Payloads written once and read rarely
//
// Two implementations back this type. The default build uses the pure Go
// klauspost/compress encoder; building with the gozstd tag switches to the
// cgo bindings of libzstd for throughput-critical deployments. Both produce
// standard Zstandard frames and decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
