// Package compress provides byte-level compression codecs for packed code
// streams and their corpora.
//
// Prefix codes already squeeze symbol-level redundancy out of a stream, so
// the algorithms here play a different role: they measure and exploit the
// byte-level redundancy that code packing leaves behind. Fixed-width
// baseline streams and raw corpora compress well; Huffman streams sit near
// entropy and usually do not. Putting both observations in one report is
// exactly what the ratio analyzer uses this package for.
//
// # Supported Algorithms
//
//   - None: identity pass-through, the raw-size baseline
//   - Zstd: best ratio, moderate speed, suited to archived corpora
//   - S2: fastest, Snappy-compatible, suited to repeated comparison runs
//   - LZ4: fast decompression with moderate ratio
//
// All codecs implement the Codec interface and are stateless value types;
// internal encoder state lives in shared pools, so every codec is safe for
// concurrent use.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//	    return err
//	}
//
//	original, err := codec.Decompress(compressed)
//
// # Zstd Build Variants
//
// The Zstd codec has two interchangeable backends selected at build time:
// the default pure Go implementation (klauspost/compress), and the libzstd
// cgo bindings (valyala/gozstd) enabled with -tags gozstd for deployments
// that want the extra throughput. Frames are standard Zstandard either way.
package compress
