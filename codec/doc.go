// Package codec encodes symbol streams into bit streams and decodes them
// back using a prefix-free code table.
//
// # Encoding
//
// Encoding is plain concatenation: each symbol's code word is appended to
// the stream, most significant bit first, with no delimiters. A symbol
// without a table entry aborts the encode with errs.ErrUnknownSymbol;
// skipping it silently would desynchronize every bit that follows.
//
// # Decoding
//
// The decoder builds an explicit binary decode tree from the table once,
// then walks it bit by bit: reaching a leaf emits that symbol and restarts
// at the root. Because the table is prefix-free, the first leaf hit is the
// only possible match, so decoding runs in O(bits) regardless of alphabet
// size. Tables whose code words all share one width get a chunked fast path
// instead of the walk.
//
// Bits that lead off the tree - possible only with sparse tables such as
// fixed-width codes over a non-power-of-two alphabet - enter a dead run:
// the decoder swallows bits until the run is one longer than the longest
// code word, emits a single unknown-marker token, and restarts. The
// observable output is identical to the classic scan that buffers bits and
// compares the buffer against every code word, only without the quadratic
// cost.
//
// # Truncation
//
// A stream that ends mid-codeword is reported two ways:
//
//   - Decode returns the tokens decoded so far together with
//     errs.ErrTruncatedStream.
//   - All yields a final unknown-marker token and ends the iteration,
//     for callers that prefer lenient handling over an error check.
package codec
