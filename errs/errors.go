// Package errs defines the sentinel errors shared across the prefixcode packages.
//
// Callers match them with errors.Is; producing code wraps them with context
// using fmt.Errorf("%w: ...", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrEmptyCorpus indicates a code builder was given a zero-length corpus.
	// No frequency information exists, so no code can be derived.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrUnknownSymbol indicates the encoder met a symbol that has no entry
	// in the code table. Encoding stops at the offending symbol; silently
	// skipping it would desynchronize the bit stream.
	ErrUnknownSymbol = errors.New("symbol not in code table")

	// ErrTruncatedStream indicates a decode ended mid-codeword: the stream
	// ran out of bits while a partial code was still pending.
	ErrTruncatedStream = errors.New("truncated bit stream")

	// ErrEmptyTable indicates a code table with no entries.
	ErrEmptyTable = errors.New("empty code table")

	// ErrEmptyCode indicates a table entry with a zero-length bitstring.
	// Empty codes consume no bits and make decoding impossible.
	ErrEmptyCode = errors.New("empty code in table")

	// ErrNotPrefixFree indicates a table where one code is a prefix of
	// another (or two symbols share a code), which makes variable-width
	// decoding ambiguous.
	ErrNotPrefixFree = errors.New("code table is not prefix-free")

	// ErrSymbolRange indicates a symbol whose ordinal does not fit the
	// fixed code width, e.g. a rune above 127 in a 7-bit code.
	ErrSymbolRange = errors.New("symbol ordinal out of range")

	// ErrCodeTooLong indicates a code word longer than 64 bits.
	ErrCodeTooLong = errors.New("code exceeds 64 bits")

	// ErrInvalidCount indicates a negative symbol count passed to a builder.
	ErrInvalidCount = errors.New("invalid symbol count")

	// ErrEmptyText indicates a ratio analysis over empty text; both encoded
	// lengths are zero and the ratio is undefined.
	ErrEmptyText = errors.New("empty text")

	// ErrInvalidCodeKind indicates an unsupported code kind.
	ErrInvalidCodeKind = errors.New("invalid code kind")

	// ErrInvalidBit indicates a character other than '0' or '1' in a
	// textual bit sequence.
	ErrInvalidBit = errors.New("invalid bit character")
)
