// Package prefixcode builds prefix-free symbol codes from sample text and
// packs text into compact bit streams with them.
//
// The package implements the classic greedy construction: count how often
// each symbol occurs in a training corpus, then repeatedly merge the two
// least frequent groups into an explicit binary tree until one group
// remains. Frequent symbols end up near the root with short codes, rare
// symbols deep in the tree with long ones. Every code word is a leaf of
// the same tree, so no code word is a prefix of another and the packed
// stream needs no delimiters between symbols.
//
// # Core Features
//
//   - Huffman code construction with deterministic tie-breaking
//   - Fixed-width binary and 7-bit ordinal baseline codes
//   - MSB-first bit packing backed by pooled buffers
//   - O(bits) tree-walk decoding with unknown-run markers
//   - Ratio reports comparing codes against byte compressors (Zstd, S2, LZ4)
//   - xxHash64 identities for corpora and code tables
//
// # Basic Usage
//
// Building a code and packing text:
//
//	import "github.com/arloliu/prefixcode"
//
//	table, avg, _ := prefixcode.BuildHuffman("this is an example corpus")
//	fmt.Printf("average code length: %.3f bits/symbol\n", avg)
//
//	bits, _ := prefixcode.Encode("example", table)
//	fmt.Printf("packed into %d bits\n", bits.Len())
//
//	text, _ := prefixcode.Decode(bits, table)
//	// text == "example"
//
// Comparing against a fixed-width baseline:
//
//	ratio, _ := prefixcode.CompressionRatio("example", corpus, format.KindFixedBinary)
//	fmt.Printf("huffman beats binary %.2fx\n", ratio)
//
// # Package Structure
//
// This package provides convenient rune-oriented wrappers around the
// generic subpackages, simplifying the most common use cases. For other
// symbol types or fine-grained control, use the subpackages directly:
// huffman and fixed build code.Table values over any comparable symbol
// type, codec encodes and decodes symbol slices, bitstream holds the
// packed bits, and ratio produces full comparison reports.
package prefixcode

import (
	"cmp"
	"slices"
	"strings"

	"github.com/arloliu/prefixcode/bitstream"
	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/codec"
	"github.com/arloliu/prefixcode/fixed"
	"github.com/arloliu/prefixcode/format"
	"github.com/arloliu/prefixcode/huffman"
	"github.com/arloliu/prefixcode/internal/hash"
	"github.com/arloliu/prefixcode/ratio"
)

// UnknownMarker is the rune Decode substitutes for a run of bits that no
// code word matches.
const UnknownMarker = '?'

// BuildHuffman constructs a Huffman code from the corpus.
//
// Symbol frequencies are counted over the corpus runes; the two least
// frequent groups are merged repeatedly, lower count first, with ties
// broken by first appearance in the corpus. The returned average is the
// corpus-weighted mean code length in bits per symbol.
//
// A corpus with a single distinct symbol still yields a working table:
// that symbol gets the one-bit code "0" and the average is 1.0.
//
// Parameters:
//   - corpus: Training text; must be non-empty
//
// Returns:
//   - code.Table[rune]: Prefix-free code table over the corpus alphabet
//   - float64: Average code length in bits per corpus symbol
//   - error: errs.ErrEmptyCorpus for an empty corpus, errs.ErrCodeTooLong
//     if a code would exceed 64 bits
//
// Example:
//
//	table, avg, err := prefixcode.BuildHuffman("banana")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// table: a=0, b=10, n=11, avg: 1.5
func BuildHuffman(corpus string) (code.Table[rune], float64, error) {
	return huffman.Build([]rune(corpus))
}

// BuildFixedBinary constructs the smallest fixed-width binary code that
// covers the corpus alphabet.
//
// Symbols are numbered in order of first appearance and encoded as plain
// binary ordinals. The width is ceil(log2(alphabet size)), with a minimum
// of one bit. This is the natural baseline to measure a Huffman code
// against: same alphabet, no frequency information.
//
// Parameters:
//   - corpus: Training text; must be non-empty
//
// Returns:
//   - code.Table[rune]: Fixed-width code table over the corpus alphabet
//   - int: Code width in bits
//   - error: errs.ErrEmptyCorpus for an empty corpus
func BuildFixedBinary(corpus string) (code.Table[rune], int, error) {
	return fixed.Binary([]rune(corpus))
}

// BuildFixed7Bit constructs the classic 7-bit ordinal code over the corpus
// alphabet.
//
// Each symbol is encoded as its 7-bit ordinal value, mirroring ASCII
// storage. Only the symbols that actually occur in the corpus enter the
// table.
//
// Parameters:
//   - corpus: Training text; every rune must have an ordinal in [0, 127]
//
// Returns:
//   - code.Table[rune]: 7-bit code table over the corpus alphabet
//   - int: Code width in bits, always 7
//   - error: errs.ErrEmptyCorpus for an empty corpus, errs.ErrSymbolRange
//     for runes outside the 7-bit range
func BuildFixed7Bit(corpus string) (code.Table[rune], int, error) {
	return fixed.SevenBit([]rune(corpus))
}

// Encode packs text into a bit stream using the given code table.
//
// Code words are concatenated most significant bit first with no
// delimiters. Every rune of the text must have a table entry.
//
// Parameters:
//   - text: Text to pack
//   - table: Code table from one of the Build functions
//
// Returns:
//   - bitstream.Bits: Packed stream; empty for empty text
//   - error: errs.ErrUnknownSymbol wrapped with the offending rune and its
//     position, errs.ErrEmptyTable for an empty table
//
// Example:
//
//	bits, err := prefixcode.Encode("banana", table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(bits.Len()) // 9
func Encode(text string, table code.Table[rune]) (bitstream.Bits, error) {
	return codec.Encode([]rune(text), table)
}

// Decode unpacks a bit stream back into text using the given code table.
//
// The decoder walks the code tree bit by bit. Runs of bits that match no
// code word (possible with sparse fixed-width tables) are replaced by one
// UnknownMarker rune each. A stream that ends mid-codeword returns the
// text decoded so far together with errs.ErrTruncatedStream.
//
// Parameters:
//   - bits: Packed stream from Encode
//   - table: The same code table the stream was packed with
//
// Returns:
//   - string: Decoded text, with UnknownMarker standing in for dead runs
//   - error: errs.ErrTruncatedStream for a stream cut mid-codeword,
//     errs.ErrEmptyTable for an empty table
//
// For token-level access or lenient truncation handling, use
// codec.Decoder directly.
func Decode(bits bitstream.Bits, table code.Table[rune]) (string, error) {
	dec, err := codec.NewDecoder(table)
	if err != nil {
		return "", err
	}

	tokens, err := dec.Decode(bits)

	var sb strings.Builder
	sb.Grow(len(tokens))
	for _, tok := range tokens {
		if tok.Unknown {
			sb.WriteRune(UnknownMarker)
		} else {
			sb.WriteRune(tok.Sym)
		}
	}

	return sb.String(), err
}

// CompressionRatio reports how many times smaller the Huffman packing of
// text is compared to packing it with a fixed-width baseline trained on
// the same corpus.
//
// The ratio is baseline bits divided by Huffman bits: 2.0 means the
// Huffman code packs the text into half the baseline's bits, 1.0 means
// the corpus alphabet gave it nothing to exploit.
//
// Parameters:
//   - text: Text to measure; every rune must appear in the corpus
//   - corpus: Training text for both code tables
//   - baseline: format.KindFixedBinary or format.KindFixed7Bit
//
// Returns:
//   - float64: Baseline bits / Huffman bits
//   - error: errs.ErrEmptyText, errs.ErrEmptyCorpus,
//     errs.ErrUnknownSymbol, or errs.ErrInvalidCodeKind for a baseline
//     that is not fixed-width
//
// For bit counts, per-symbol averages and byte-compressor comparisons,
// use ratio.Analyze directly.
func CompressionRatio(text, corpus string, baseline format.CodeKind) (float64, error) {
	report, err := ratio.Analyze(text, corpus, ratio.WithBaseline(baseline))
	if err != nil {
		return 0, err
	}

	return report.Ratio(), nil
}

// CorpusID returns the 64-bit xxHash64 identity of a training corpus.
//
// Equal corpora always produce equal IDs, so the ID works as a cache key
// for built tables or as a quick change detector. It is not cryptographic.
//
// Example:
//
//	id := prefixcode.CorpusID("banana")
//	if id != cachedID {
//	    table, _, _ = prefixcode.BuildHuffman("banana")
//	}
func CorpusID(corpus string) uint64 {
	return hash.ID(corpus)
}

// TableFingerprint returns a 64-bit identity of a code table.
//
// The fingerprint depends only on the symbol-to-code mapping: two tables
// that assign the same codes to the same symbols produce the same
// fingerprint no matter how or in what order they were built. Entries are
// folded into the hash sorted by code length and code bits, so map
// iteration order never leaks in.
func TableFingerprint(table code.Table[rune]) uint64 {
	type entry struct {
		sym  rune
		bits code.Bitstring
	}

	entries := make([]entry, 0, table.Len())
	for sym, c := range table.All() {
		entries = append(entries, entry{sym: sym, bits: c})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.bits.Len(), b.bits.Len()); c != 0 {
			return c
		}

		return cmp.Compare(a.bits.Uint64(), b.bits.Uint64())
	})

	d := hash.NewDigest()
	for _, e := range entries {
		d.AddByte(byte(e.bits.Len()))
		d.AddUint64(e.bits.Uint64())
		d.AddUint32(uint32(e.sym))
	}

	return d.Sum64()
}
