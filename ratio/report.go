package ratio

import (
	"fmt"

	"github.com/arloliu/prefixcode/compress"
	"github.com/arloliu/prefixcode/format"
)

// CodeStats describes how one code table performs on the analyzed text.
//
// Fields:
//   - Kind: The code that produced these numbers
//   - Bits: Total bits the packed text occupies
//   - BitsPerSymbol: Bits divided by the text's symbol count
//   - PackedBytes: Bytes the bit stream occupies once padded to a byte boundary
type CodeStats struct {
	Kind          format.CodeKind
	Bits          int
	BitsPerSymbol float64
	PackedBytes   int
}

// String returns a one-line summary of the stats.
func (s CodeStats) String() string {
	return fmt.Sprintf("%s: %d bits (%.3f bits/symbol, %d bytes packed)",
		s.Kind, s.Bits, s.BitsPerSymbol, s.PackedBytes)
}

// Report is the outcome of a ratio analysis.
//
// Fields:
//   - Symbols: Number of symbols in the analyzed text
//   - CorpusAvgBits: Average code length the Huffman table promises on its
//     training corpus, before the text enters the picture
//   - Huffman: How the Huffman code performed on the text
//   - Baseline: How the fixed-width baseline performed on the text
//   - Compressed: One measurement per requested byte compressor, run over
//     the raw text bytes
type Report struct {
	Symbols       int
	CorpusAvgBits float64
	Huffman       CodeStats
	Baseline      CodeStats
	Compressed    []compress.CompressionStats
}

// Ratio returns baseline bits divided by Huffman bits for the analyzed
// text. Values above 1.0 mean the Huffman code wins; 1.0 means the corpus
// alphabet gave it nothing to exploit.
func (r *Report) Ratio() float64 {
	if r.Huffman.Bits == 0 {
		return 0.0
	}

	return float64(r.Baseline.Bits) / float64(r.Huffman.Bits)
}

// String returns a human-readable summary of the report.
func (r *Report) String() string {
	return fmt.Sprintf("Report{Symbols: %d, Huffman: %.3f bits/sym, %s: %.3f bits/sym, Ratio: %.3fx}",
		r.Symbols, r.Huffman.BitsPerSymbol, r.Baseline.Kind, r.Baseline.BitsPerSymbol, r.Ratio())
}
