package ratio

import (
	"fmt"

	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/codec"
	"github.com/arloliu/prefixcode/compress"
	"github.com/arloliu/prefixcode/errs"
	"github.com/arloliu/prefixcode/fixed"
	"github.com/arloliu/prefixcode/format"
	"github.com/arloliu/prefixcode/huffman"
	"github.com/arloliu/prefixcode/internal/options"
)

// Analyze trains a Huffman code on corpus, packs text with it and with the
// configured fixed-width baseline, and reports both alongside any requested
// byte-compressor measurements.
//
// Parameters:
//   - text: Text to pack; every symbol must appear in the corpus
//   - corpus: Training text the code tables are built from
//   - opts: Baseline and compressor selection
//
// Returns:
//   - *Report: Bit counts per code plus the headline ratio
//   - error: errs.ErrEmptyText, errs.ErrEmptyCorpus, errs.ErrUnknownSymbol,
//     errs.ErrInvalidCodeKind, or a compressor failure
//
// Example:
//
//	report, err := ratio.Analyze("bananas", "a banana band")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("huffman beats binary %.2fx\n", report.Ratio())
func Analyze(text string, corpus string, opts ...AnalyzeOption) (*Report, error) {
	if len(text) == 0 {
		return nil, errs.ErrEmptyText
	}

	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	symbols := []rune(text)
	corpusSymbols := []rune(corpus)

	huffTable, corpusAvg, err := huffman.Build(corpusSymbols)
	if err != nil {
		return nil, fmt.Errorf("build huffman code: %w", err)
	}

	baseTable, err := buildBaseline(cfg.Baseline, corpusSymbols)
	if err != nil {
		return nil, err
	}

	huffStats, err := measureCode(format.KindHuffman, huffTable, symbols)
	if err != nil {
		return nil, err
	}

	baseStats, err := measureCode(cfg.Baseline, baseTable, symbols)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Symbols:       len(symbols),
		CorpusAvgBits: corpusAvg,
		Huffman:       huffStats,
		Baseline:      baseStats,
	}

	for _, ct := range cfg.Compressions {
		cdc, err := compress.GetCodec(ct)
		if err != nil {
			return nil, err
		}

		stats, err := compress.Measure(cdc, ct, []byte(text))
		if err != nil {
			return nil, fmt.Errorf("compress text with %s: %w", ct, err)
		}
		report.Compressed = append(report.Compressed, stats)
	}

	return report, nil
}

// buildBaseline constructs the fixed-width comparison table over the
// corpus alphabet.
func buildBaseline(kind format.CodeKind, corpus []rune) (code.Table[rune], error) {
	switch kind {
	case format.KindFixedBinary:
		table, _, err := fixed.Binary(corpus)
		if err != nil {
			return code.Table[rune]{}, fmt.Errorf("build binary baseline: %w", err)
		}

		return table, nil
	case format.KindFixed7Bit:
		table, _, err := fixed.SevenBit(corpus)
		if err != nil {
			return code.Table[rune]{}, fmt.Errorf("build 7-bit baseline: %w", err)
		}

		return table, nil
	default:
		return code.Table[rune]{}, fmt.Errorf("%w: %s is not a fixed-width baseline", errs.ErrInvalidCodeKind, kind)
	}
}

// measureCode packs symbols with table and sizes the result.
func measureCode(kind format.CodeKind, table code.Table[rune], symbols []rune) (CodeStats, error) {
	bits, err := codec.Encode(symbols, table)
	if err != nil {
		return CodeStats{}, fmt.Errorf("encode with %s code: %w", kind, err)
	}

	return CodeStats{
		Kind:          kind,
		Bits:          bits.Len(),
		BitsPerSymbol: float64(bits.Len()) / float64(len(symbols)),
		PackedBytes:   bits.Size(),
	}, nil
}
