// Package fixed builds fixed-width code tables that serve as comparison
// baselines for Huffman codes.
//
// Binary assigns the narrowest width that can distinguish the corpus
// alphabet; SevenBit mimics 7-bit character encodings by using each
// symbol's ordinal value directly. Both produce ordinary code tables, so
// the codec package encodes and decodes them exactly like Huffman tables,
// with decoding degenerating to width-sized chunking.
package fixed

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/errs"
)

// SevenBitWidth is the code width of tables built by SevenBit.
const SevenBitWidth = 7

// Char constrains symbols to character types with a meaningful ordinal.
type Char interface {
	~byte | ~rune
}

// Binary assigns consecutive values to the distinct symbols of the corpus,
// in first-seen order, using the narrowest width that fits the alphabet:
// ceil(log2(n)) bits for n distinct symbols, with a floor of one bit.
//
// Returns the table and its code width, or errs.ErrEmptyCorpus if the
// corpus has no symbols.
func Binary[S comparable](corpus []S) (code.Table[S], int, error) {
	if len(corpus) == 0 {
		return code.Table[S]{}, 0, errs.ErrEmptyCorpus
	}

	symbols := distinct(corpus)

	width := bits.Len(uint(len(symbols) - 1))
	if width == 0 {
		width = 1
	}

	codes := make(map[S]code.Bitstring, len(symbols))
	for i, sym := range symbols {
		codes[sym] = code.MakeBitstring(width, uint64(i))
	}

	table, err := code.NewTable(codes)
	if err != nil {
		return code.Table[S]{}, 0, err
	}

	return table, width, nil
}

// SevenBit assigns each distinct corpus symbol its ordinal value in seven
// bits, the way classic 7-bit character encodings do. Only symbols that
// appear in the corpus receive codes.
//
// Returns the table and the constant width 7. Symbols with ordinals outside
// [0, 127] fail with errs.ErrSymbolRange rather than being truncated.
func SevenBit[S Char](corpus []S) (code.Table[S], int, error) {
	if len(corpus) == 0 {
		return code.Table[S]{}, 0, errs.ErrEmptyCorpus
	}

	symbols := distinct(corpus)

	codes := make(map[S]code.Bitstring, len(symbols))
	for _, sym := range symbols {
		ord := int(sym)
		if ord < 0 || ord > 127 {
			return code.Table[S]{}, 0, fmt.Errorf("%w: %q has ordinal %d", errs.ErrSymbolRange, sym, ord)
		}
		codes[sym] = code.MakeBitstring(SevenBitWidth, uint64(ord))
	}

	table, err := code.NewTable(codes)
	if err != nil {
		return code.Table[S]{}, 0, err
	}

	return table, SevenBitWidth, nil
}

// distinct returns the distinct symbols of the corpus in first-seen order.
func distinct[S comparable](corpus []S) []S {
	seen := make(map[S]struct{}, 16)
	symbols := make([]S, 0, 16)

	for _, sym := range corpus {
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	}

	return symbols
}
