package code

import (
	"fmt"
	"iter"

	"github.com/arloliu/prefixcode/errs"
)

// Table is an immutable mapping from symbols to code words.
//
// A Table is only constructible through NewTable (or the builder packages),
// which guarantee the prefix-free invariant: no code word is a prefix of
// another and no two symbols share a code word. Decoders rely on this to
// recover symbol boundaries without delimiters.
//
// The zero value is an empty table: Code reports no matches and Len is 0.
// Tables are safe for concurrent use by multiple goroutines.
type Table[S comparable] struct {
	codes  map[S]Bitstring
	minLen int
	maxLen int
}

// NewTable validates the given symbol-to-code mapping and wraps it in a
// Table. The map is copied; later mutation of the argument does not affect
// the table.
//
// Returns:
//   - errs.ErrEmptyTable if the mapping has no entries
//   - errs.ErrEmptyCode if any code word has zero bits
//   - errs.ErrNotPrefixFree if any code word is a prefix of another or two
//     symbols share a code word
func NewTable[S comparable](codes map[S]Bitstring) (Table[S], error) {
	if len(codes) == 0 {
		return Table[S]{}, errs.ErrEmptyTable
	}

	byCode := make(map[Bitstring]S, len(codes))
	owned := make(map[S]Bitstring, len(codes))
	minLen, maxLen := MaxCodeLen+1, 0

	for sym, c := range codes {
		if c.IsEmpty() {
			return Table[S]{}, fmt.Errorf("%w: symbol %v", errs.ErrEmptyCode, sym)
		}
		if prev, ok := byCode[c]; ok {
			return Table[S]{}, fmt.Errorf("%w: symbols %v and %v share code %s",
				errs.ErrNotPrefixFree, prev, sym, c)
		}
		byCode[c] = sym
		owned[sym] = c

		if c.Len() < minLen {
			minLen = c.Len()
		}
		if c.Len() > maxLen {
			maxLen = c.Len()
		}
	}

	// A code violates the invariant exactly when one of its proper prefixes
	// is itself a code. Checking against the code set costs O(total bits).
	for _, c := range codes {
		prefix := Bitstring{}
		for i := range c.Len() - 1 {
			prefix = prefix.AppendBit(c.Bit(i))
			if sym, ok := byCode[prefix]; ok {
				return Table[S]{}, fmt.Errorf("%w: code %s of symbol %v is a prefix of %s",
					errs.ErrNotPrefixFree, prefix, sym, c)
			}
		}
	}

	return Table[S]{codes: owned, minLen: minLen, maxLen: maxLen}, nil
}

// Code returns the code word for the given symbol and whether the symbol
// is present in the table.
func (t Table[S]) Code(sym S) (Bitstring, bool) {
	c, ok := t.codes[sym]
	return c, ok
}

// Len returns the number of symbols in the table.
func (t Table[S]) Len() int {
	return len(t.codes)
}

// MinCodeLen returns the length in bits of the shortest code word,
// or 0 for an empty table.
func (t Table[S]) MinCodeLen() int {
	if len(t.codes) == 0 {
		return 0
	}

	return t.minLen
}

// MaxCodeLen returns the length in bits of the longest code word,
// or 0 for an empty table.
func (t Table[S]) MaxCodeLen() int {
	if len(t.codes) == 0 {
		return 0
	}

	return t.maxLen
}

// FixedWidth returns the common code width and true when every code word in
// the table has the same length, such as tables produced by the fixed
// package. Otherwise it returns 0 and false.
func (t Table[S]) FixedWidth() (int, bool) {
	if len(t.codes) == 0 || t.minLen != t.maxLen {
		return 0, false
	}

	return t.minLen, true
}

// All returns an iterator over all (symbol, code) pairs in the table.
// The iteration order is unspecified.
func (t Table[S]) All() iter.Seq2[S, Bitstring] {
	return func(yield func(S, Bitstring) bool) {
		for sym, c := range t.codes {
			if !yield(sym, c) {
				return
			}
		}
	}
}
