package codec

import (
	"fmt"
	"iter"

	"github.com/arloliu/prefixcode/bitstream"
	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/errs"
)

// Token is one element of a decoded stream: either a symbol from the code
// table or a marker standing in for a run of bits no code word matches.
type Token[S comparable] struct {
	Sym     S
	Unknown bool
}

// Decoder turns bit streams back into symbol streams.
//
// The decode tree is built once from the table; a Decoder is immutable
// after construction and safe for concurrent use.
type Decoder[S comparable] struct {
	table  code.Table[S]
	root   *treeNode[S]
	chunks map[uint64]S // populated only for fixed-width tables
	maxLen int
	width  int // shared code word width, 0 when widths vary
}

type treeNode[S comparable] struct {
	children [2]*treeNode[S]
	sym      S
	leaf     bool
}

// NewDecoder creates a decoder for the given code table.
//
// Returns errs.ErrEmptyTable when the table has no entries.
func NewDecoder[S comparable](table code.Table[S]) (*Decoder[S], error) {
	if table.Len() == 0 {
		return nil, errs.ErrEmptyTable
	}

	root := &treeNode[S]{}
	for sym, c := range table.All() {
		node := root
		for i := range c.Len() {
			bit := c.Bit(i)
			if node.children[bit] == nil {
				node.children[bit] = &treeNode[S]{}
			}
			node = node.children[bit]
		}
		node.sym = sym
		node.leaf = true
	}

	dec := &Decoder[S]{
		table:  table,
		root:   root,
		maxLen: table.MaxCodeLen(),
	}

	if width, ok := table.FixedWidth(); ok {
		dec.width = width
		dec.chunks = make(map[uint64]S, table.Len())
		for sym, c := range table.All() {
			dec.chunks[c.Uint64()] = sym
		}
	}

	return dec, nil
}

// Table returns the code table the decoder was built with.
func (d *Decoder[S]) Table() code.Table[S] {
	return d.table
}

// Decode decodes the bit stream into tokens.
//
// A stream that ends mid-codeword returns the tokens decoded so far
// together with errs.ErrTruncatedStream wrapped with the number of bits
// left pending.
func (d *Decoder[S]) Decode(bits bitstream.Bits) ([]Token[S], error) {
	tokens := make([]Token[S], 0, bits.Len()/d.maxLen)
	collect := func(tok Token[S]) bool {
		tokens = append(tokens, tok)
		return true
	}

	r := bitstream.NewReader(bits)

	var pending int
	if d.width > 0 {
		pending = d.decodeFixed(r, collect)
	} else {
		pending = d.walk(r, collect)
	}

	if pending > 0 {
		return tokens, fmt.Errorf("%w: %d bits pending after last token", errs.ErrTruncatedStream, pending)
	}

	return tokens, nil
}

// All returns an iterator over the decoded tokens.
//
// Unlike Decode it has no error channel: a stream that ends mid-codeword
// yields one final unknown-marker token instead.
func (d *Decoder[S]) All(bits bitstream.Bits) iter.Seq[Token[S]] {
	return func(yield func(Token[S]) bool) {
		r := bitstream.NewReader(bits)
		if pending := d.walk(r, yield); pending > 0 {
			yield(Token[S]{Unknown: true})
		}
	}
}

// walk is the general bit-by-bit tree walk. It emits tokens through emit
// until the stream ends or emit returns false, and reports how many bits
// were consumed after the last emitted token.
func (d *Decoder[S]) walk(r *bitstream.Reader, emit func(Token[S]) bool) int {
	node := d.root
	pending := 0

	for {
		bit, ok := r.ReadBit()
		if !ok {
			return pending
		}
		pending++

		if node != nil {
			node = node.children[bit]
		}

		if node == nil {
			// Dead branch: no code word starts with the pending run. Swallow
			// bits until the run is maxLen+1 long, stand in one marker for
			// it, and restart at the root.
			if pending == d.maxLen+1 {
				if !emit(Token[S]{Unknown: true}) {
					return 0
				}
				node = d.root
				pending = 0
			}

			continue
		}

		if node.leaf {
			if !emit(Token[S]{Sym: node.sym}) {
				return 0
			}
			node = d.root
			pending = 0
		}
	}
}

// decodeFixed is the chunked fast path for tables whose code words all
// share one width: it reads width bits at a time and resolves them with a
// single map lookup instead of walking the tree.
func (d *Decoder[S]) decodeFixed(r *bitstream.Reader, emit func(Token[S]) bool) int {
	for r.Remaining() >= d.width {
		chunk, _ := r.ReadBits(d.width)
		if sym, ok := d.chunks[chunk]; ok {
			if !emit(Token[S]{Sym: sym}) {
				return 0
			}

			continue
		}

		// No symbol owns this chunk. The tree walk would consume one more
		// bit before giving up on the run, so mirror it bit for bit.
		if _, ok := r.ReadBit(); !ok {
			return d.width
		}
		if !emit(Token[S]{Unknown: true}) {
			return 0
		}
	}

	return r.Remaining()
}

// Decode is a one-shot convenience that builds a decoder for table and
// decodes bits with it.
func Decode[S comparable](bits bitstream.Bits, table code.Table[S]) ([]Token[S], error) {
	dec, err := NewDecoder(table)
	if err != nil {
		return nil, err
	}

	return dec.Decode(bits)
}
