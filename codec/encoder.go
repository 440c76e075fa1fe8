package codec

import (
	"fmt"

	"github.com/arloliu/prefixcode/bitstream"
	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/errs"
)

// Encoder turns symbol streams into bit streams using a fixed code table.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder[S comparable] struct {
	table code.Table[S]
}

// NewEncoder creates an encoder for the given code table.
//
// Returns errs.ErrEmptyTable when the table has no entries.
func NewEncoder[S comparable](table code.Table[S]) (*Encoder[S], error) {
	if table.Len() == 0 {
		return nil, errs.ErrEmptyTable
	}

	return &Encoder[S]{table: table}, nil
}

// Table returns the code table the encoder was built with.
func (e *Encoder[S]) Table() code.Table[S] {
	return e.table
}

// Encode concatenates the code words of symbols into a single bit stream,
// first symbol first, each code word most significant bit first.
//
// A symbol missing from the table aborts the encode and returns
// errs.ErrUnknownSymbol wrapped with the symbol and its position; no
// partial stream is returned.
func (e *Encoder[S]) Encode(symbols []S) (bitstream.Bits, error) {
	w := bitstream.NewWriter()
	defer w.Finish()

	for i, sym := range symbols {
		c, ok := e.table.Code(sym)
		if !ok {
			return bitstream.Bits{}, fmt.Errorf("%w: %v at position %d", errs.ErrUnknownSymbol, sym, i)
		}
		w.WriteBits(c.Uint64(), c.Len())
	}

	return w.Bits(), nil
}

// Encode is a one-shot convenience that builds an encoder for table and
// encodes symbols with it.
func Encode[S comparable](symbols []S, table code.Table[S]) (bitstream.Bits, error) {
	enc, err := NewEncoder(table)
	if err != nil {
		return bitstream.Bits{}, err
	}

	return enc.Encode(symbols)
}
