// Package huffman derives frequency-optimal prefix codes from corpora.
//
// The builder follows the classic greedy construction: every distinct symbol
// starts as a leaf weighted by its occurrence count, and the two
// lowest-weight groups are repeatedly merged into a parent node until a
// single tree remains. Code words are then read off the tree in one
// root-to-leaf traversal, taking 0 for the low branch and 1 for the high
// branch, so frequent symbols end up near the root with short codes.
//
// Ties are broken deterministically: leaves are ordered by first appearance
// in the corpus, merged nodes by creation order after all leaves, and the
// lower-ordered group of a merge becomes the 0 branch. Two builds over the
// same corpus therefore always produce identical tables.
//
// The builder also reports the average code length in bits per corpus
// symbol. Each merge adds the combined weight of its two groups to the total
// bit count, which equals the sum over symbols of count times code length.
// A corpus with a single distinct symbol yields the one-bit code "0" and an
// average of 1.0, since zero-length codes cannot be decoded.
package huffman

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/arloliu/prefixcode/code"
	"github.com/arloliu/prefixcode/errs"
)

// SymbolCount pairs a symbol with its occurrence count.
type SymbolCount[S comparable] struct {
	Symbol S
	Count  int64
}

// Build derives a Huffman code table from the corpus and returns it together
// with the average code length in bits per corpus symbol.
//
// Returns errs.ErrEmptyCorpus if the corpus has no symbols.
func Build[S comparable](corpus []S) (code.Table[S], float64, error) {
	if len(corpus) == 0 {
		return code.Table[S]{}, 0, errs.ErrEmptyCorpus
	}

	return FromCounts(CountSymbols(corpus))
}

// CountSymbols tallies the distinct symbols of the corpus in first-seen
// order. The order matters: it is the tie-break rule that makes code
// construction deterministic.
func CountSymbols[S comparable](corpus []S) []SymbolCount[S] {
	index := make(map[S]int, 16)
	counts := make([]SymbolCount[S], 0, 16)

	for _, sym := range corpus {
		if i, ok := index[sym]; ok {
			counts[i].Count++
			continue
		}
		index[sym] = len(counts)
		counts = append(counts, SymbolCount[S]{Symbol: sym, Count: 1})
	}

	return counts
}

// FromCounts derives a Huffman code table from pre-counted symbols and
// returns it together with the average code length in bits per symbol
// occurrence.
//
// The slice order stands in for first-seen order during tie-breaking, so
// callers get the same determinism guarantee as Build. Zero counts are
// skipped; duplicate symbols are merged by summing their counts at the
// position of the first occurrence.
//
// Returns:
//   - errs.ErrInvalidCount if any count is negative
//   - errs.ErrEmptyCorpus if no symbol has a positive count
//   - errs.ErrCodeTooLong if a code word would exceed code.MaxCodeLen bits,
//     which requires astronomically skewed counts
func FromCounts[S comparable](counts []SymbolCount[S]) (code.Table[S], float64, error) {
	leaves := make([]*node[S], 0, len(counts))
	index := make(map[S]int, len(counts))
	var total int64

	for _, sc := range counts {
		if sc.Count < 0 {
			return code.Table[S]{}, 0, fmt.Errorf("%w: symbol %v has count %d", errs.ErrInvalidCount, sc.Symbol, sc.Count)
		}
		if sc.Count == 0 {
			continue
		}

		total = saturatingAdd(total, sc.Count)
		if i, ok := index[sc.Symbol]; ok {
			leaves[i].count = saturatingAdd(leaves[i].count, sc.Count)
			continue
		}
		index[sc.Symbol] = len(leaves)
		leaves = append(leaves, &node[S]{
			sym:   sc.Symbol,
			count: sc.Count,
			seq:   len(leaves),
		})
	}

	if len(leaves) == 0 {
		return code.Table[S]{}, 0, errs.ErrEmptyCorpus
	}

	// Degenerate alphabet: a zero-length code cannot be decoded, so the
	// single symbol gets the one-bit code "0".
	if len(leaves) == 1 {
		table, err := code.NewTable(map[S]code.Bitstring{
			leaves[0].sym: code.MakeBitstring(1, 0),
		})
		if err != nil {
			return code.Table[S]{}, 0, err
		}

		return table, 1.0, nil
	}

	root, totalBits := mergeGroups(leaves)

	codes := make(map[S]code.Bitstring, len(leaves))
	if err := assignCodes(root, code.Bitstring{}, codes); err != nil {
		return code.Table[S]{}, 0, err
	}

	table, err := code.NewTable(codes)
	if err != nil {
		return code.Table[S]{}, 0, err
	}

	return table, float64(totalBits) / float64(total), nil
}

// node is a group in the merge tree: a leaf carrying one symbol, or an
// internal node with exactly two children.
type node[S comparable] struct {
	sym   S
	count int64
	seq   int // tie-break order: leaves by first appearance, merges after
	left  *node[S]
	right *node[S]
}

func (n *node[S]) leaf() bool {
	return n.left == nil
}

// mergeGroups runs the greedy merge loop over the leaves and returns the
// tree root together with the accumulated total bit count.
func mergeGroups[S comparable](leaves []*node[S]) (*node[S], int64) {
	h := make(nodeHeap[S], len(leaves))
	copy(h, leaves)
	heap.Init(&h)

	seq := len(leaves)
	var totalBits int64

	for h.Len() > 1 {
		lo := heap.Pop(&h).(*node[S])
		hi := heap.Pop(&h).(*node[S])

		merged := &node[S]{
			count: saturatingAdd(lo.count, hi.count),
			seq:   seq,
			left:  lo,
			right: hi,
		}
		seq++

		// Each merge lengthens every code word under it by one bit, so the
		// merged weight is exactly the bit cost the merge adds.
		totalBits = saturatingAdd(totalBits, merged.count)
		heap.Push(&h, merged)
	}

	return h[0], totalBits
}

// assignCodes derives each leaf's code word from its root-to-leaf path in a
// single traversal: 0 for the low branch, 1 for the high branch.
func assignCodes[S comparable](n *node[S], prefix code.Bitstring, codes map[S]code.Bitstring) error {
	if n.leaf() {
		codes[n.sym] = prefix
		return nil
	}

	if prefix.Len() >= code.MaxCodeLen {
		return fmt.Errorf("%w: merge tree deeper than %d levels", errs.ErrCodeTooLong, code.MaxCodeLen)
	}

	if err := assignCodes(n.left, prefix.AppendBit(0), codes); err != nil {
		return err
	}

	return assignCodes(n.right, prefix.AppendBit(1), codes)
}

func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if sum < a {
		return math.MaxInt64
	}

	return sum
}

// nodeHeap is a min-heap of groups ordered by (count, seq).
type nodeHeap[S comparable] []*node[S]

func (h nodeHeap[S]) Len() int { return len(h) }

func (h nodeHeap[S]) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count < h[j].count
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[S]) Push(x any) {
	*h = append(*h, x.(*node[S]))
}

func (h *nodeHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
