// Package code defines the data model shared by all prefix-code packages:
// the Bitstring code word and the Table mapping symbols to code words.
//
// A Bitstring is a value type holding up to 64 bits. Code words longer than
// 64 bits cannot occur in practice: a Huffman tree only reaches depth d when
// the corpus weight is at least the (d+2)-th Fibonacci number, and depth 65
// would require more symbols than fit in memory. Builders enforce the bound
// explicitly instead of truncating.
//
// A Table is an immutable symbol-to-Bitstring mapping. Every valid table is
// prefix-free: no code word is a prefix of another and no two symbols share
// a code word. This property is what allows decoders to recover symbol
// boundaries from a bare bit sequence without delimiters. NewTable validates
// the property; the builder packages (huffman, fixed) only produce valid
// tables.
//
// Tables are generic over any comparable symbol type. The root prefixcode
// package instantiates them with rune for text corpora; tests also exercise
// integer and string symbols.
package code
