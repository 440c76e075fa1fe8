package format

type (
	CodeKind        uint8
	CompressionType uint8
)

const (
	KindHuffman     CodeKind = 0x1 // KindHuffman represents a frequency-derived Huffman code.
	KindFixedBinary CodeKind = 0x2 // KindFixedBinary represents a fixed-width binary code.
	KindFixed7Bit   CodeKind = 0x3 // KindFixed7Bit represents a fixed 7-bit ordinal code.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k CodeKind) String() string {
	switch k {
	case KindHuffman:
		return "Huffman"
	case KindFixedBinary:
		return "FixedBinary"
	case KindFixed7Bit:
		return "Fixed7Bit"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
