// Package ratio measures how well a corpus-trained Huffman code packs a
// text against fixed-width baselines and byte-level compressors.
//
// The headline number is the compression ratio: the bits a fixed-width
// code would spend on the text divided by the bits the Huffman code
// spends. A ratio of 1.8x means the Huffman table packs the same text
// into 1/1.8 of the baseline's bits. The baseline defaults to the
// smallest fixed-width binary code that covers the corpus alphabet and
// can be switched to the 7-bit ASCII code.
//
// A report can also carry byte-compressor measurements of the raw text
// (Zstd, S2, LZ4) so that code-level packing and byte-level compression
// show up side by side:
//
//	report, err := ratio.Analyze(text, corpus,
//	    ratio.WithBaseline(format.KindFixed7Bit),
//	    ratio.WithCompression(format.CompressionZstd, format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.2fx over 7-bit, huffman packs to %d bytes\n",
//	    report.Ratio(), report.Huffman.PackedBytes)
//
// The text and the training corpus may differ; every symbol of the text
// must appear in the corpus or Analyze fails with errs.ErrUnknownSymbol.
package ratio
