package ratio

import (
	"fmt"

	"github.com/arloliu/prefixcode/errs"
	"github.com/arloliu/prefixcode/format"
	"github.com/arloliu/prefixcode/internal/options"
)

// AnalyzeConfig holds configuration for a ratio analysis run.
type AnalyzeConfig struct {
	Baseline     format.CodeKind
	Compressions []format.CompressionType
}

// defaultAnalyzeConfig returns the default config (fixed-width binary
// baseline, no byte compressors).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Baseline: format.KindFixedBinary,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithBaseline selects the fixed-width code the Huffman code is measured
// against. Only format.KindFixedBinary and format.KindFixed7Bit qualify;
// anything else fails the analysis with errs.ErrInvalidCodeKind.
func WithBaseline(kind format.CodeKind) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if kind != format.KindFixedBinary && kind != format.KindFixed7Bit {
			return fmt.Errorf("%w: %s is not a fixed-width baseline", errs.ErrInvalidCodeKind, kind)
		}
		cfg.Baseline = kind

		return nil
	})
}

// WithCompression adds byte compressors to run over the raw text, one
// measurement per algorithm. Later calls replace earlier ones.
func WithCompression(types ...format.CompressionType) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Compressions = types
	})
}
