package keyset

import (
	"fmt"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
	"github.com/arloliu/tuple/internal/options"
)

// WriterConfig holds the settings a Writer is created with.
type WriterConfig struct {
	compression  format.CompressionType
	expectedKeys int
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		compression: format.CompressionZstd,
	}
}

// WriterOption is a functional option for configuring Writer.
type WriterOption = options.Option[*WriterConfig]

// WithCompression sets the compression applied to the payload.
// Available compression types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionZstd.
func WithCompression(comp format.CompressionType) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if err := validateCompression(comp); err != nil {
			return err
		}
		cfg.compression = comp

		return nil
	})
}

// WithExpectedKeys preallocates room for n keys.
func WithExpectedKeys(n int) WriterOption {
	return options.New(func(cfg *WriterConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidExpectedKeys, n)
		}
		cfg.expectedKeys = n

		return nil
	})
}
