package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/tuple"
	"github.com/arloliu/tuple/compress"
	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/internal/hash"
	"github.com/arloliu/tuple/internal/options"
	"github.com/arloliu/tuple/internal/pool"
)

// Writer collects encoded tuples and serializes them into a key set blob.
//
// Keys may be added in any order; Finish sorts them and drops duplicates.
//
// Note: The Writer is NOT thread-safe.
type Writer struct {
	cfg      *WriterConfig
	codec    compress.Codec
	keys     [][]byte
	stats    compress.CompressionStats
	finished bool
}

// NewWriter creates a Writer.
//
// Parameters:
//   - opts: Optional configuration (WithCompression, WithExpectedKeys)
//
// Returns:
//   - *Writer: New writer instance
//   - error: Invalid option error
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := newWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "key set")
	if err != nil {
		return nil, err
	}

	return &Writer{
		cfg:   cfg,
		codec: codec,
		keys:  make([][]byte, 0, cfg.expectedKeys),
	}, nil
}

// Add adds the encoding of t.
func (w *Writer) Add(t tuple.Tuple) {
	w.keys = append(w.keys, t.Bytes())
}

// AddBytes adds an already encoded tuple. The bytes are validated by decoding
// and then copied.
func (w *Writer) AddBytes(key []byte) error {
	if _, err := tuple.Unpack(key); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	w.keys = append(w.keys, bytes.Clone(key))

	return nil
}

// Len returns the number of keys added so far, duplicates included.
func (w *Writer) Len() int {
	return len(w.keys)
}

// Stats returns the compression statistics of the finished blob.
// It is the zero value before Finish succeeds.
func (w *Writer) Stats() compress.CompressionStats {
	return w.stats
}

// Finish sorts and de-duplicates the keys and returns the serialized blob.
//
// The writer cannot be used after Finish; a second call returns ErrKeySetFinished.
//
// Returns:
//   - []byte: Key set blob (header followed by stored payload)
//   - error: ErrKeySetFinished, ErrInvalidKeyCount, ErrInvalidPayloadSize or compression errors
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrKeySetFinished
	}
	w.finished = true

	slices.SortFunc(w.keys, bytes.Compare)
	w.keys = slices.CompactFunc(w.keys, bytes.Equal)

	if uint64(len(w.keys)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKeyCount, len(w.keys))
	}

	buf := pool.GetKeySetBuffer()
	defer pool.PutKeySetBuffer(buf)

	buf.Grow(w.rawSize())
	for _, key := range w.keys {
		buf.B = binary.AppendUvarint(buf.B, uint64(len(key)))
		buf.MustWrite(key)
	}
	raw := buf.Bytes()

	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: raw payload of %d bytes", errs.ErrInvalidPayloadSize, len(raw))
	}

	stored, err := w.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress key set payload: %w", err)
	}

	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stored payload of %d bytes", errs.ErrInvalidPayloadSize, len(stored))
	}

	header := Header{
		Compression: w.cfg.compression,
		KeyCount:    uint32(len(w.keys)), //nolint:gosec
		RawSize:     uint32(len(raw)),    //nolint:gosec
		StoredSize:  uint32(len(stored)), //nolint:gosec
		Checksum:    hash.Sum(raw),
	}

	// stored may alias the pooled buffer, so it is copied before the buffer is returned
	blob := make([]byte, 0, HeaderSize+len(stored))
	blob = header.AppendTo(blob)
	blob = append(blob, stored...)

	w.stats = compress.CompressionStats{
		Algorithm:      w.cfg.compression,
		OriginalSize:   int64(len(raw)),
		CompressedSize: int64(len(stored)),
	}

	return blob, nil
}

func (w *Writer) rawSize() int {
	size := 0
	for _, key := range w.keys {
		size += uvarintLen(uint64(len(key))) + len(key)
	}

	return size
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
