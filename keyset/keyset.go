package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/tuple"
	"github.com/arloliu/tuple/compress"
	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
	"github.com/arloliu/tuple/internal/hash"
)

// KeySet is a decoded, immutable key set. It is safe for concurrent reads.
type KeySet struct {
	keys   []tuple.Tuple
	header Header
}

// sizedDecompressor is implemented by codecs that can use the known raw size
// to allocate their output once.
type sizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Decode parses a key set blob.
//
// The returned KeySet does not reference data.
//
// Returns:
//   - *KeySet: Decoded key set
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidCompression,
//     ErrInvalidPayloadSize, ErrChecksumMismatch, ErrKeysNotSorted,
//     ErrInvalidKeyCount, or a tuple decoding error for a malformed key
func Decode(data []byte) (*KeySet, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if uint64(len(stored)) != uint64(header.StoredSize) {
		return nil, fmt.Errorf("%w: header declares %d stored bytes, blob has %d",
			errs.ErrInvalidPayloadSize, header.StoredSize, len(stored))
	}

	raw, err := decompress(header, stored)
	if err != nil {
		return nil, err
	}

	if uint64(len(raw)) != uint64(header.RawSize) {
		return nil, fmt.Errorf("%w: header declares %d raw bytes, payload has %d",
			errs.ErrInvalidPayloadSize, header.RawSize, len(raw))
	}

	if sum := hash.Sum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	keys, err := parseKeys(raw, header.KeyCount)
	if err != nil {
		return nil, err
	}

	return &KeySet{keys: keys, header: header}, nil
}

func decompress(header Header, stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return nil, nil
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if sized, ok := codec.(sizedDecompressor); ok {
		raw, err = sized.DecompressSize(stored, int(header.RawSize))
	} else {
		raw, err = codec.Decompress(stored)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress key set payload: %w", err)
	}

	return raw, nil
}

func parseKeys(raw []byte, count uint32) ([]tuple.Tuple, error) {
	// every key takes at least its length byte
	keys := make([]tuple.Tuple, 0, min(uint64(count), uint64(len(raw))))

	var prev []byte
	for off := 0; off < len(raw); {
		n, k := binary.Uvarint(raw[off:])
		if k <= 0 {
			return nil, fmt.Errorf("%w: bad key length at offset %d", errs.ErrInvalidPayloadSize, off)
		}
		off += k

		if n > uint64(len(raw)-off) {
			return nil, fmt.Errorf("%w: key %d needs %d bytes, %d remain",
				errs.ErrInvalidPayloadSize, len(keys), n, len(raw)-off)
		}
		key := raw[off : off+int(n)] //nolint:gosec
		off += int(n)                //nolint:gosec

		if len(keys) > 0 && bytes.Compare(prev, key) >= 0 {
			return nil, fmt.Errorf("%w: key %d", errs.ErrKeysNotSorted, len(keys))
		}

		t, err := tuple.FromBytes(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", len(keys), err)
		}
		keys = append(keys, t)
		prev = key
	}

	if uint64(len(keys)) != uint64(count) {
		return nil, fmt.Errorf("%w: header declares %d keys, payload has %d", errs.ErrInvalidKeyCount, count, len(keys))
	}

	return keys, nil
}

// Len returns the number of keys.
func (ks *KeySet) Len() int {
	return len(ks.keys)
}

// Compression returns the compression the blob was stored with.
func (ks *KeySet) Compression() format.CompressionType {
	return ks.header.Compression
}

// Stats returns the payload sizes recorded in the blob header.
func (ks *KeySet) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      ks.header.Compression,
		OriginalSize:   int64(ks.header.RawSize),
		CompressedSize: int64(ks.header.StoredSize),
	}
}

// At returns the key at index i in ascending order. It panics if i is out of range.
func (ks *KeySet) At(i int) tuple.Tuple {
	return ks.keys[i]
}

// All iterates over the keys in ascending order.
func (ks *KeySet) All() iter.Seq2[int, tuple.Tuple] {
	return func(yield func(int, tuple.Tuple) bool) {
		for i, t := range ks.keys {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Seek returns the index of the first key not less than t, or Len() if every
// key is less than t.
func (ks *KeySet) Seek(t tuple.Tuple) int {
	i, _ := ks.search(t)
	return i
}

// Contains reports whether t is in the set.
func (ks *KeySet) Contains(t tuple.Tuple) bool {
	_, found := ks.search(t)
	return found
}

func (ks *KeySet) search(t tuple.Tuple) (int, bool) {
	return slices.BinarySearchFunc(ks.keys, t, func(a, b tuple.Tuple) int {
		return a.Compare(b)
	})
}
