package keyset

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
)

const (
	// HeaderSize is the fixed size of the key set header in bytes.
	HeaderSize = 24
	// MagicNumber identifies a key set blob.
	MagicNumber uint16 = 0xEC10
)

// Header is the fixed-size header at the start of a key set blob.
type Header struct {
	// Compression is the algorithm applied to the payload.
	Compression format.CompressionType // byte offset 2
	// KeyCount is the number of keys in the payload.
	KeyCount uint32 // byte offset 4-7
	// RawSize is the payload size before compression.
	RawSize uint32 // byte offset 8-11
	// StoredSize is the payload size as stored after the header.
	StoredSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the raw payload.
	Checksum uint64 // byte offset 16-23
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber or ErrInvalidCompression
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != MagicNumber {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, magic)
	}

	h.Compression = format.CompressionType(data[2])
	if err := validateCompression(h.Compression); err != nil {
		return err
	}

	h.KeyCount = binary.LittleEndian.Uint32(data[4:8])
	h.RawSize = binary.LittleEndian.Uint32(data[8:12])
	h.StoredSize = binary.LittleEndian.Uint32(data[12:16])
	h.Checksum = binary.LittleEndian.Uint64(data[16:24])

	return nil
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, MagicNumber)
	dst = append(dst, byte(h.Compression), 0)
	dst = binary.LittleEndian.AppendUint32(dst, h.KeyCount)
	dst = binary.LittleEndian.AppendUint32(dst, h.RawSize)
	dst = binary.LittleEndian.AppendUint32(dst, h.StoredSize)

	return binary.LittleEndian.AppendUint64(dst, h.Checksum)
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseHeader parses a Header from the start of a key set blob.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or header validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

func validateCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, comp)
	}
}
