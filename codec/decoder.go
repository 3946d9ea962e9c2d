package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/arloliu/tuple/element"
	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
	"github.com/arloliu/tuple/internal/ordered"
)

// Decoder walks an encoded tuple element by element.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a Decoder positioned at the start of data.
// The decoder reads data but never modifies it.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// HasNext reports whether any bytes remain after the cursor.
func (d *Decoder) HasNext() bool {
	return d.pos < len(d.data)
}

// Offset returns the cursor position.
func (d *Decoder) Offset() int {
	return d.pos
}

// Peek classifies the element at the cursor without consuming it.
func (d *Decoder) Peek() (Class, error) {
	return Classify(d.data, d.pos)
}

// Next decodes the element at the cursor and advances past it.
// On error the cursor does not move.
func (d *Decoder) Next() (element.Element, error) {
	class, err := d.Peek()
	if err != nil {
		return element.Element{}, err
	}

	raw := d.data[d.pos : d.pos+class.Size]
	elem, err := decodeElement(raw, class)
	if err != nil {
		return element.Element{}, fmt.Errorf("%w at offset %d", err, d.pos)
	}

	d.pos += class.Size

	return elem, nil
}

// Decode decodes every element in data.
//
// Empty data decodes to an empty, non-nil sequence. On any error no elements are returned.
//
// Parameters:
//   - data: Encoded tuple bytes
//
// Returns:
//   - []element.Element: Decoded elements in order
//   - error: Truncation, invalid tag, unterminated payload or invalid text errors
func Decode(data []byte) ([]element.Element, error) {
	d := NewDecoder(data)
	elems := make([]element.Element, 0, 4)

	for d.HasNext() {
		elem, err := d.Next()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	return elems, nil
}

// decodeElement decodes one classified element. raw spans exactly class.Size bytes.
func decodeElement(raw []byte, class Class) (element.Element, error) {
	switch class.Kind {
	case format.KindNull:
		return element.Null(), nil

	case format.KindBytes:
		return element.BytesFromString(unescape(raw[1 : len(raw)-1])), nil

	case format.KindText:
		s := unescape(raw[1 : len(raw)-1])
		if !utf8.ValidString(s) {
			return element.Element{}, errs.ErrInvalidText
		}

		return element.Text(s), nil

	case format.KindBool:
		return element.Bool(class.Code == format.CodeTrue), nil

	case format.KindInt32, format.KindInt64, format.KindBigInt:
		return decodeInt(raw, class), nil

	case format.KindFloat32:
		stored := binary.BigEndian.Uint32(raw[1:])

		return element.Float32FromBits(ordered.DecodeBits32(stored)), nil

	case format.KindFloat64:
		stored := binary.BigEndian.Uint64(raw[1:])

		return element.Float64FromBits(ordered.DecodeBits64(stored)), nil

	case format.KindUUID:
		return element.UUIDValue(element.UUID{
			High: binary.BigEndian.Uint64(raw[1:9]),
			Low:  binary.BigEndian.Uint64(raw[9:17]),
		}), nil

	default:
		return element.Element{}, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, class.Kind)
	}
}

func decodeInt(raw []byte, class Class) element.Element {
	if !class.Code.IsInt() {
		return element.BigInt(decodeBigPayload(raw[2:], class.Code == format.CodeNegBigInt))
	}

	_, negative := class.Code.IntBytes()
	mag := intMagnitude(raw[1:], negative)

	if class.Kind == format.KindBigInt {
		v := new(big.Int).SetUint64(mag)
		if negative {
			v.Neg(v)
		}

		return element.BigInt(v)
	}

	v := int64(mag) //nolint:gosec
	if negative {
		v = int64(^mag + 1) //nolint:gosec
	}

	if class.Kind == format.KindInt32 {
		return element.Int32(int32(v)) //nolint:gosec
	}

	return element.Int64(v)
}
