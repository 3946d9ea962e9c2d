package codec

import (
	"encoding/binary"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/arloliu/tuple/element"
	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
	"github.com/arloliu/tuple/internal/ordered"
)

// Encode returns the canonical encoding of elems.
//
// The output buffer is sized exactly once from EncodedSize, so encoding never
// grows a buffer. An empty sequence encodes to an empty, non-nil slice.
//
// Parameters:
//   - elems: Elements to encode, in order
//
// Returns:
//   - []byte: Canonical encoding
//   - error: errs.ErrInvalidText for text that is not UTF-8, errs.ErrOverflow for
//     big integers longer than 255 bytes, errs.ErrUnsupportedKind for unknown kinds
func Encode(elems ...element.Element) ([]byte, error) {
	size, err := EncodedSize(elems...)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, size)
	for _, e := range elems {
		buf = appendElement(buf, e)
	}

	return buf, nil
}

// Append appends the canonical encoding of elems to dst.
// On error dst is returned unchanged alongside the error.
func Append(dst []byte, elems ...element.Element) ([]byte, error) {
	size, err := EncodedSize(elems...)
	if err != nil {
		return dst, err
	}

	buf := slices.Grow(dst, size)
	for _, e := range elems {
		buf = appendElement(buf, e)
	}

	return buf, nil
}

// EncodedSize returns the number of bytes Encode produces for elems.
// It validates every element, so a nil error guarantees encoding succeeds.
func EncodedSize(elems ...element.Element) (int, error) {
	total := 0
	for i, e := range elems {
		n, err := elementSize(e)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}
		total += n
	}

	return total, nil
}

func elementSize(e element.Element) (int, error) {
	switch e.Kind() {
	case format.KindNull, format.KindBool:
		return 1, nil
	case format.KindBytes:
		return 1 + escapedSize(e.Payload()), nil
	case format.KindText:
		if !utf8.ValidString(e.Payload()) {
			return 0, errs.ErrInvalidText
		}

		return 1 + escapedSize(e.Payload()), nil
	case format.KindInt32, format.KindInt64:
		return intSize(e.Int64Value()), nil
	case format.KindBigInt:
		v := e.BigValue()
		if (v.BitLen()+7)/8 > format.MaxBigIntBytes {
			return 0, fmt.Errorf("%w: big integer of %d bits exceeds %d bytes",
				errs.ErrOverflow, v.BitLen(), format.MaxBigIntBytes)
		}

		return bigIntSize(v), nil
	case format.KindFloat32:
		return float32Size, nil
	case format.KindFloat64:
		return float64Size, nil
	case format.KindUUID:
		return uuidSize, nil
	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, e.Kind())
	}
}

func intSize(v int64) int {
	if v >= 0 {
		return 1 + byteLen(uint64(v))
	}

	return 1 + byteLen(uint64(^v)+1)
}

// appendElement appends one element that elementSize has already validated.
func appendElement(dst []byte, e element.Element) []byte {
	switch e.Kind() {
	case format.KindNull:
		return append(dst, byte(format.CodeNull))
	case format.KindBytes:
		return appendEscaped(append(dst, byte(format.CodeBytes)), e.Payload())
	case format.KindText:
		return appendEscaped(append(dst, byte(format.CodeText)), e.Payload())
	case format.KindBool:
		if e.Int64Value() != 0 {
			return append(dst, byte(format.CodeTrue))
		}

		return append(dst, byte(format.CodeFalse))
	case format.KindInt32, format.KindInt64:
		return appendInt64(dst, e.Int64Value())
	case format.KindBigInt:
		return appendBigInt(dst, e.BigValue())
	case format.KindFloat32:
		dst = append(dst, byte(format.CodeFloat32))

		return binary.BigEndian.AppendUint32(dst, ordered.EncodeBits32(e.Float32Bits()))
	case format.KindFloat64:
		dst = append(dst, byte(format.CodeFloat64))

		return binary.BigEndian.AppendUint64(dst, ordered.EncodeBits64(e.Float64Bits()))
	case format.KindUUID:
		u, _ := e.AsUUID()
		dst = append(dst, byte(format.CodeUUID))
		dst = binary.BigEndian.AppendUint64(dst, u.High)

		return binary.BigEndian.AppendUint64(dst, u.Low)
	default:
		return dst
	}
}
