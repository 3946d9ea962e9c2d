package codec

import (
	"fmt"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
)

const (
	float32Size = 1 + 4
	float64Size = 1 + 8
	uuidSize    = 1 + 16
)

// Class describes the element that starts at a given offset.
type Class struct {
	// Kind is the element kind the decoder will produce.
	Kind format.Kind
	// Code is the type code byte.
	Code format.TypeCode
	// Size is the full encoded length of the element, type code included.
	Size int
}

// Classify determines which element starts at data[pos] and how many bytes it spans.
//
// It is a pure lookahead: nothing is decoded and no state changes. For integer
// codes the payload is inspected to pick the narrowest integer kind that holds
// the value; for bytes and text the terminator is located, which validates the
// escaping without unescaping the payload.
//
// Only canonical integer forms are accepted: a payload may not start with a
// padding byte, and the explicit big markers must carry more than 8 bytes.
// Every accepted encoding is therefore the one Encode produces for its value.
//
// Returns:
//   - Class: Kind, type code and encoded size of the element
//   - error: errs.ErrTruncated, errs.ErrInvalidTag, errs.ErrUnterminatedPayload
//     or errs.ErrNonCanonical
func Classify(data []byte, pos int) (Class, error) {
	if pos < 0 || pos >= len(data) {
		return Class{}, fmt.Errorf("%w: no element at offset %d", errs.ErrTruncated, pos)
	}

	code := format.TypeCode(data[pos])
	switch {
	case code == format.CodeNull:
		return Class{Kind: format.KindNull, Code: code, Size: 1}, nil

	case code == format.CodeBytes || code == format.CodeText:
		end, ok := findTerminator(data, pos+1)
		if !ok {
			return Class{}, fmt.Errorf("%w: %s at offset %d", errs.ErrUnterminatedPayload, code, pos)
		}

		kind := format.KindBytes
		if code == format.CodeText {
			kind = format.KindText
		}

		return Class{Kind: kind, Code: code, Size: end + 1 - pos}, nil

	case code.IsInt():
		n, negative := code.IntBytes()
		if err := checkRemaining(data, pos, code, 1+n); err != nil {
			return Class{}, err
		}

		payload := data[pos+1 : pos+1+n]
		if n > 0 && payload[0] == padByte(negative) {
			return Class{}, fmt.Errorf("%w: %s at offset %d has a padded payload", errs.ErrNonCanonical, code, pos)
		}

		mag := intMagnitude(payload, negative)

		return Class{Kind: intKind(mag, negative), Code: code, Size: 1 + n}, nil

	case code == format.CodePosBigInt || code == format.CodeNegBigInt:
		if err := checkRemaining(data, pos, code, 2); err != nil {
			return Class{}, err
		}

		negative := code == format.CodeNegBigInt
		n := int(data[pos+1])
		if negative {
			n = int(^data[pos+1])
		}

		// magnitudes of up to 8 bytes use the centered integer codes
		if n <= format.MaxIntBytes {
			return Class{}, fmt.Errorf("%w: %s at offset %d holds only %d bytes", errs.ErrNonCanonical, code, pos, n)
		}

		if err := checkRemaining(data, pos, code, 2+n); err != nil {
			return Class{}, err
		}

		if data[pos+2] == padByte(negative) {
			return Class{}, fmt.Errorf("%w: %s at offset %d has a padded payload", errs.ErrNonCanonical, code, pos)
		}

		return Class{Kind: format.KindBigInt, Code: code, Size: 2 + n}, nil

	case code == format.CodeFloat32:
		return fixedClass(data, pos, code, format.KindFloat32, float32Size)

	case code == format.CodeFloat64:
		return fixedClass(data, pos, code, format.KindFloat64, float64Size)

	case code == format.CodeFalse || code == format.CodeTrue:
		return Class{Kind: format.KindBool, Code: code, Size: 1}, nil

	case code == format.CodeUUID:
		return fixedClass(data, pos, code, format.KindUUID, uuidSize)

	default:
		return Class{}, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidTag, uint8(code), pos)
	}
}

// padByte is the leading payload byte that marks a magnitude longer than needed.
func padByte(negative bool) byte {
	if negative {
		return 0xFF
	}

	return 0x00
}

func fixedClass(data []byte, pos int, code format.TypeCode, kind format.Kind, size int) (Class, error) {
	if err := checkRemaining(data, pos, code, size); err != nil {
		return Class{}, err
	}

	return Class{Kind: kind, Code: code, Size: size}, nil
}

func checkRemaining(data []byte, pos int, code format.TypeCode, size int) error {
	if remaining := len(data) - pos; remaining < size {
		return fmt.Errorf("%w: %s at offset %d needs %d bytes, %d remain",
			errs.ErrTruncated, code, pos, size, remaining)
	}

	return nil
}
