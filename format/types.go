package format

import "fmt"

type (
	// TypeCode is the leading byte of an encoded element.
	TypeCode uint8
	// Kind identifies the decoded variant held by an element.
	Kind            uint8
	CompressionType uint8
)

const (
	CodeNull       TypeCode = 0x00 // CodeNull represents the null marker.
	CodeBytes      TypeCode = 0x01 // CodeBytes represents a null-terminated byte string.
	CodeText       TypeCode = 0x02 // CodeText represents a null-terminated UTF-8 string.
	CodeNegBigInt  TypeCode = 0x0b // CodeNegBigInt represents a negative integer longer than 8 bytes.
	CodeNegIntMin  TypeCode = 0x0c // CodeNegIntMin represents a negative integer with 8 magnitude bytes.
	CodeIntZero    TypeCode = 0x14 // CodeIntZero represents the integer zero.
	CodePosIntMax  TypeCode = 0x1c // CodePosIntMax represents a positive integer with 8 magnitude bytes.
	CodePosBigInt  TypeCode = 0x1d // CodePosBigInt represents a positive integer longer than 8 bytes.
	CodeFloat32    TypeCode = 0x20 // CodeFloat32 represents an IEEE-754 binary32 value.
	CodeFloat64    TypeCode = 0x21 // CodeFloat64 represents an IEEE-754 binary64 value.
	CodeFalse      TypeCode = 0x26 // CodeFalse represents boolean false.
	CodeTrue       TypeCode = 0x27 // CodeTrue represents boolean true.
	CodeUUID       TypeCode = 0x30 // CodeUUID represents a 128-bit UUID.
	MaxIntBytes             = 8    // MaxIntBytes is the widest magnitude covered by the centered integer codes.
	MaxBigIntBytes          = 255  // MaxBigIntBytes is the widest magnitude a single length byte can declare.
)

const (
	KindNull    Kind = iota // KindNull represents the null marker.
	KindBytes               // KindBytes represents a byte string.
	KindText                // KindText represents UTF-8 text.
	KindBool                // KindBool represents a boolean.
	KindInt32               // KindInt32 represents an integer that fits in 32 signed bits.
	KindInt64               // KindInt64 represents an integer that fits in 64 signed bits but not 32.
	KindBigInt              // KindBigInt represents an arbitrary-precision integer.
	KindFloat32             // KindFloat32 represents a 32-bit float.
	KindFloat64             // KindFloat64 represents a 64-bit float.
	KindUUID                // KindUUID represents a 128-bit UUID.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IntCode returns the centered integer code for a magnitude of n bytes.
// n must be in [0, MaxIntBytes].
func IntCode(n int, negative bool) TypeCode {
	if negative {
		return CodeIntZero - TypeCode(n) //nolint:gosec
	}

	return CodeIntZero + TypeCode(n) //nolint:gosec
}

// IsInt reports whether c is one of the centered integer codes.
func (c TypeCode) IsInt() bool {
	return c >= CodeNegIntMin && c <= CodePosIntMax
}

// IntBytes returns the magnitude byte count of a centered integer code and
// whether the code denotes a negative value.
func (c TypeCode) IntBytes() (int, bool) {
	if c < CodeIntZero {
		return int(CodeIntZero - c), true
	}

	return int(c - CodeIntZero), false
}

func (c TypeCode) String() string {
	switch {
	case c == CodeNull:
		return "Null"
	case c == CodeBytes:
		return "Bytes"
	case c == CodeText:
		return "Text"
	case c == CodeNegBigInt:
		return "NegBigInt"
	case c == CodePosBigInt:
		return "PosBigInt"
	case c.IsInt():
		n, neg := c.IntBytes()
		if neg {
			return fmt.Sprintf("NegInt%d", n)
		}

		return fmt.Sprintf("PosInt%d", n)
	case c == CodeFloat32:
		return "Float32"
	case c == CodeFloat64:
		return "Float64"
	case c == CodeFalse:
		return "False"
	case c == CodeTrue:
		return "True"
	case c == CodeUUID:
		return "UUID"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(c))
	}
}

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBytes:
		return "Bytes"
	case KindText:
		return "Text"
	case KindBool:
		return "Bool"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindBigInt:
		return "BigInt"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool {
	return k == KindInt32 || k == KindInt64 || k == KindBigInt
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
