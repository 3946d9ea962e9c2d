// Package element defines the typed scalar values carried by a tuple and the
// natural ordering that the tuple encoding preserves.
//
// An Element is an immutable tagged variant: exactly one kind is active, byte
// payloads are copied on the way in and on the way out, and big integers are
// never exposed by reference.
package element

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
)

// Element is a single typed value of a tuple.
//
// The zero value is the null element.
type Element struct {
	kind format.Kind
	num  int64    // bool (0/1), int32, int64
	bits uint64   // raw IEEE-754 pattern for float32/float64
	data string   // bytes and text payloads
	big  *big.Int // big integer, never mutated after construction
	uuid UUID
}

// Null returns the null element.
func Null() Element {
	return Element{kind: format.KindNull}
}

// Bytes returns a byte-string element holding a copy of b.
func Bytes(b []byte) Element {
	return Element{kind: format.KindBytes, data: string(b)}
}

// BytesFromString returns a byte-string element whose payload is the bytes of s.
func BytesFromString(s string) Element {
	return Element{kind: format.KindBytes, data: s}
}

// Text returns a text element. The encoder rejects s if it is not valid UTF-8.
func Text(s string) Element {
	return Element{kind: format.KindText, data: s}
}

// Bool returns a boolean element.
func Bool(v bool) Element {
	e := Element{kind: format.KindBool}
	if v {
		e.num = 1
	}

	return e
}

// Int32 returns a 32-bit integer element.
func Int32(v int32) Element {
	return Element{kind: format.KindInt32, num: int64(v)}
}

// Int64 returns a 64-bit integer element.
func Int64(v int64) Element {
	return Element{kind: format.KindInt64, num: v}
}

// Int returns an integer element of the narrowest kind that holds v,
// matching the kind the decoder produces for the same value.
func Int(v int64) Element {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Int32(int32(v))
	}

	return Int64(v)
}

// BigInt returns an arbitrary-precision integer element holding a copy of v.
// A nil v is treated as zero.
func BigInt(v *big.Int) Element {
	c := new(big.Int)
	if v != nil {
		c.Set(v)
	}

	return Element{kind: format.KindBigInt, big: c}
}

// Float32 returns a 32-bit float element. The exact bit pattern is kept.
func Float32(v float32) Element {
	return Element{kind: format.KindFloat32, bits: uint64(math.Float32bits(v))}
}

// Float64 returns a 64-bit float element. The exact bit pattern is kept.
func Float64(v float64) Element {
	return Element{kind: format.KindFloat64, bits: math.Float64bits(v)}
}

// Float32FromBits returns a 32-bit float element with the given binary32 pattern.
func Float32FromBits(bits uint32) Element {
	return Element{kind: format.KindFloat32, bits: uint64(bits)}
}

// Float64FromBits returns a 64-bit float element with the given binary64 pattern.
func Float64FromBits(bits uint64) Element {
	return Element{kind: format.KindFloat64, bits: bits}
}

// UUIDValue returns a UUID element.
func UUIDValue(u UUID) Element {
	return Element{kind: format.KindUUID, uuid: u}
}

// Kind returns the active variant.
func (e Element) Kind() format.Kind {
	return e.kind
}

// IsNull reports whether e is the null element.
func (e Element) IsNull() bool {
	return e.kind == format.KindNull
}

// AsBytes returns a copy of the byte-string payload.
func (e Element) AsBytes() ([]byte, error) {
	if e.kind != format.KindBytes {
		return nil, e.mismatch(format.KindBytes)
	}

	return []byte(e.data), nil
}

// AsText returns the text payload.
func (e Element) AsText() (string, error) {
	if e.kind != format.KindText {
		return "", e.mismatch(format.KindText)
	}

	return e.data, nil
}

// AsBool returns the boolean value.
func (e Element) AsBool() (bool, error) {
	if e.kind != format.KindBool {
		return false, e.mismatch(format.KindBool)
	}

	return e.num != 0, nil
}

// AsInt32 returns the integer value narrowed to 32 bits.
// It fails with errs.ErrOverflow if the value does not fit.
func (e Element) AsInt32() (int32, error) {
	v, err := e.AsInt64()
	if err != nil {
		return 0, err
	}

	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in int32", errs.ErrOverflow, v)
	}

	return int32(v), nil
}

// AsInt64 returns the integer value narrowed to 64 bits.
// It fails with errs.ErrOverflow if the value does not fit.
func (e Element) AsInt64() (int64, error) {
	switch e.kind {
	case format.KindInt32, format.KindInt64:
		return e.num, nil
	case format.KindBigInt:
		if !e.big.IsInt64() {
			return 0, fmt.Errorf("%w: %s does not fit in int64", errs.ErrOverflow, e.big)
		}

		return e.big.Int64(), nil
	default:
		return 0, e.mismatch(format.KindInt64)
	}
}

// AsBigInt returns the integer value of any integer kind as a new big.Int.
func (e Element) AsBigInt() (*big.Int, error) {
	switch e.kind {
	case format.KindInt32, format.KindInt64:
		return big.NewInt(e.num), nil
	case format.KindBigInt:
		return new(big.Int).Set(e.big), nil
	default:
		return nil, e.mismatch(format.KindBigInt)
	}
}

// AsFloat32 returns the 32-bit float value.
func (e Element) AsFloat32() (float32, error) {
	if e.kind != format.KindFloat32 {
		return 0, e.mismatch(format.KindFloat32)
	}

	return math.Float32frombits(uint32(e.bits)), nil //nolint:gosec
}

// AsFloat64 returns the 64-bit float value.
func (e Element) AsFloat64() (float64, error) {
	if e.kind != format.KindFloat64 {
		return 0, e.mismatch(format.KindFloat64)
	}

	return math.Float64frombits(e.bits), nil
}

// AsUUID returns the UUID value.
func (e Element) AsUUID() (UUID, error) {
	if e.kind != format.KindUUID {
		return UUID{}, e.mismatch(format.KindUUID)
	}

	return e.uuid, nil
}

// Float32Bits returns the raw binary32 pattern of a Float32 element.
func (e Element) Float32Bits() uint32 {
	return uint32(e.bits) //nolint:gosec
}

// Float64Bits returns the raw binary64 pattern of a Float64 element.
func (e Element) Float64Bits() uint64 {
	return e.bits
}

// Payload returns the raw payload of a Bytes or Text element without copying.
// It is meant for encoders; the result must not be retained past the element.
func (e Element) Payload() string {
	return e.data
}

// Int64Value returns the stored value of a Bool, Int32 or Int64 element.
func (e Element) Int64Value() int64 {
	return e.num
}

// BigValue returns the stored big integer of a BigInt element. The result must not be modified.
func (e Element) BigValue() *big.Int {
	return e.big
}

func (e Element) mismatch(want format.Kind) error {
	return fmt.Errorf("%w: element is %s, not %s", errs.ErrTypeMismatch, e.kind, want)
}

// String returns a debug representation of the element.
func (e Element) String() string {
	switch e.kind {
	case format.KindNull:
		return "nil"
	case format.KindBytes:
		return "b" + strconv.Quote(e.data)
	case format.KindText:
		return strconv.Quote(e.data)
	case format.KindBool:
		return strconv.FormatBool(e.num != 0)
	case format.KindInt32, format.KindInt64:
		return strconv.FormatInt(e.num, 10)
	case format.KindBigInt:
		return e.big.String()
	case format.KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(e.bits))), 'g', -1, 32) //nolint:gosec
	case format.KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(e.bits), 'g', -1, 64)
	case format.KindUUID:
		return e.uuid.String()
	default:
		return fmt.Sprintf("<%s>", e.kind)
	}
}
