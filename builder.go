package tuple

import (
	"math/big"

	"github.com/arloliu/tuple/element"
)

// Builder accumulates elements and encodes them once in Build.
//
// The bytes Build produces are identical to New over the same elements.
//
// Note: The Builder is NOT thread-safe.
type Builder struct {
	elems []element.Element
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an arbitrary element.
func (b *Builder) Add(e element.Element) *Builder {
	b.elems = append(b.elems, e)
	return b
}

// AddNull appends the null element.
func (b *Builder) AddNull() *Builder {
	return b.Add(element.Null())
}

// AddBytes appends a byte string. The bytes are copied.
func (b *Builder) AddBytes(v []byte) *Builder {
	return b.Add(element.Bytes(v))
}

// AddText appends a UTF-8 string.
func (b *Builder) AddText(v string) *Builder {
	return b.Add(element.Text(v))
}

// AddBool appends a boolean.
func (b *Builder) AddBool(v bool) *Builder {
	return b.Add(element.Bool(v))
}

// AddInt appends an integer as the narrowest integer kind.
func (b *Builder) AddInt(v int64) *Builder {
	return b.Add(element.Int(v))
}

// AddInt32 appends a 32-bit integer.
func (b *Builder) AddInt32(v int32) *Builder {
	return b.Add(element.Int32(v))
}

// AddInt64 appends a 64-bit integer.
func (b *Builder) AddInt64(v int64) *Builder {
	return b.Add(element.Int64(v))
}

// AddBigInt appends an arbitrary-precision integer. The value is copied.
func (b *Builder) AddBigInt(v *big.Int) *Builder {
	return b.Add(element.BigInt(v))
}

// AddFloat32 appends a 32-bit float.
func (b *Builder) AddFloat32(v float32) *Builder {
	return b.Add(element.Float32(v))
}

// AddFloat64 appends a 64-bit float.
func (b *Builder) AddFloat64(v float64) *Builder {
	return b.Add(element.Float64(v))
}

// AddUUID appends a UUID.
func (b *Builder) AddUUID(v element.UUID) *Builder {
	return b.Add(element.UUIDValue(v))
}

// Len returns the number of accumulated elements.
func (b *Builder) Len() int {
	return len(b.elems)
}

// Reset discards the accumulated elements so the builder can be reused.
func (b *Builder) Reset() {
	b.elems = b.elems[:0]
}

// Build encodes the accumulated elements into a Tuple.
// The builder keeps its elements and may continue to be used.
func (b *Builder) Build() (Tuple, error) {
	return New(b.elems...)
}
