// Package tuple provides an order-preserving binary encoding for tuples of typed
// scalar values.
//
// An encoded tuple can be used directly as a key in an ordered key/value store:
// comparing two encodings with bytes.Compare gives the same answer as comparing
// the tuples element by element, with a strict prefix ordering first.
//
// # Core Features
//
//   - Null, byte strings, UTF-8 text, booleans, integers of any size, float32,
//     float64 and UUID elements
//   - Canonical encoding: one value produces one byte string, whatever width holds it
//   - Sign-preserving float transforms, so negatives sort before positives
//   - Null-byte escaping that keeps variable-length payloads order-preserving
//   - Immutable Tuple values safe for concurrent reads
//
// # Basic Usage
//
// Building and encoding a tuple:
//
//	import "github.com/arloliu/tuple"
//
//	t, err := tuple.NewBuilder().
//	    AddText("users").
//	    AddInt(42).
//	    AddBool(true).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	key := t.Bytes()
//
// Decoding a tuple:
//
//	t, err := tuple.FromBytes(key)
//	if err != nil {
//	    return err
//	}
//	for i, e := range t.All() {
//	    fmt.Println(i, e)
//	}
//
// # Package Structure
//
// This package is a thin facade over the codec package, which implements the
// encoder, decoder and type classifier, and the element package, which
// defines the typed values. The keyset package stores sorted runs of
// encoded tuples.
package tuple

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/tuple/codec"
	"github.com/arloliu/tuple/element"
	"github.com/arloliu/tuple/internal/hash"
)

// Tuple is an immutable sequence of elements paired with its canonical encoding.
//
// The zero value is the empty tuple.
type Tuple struct {
	elems []element.Element
	rep   []byte
}

// New encodes elems into a Tuple.
//
// Parameters:
//   - elems: Elements in tuple order
//
// Returns:
//   - Tuple: The encoded tuple
//   - error: Encoding error (invalid UTF-8 text, oversized big integer)
func New(elems ...element.Element) (Tuple, error) {
	rep, err := codec.Encode(elems...)
	if err != nil {
		return Tuple{}, err
	}

	return Tuple{elems: slices.Clone(elems), rep: rep}, nil
}

// MustNew is like New but panics on error. It is intended for constants and tests.
func MustNew(elems ...element.Element) Tuple {
	t, err := New(elems...)
	if err != nil {
		panic(fmt.Sprintf("tuple: %v", err))
	}

	return t
}

// FromBytes decodes data into a Tuple. The Tuple keeps its own copy of data.
//
// Returns:
//   - Tuple: The decoded tuple
//   - error: Decoding error; no partial tuple is returned
func FromBytes(data []byte) (Tuple, error) {
	elems, err := codec.Decode(data)
	if err != nil {
		return Tuple{}, err
	}

	return Tuple{elems: elems, rep: bytes.Clone(data)}, nil
}

// Pack returns the canonical encoding of elems.
func Pack(elems ...element.Element) ([]byte, error) {
	return codec.Encode(elems...)
}

// Unpack decodes an encoded tuple into its elements.
func Unpack(data []byte) ([]element.Element, error) {
	return codec.Decode(data)
}

// Compare compares two encoded tuples. The result agrees with comparing the
// decoded tuples element by element.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Len returns the number of elements.
func (t Tuple) Len() int {
	return len(t.elems)
}

// At returns the element at index i. It panics if i is out of range.
func (t Tuple) At(i int) element.Element {
	return t.elems[i]
}

// Elements returns a copy of the element sequence.
func (t Tuple) Elements() []element.Element {
	return slices.Clone(t.elems)
}

// All iterates over the elements with their indices.
func (t Tuple) All() iter.Seq2[int, element.Element] {
	return func(yield func(int, element.Element) bool) {
		for i, e := range t.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Bytes returns a copy of the canonical encoding.
func (t Tuple) Bytes() []byte {
	if t.rep == nil {
		return []byte{}
	}

	return bytes.Clone(t.rep)
}

// AppendTo appends the canonical encoding to dst.
func (t Tuple) AppendTo(dst []byte) []byte {
	return append(dst, t.rep...)
}

// Size returns the length of the canonical encoding in bytes.
func (t Tuple) Size() int {
	return len(t.rep)
}

// Compare orders t against o by their encodings.
func (t Tuple) Compare(o Tuple) int {
	return bytes.Compare(t.rep, o.rep)
}

// Equal reports whether t and o have the same encoding.
func (t Tuple) Equal(o Tuple) bool {
	return bytes.Equal(t.rep, o.rep)
}

// Hash returns the xxHash64 of the canonical encoding.
func (t Tuple) Hash() uint64 {
	return hash.Sum(t.rep)
}

// With returns a new Tuple holding the elements of t followed by elems.
func (t Tuple) With(elems ...element.Element) (Tuple, error) {
	extra, err := codec.Encode(elems...)
	if err != nil {
		return Tuple{}, err
	}

	rep := make([]byte, 0, len(t.rep)+len(extra))
	rep = append(append(rep, t.rep...), extra...)

	return Tuple{elems: slices.Concat(t.elems, elems), rep: rep}, nil
}

// String returns a debug representation such as ("users", 42, true).
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range t.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	if len(t.elems) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')

	return sb.String()
}
