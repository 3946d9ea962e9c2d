package element

import (
	"cmp"
	"math/big"
	"strings"

	"github.com/arloliu/tuple/format"
	"github.com/arloliu/tuple/internal/ordered"
)

// rank orders the type families the same way their type codes do.
// All integer kinds share one family.
func rank(k format.Kind) int {
	if k.IsInteger() {
		return 3
	}

	switch k { //nolint:exhaustive
	case format.KindNull:
		return 0
	case format.KindBytes:
		return 1
	case format.KindText:
		return 2
	case format.KindFloat32:
		return 4
	case format.KindFloat64:
		return 5
	case format.KindBool:
		return 6
	case format.KindUUID:
		return 7
	default:
		return 8
	}
}

// Compare returns -1, 0 or +1 as a orders before, equal to, or after b.
//
// The ordering is the one the encoding preserves: for any two elements,
// Compare(a, b) has the sign of bytes.Compare over their encodings.
// Integers compare numerically regardless of the width holding them, and
// floats compare by their sortable bit pattern, so -0 orders before +0 and
// two NaNs are equal only when their bits are equal.
func Compare(a, b Element) int {
	if c := cmp.Compare(rank(a.kind), rank(b.kind)); c != 0 {
		return c
	}

	switch a.kind {
	case format.KindNull:
		return 0
	case format.KindBytes, format.KindText:
		return strings.Compare(a.data, b.data)
	case format.KindInt32, format.KindInt64, format.KindBigInt:
		return compareInt(a, b)
	case format.KindFloat32:
		return cmp.Compare(ordered.EncodeBits32(uint32(a.bits)), ordered.EncodeBits32(uint32(b.bits))) //nolint:gosec
	case format.KindFloat64:
		return cmp.Compare(ordered.EncodeBits64(a.bits), ordered.EncodeBits64(b.bits))
	case format.KindBool:
		return cmp.Compare(a.num, b.num)
	case format.KindUUID:
		return a.uuid.Compare(b.uuid)
	default:
		return 0
	}
}

// Equal reports whether a and b encode to the same bytes.
func Equal(a, b Element) bool {
	return Compare(a, b) == 0
}

// Equal reports whether e and o encode to the same bytes.
func (e Element) Equal(o Element) bool {
	return Compare(e, o) == 0
}

func compareInt(a, b Element) int {
	if a.kind != format.KindBigInt && b.kind != format.KindBigInt {
		return cmp.Compare(a.num, b.num)
	}

	return toBig(a).Cmp(toBig(b))
}

func toBig(e Element) *big.Int {
	if e.kind == format.KindBigInt {
		return e.big
	}

	return big.NewInt(e.num)
}

// CompareSlices compares two element sequences position by position.
// A strict prefix orders before the longer sequence.
func CompareSlices(a, b []Element) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// EqualSlices reports whether two element sequences are element-wise equal.
func EqualSlices(a, b []Element) bool {
	return len(a) == len(b) && CompareSlices(a, b) == 0
}
