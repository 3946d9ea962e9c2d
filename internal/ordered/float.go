// Package ordered implements the sign-preserving bit transforms that make IEEE-754
// values sort correctly as unsigned big-endian integers.
//
// A non-negative value has its sign bit set; a negative value has every bit
// complemented. The resulting unsigned patterns order exactly like the numbers,
// with -0 sorting before +0 and NaNs at the extremes.
package ordered

const (
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

// EncodeBits32 transforms a raw binary32 pattern into its sortable form.
func EncodeBits32(bits uint32) uint32 {
	if bits&signBit32 != 0 {
		return ^bits
	}

	return bits | signBit32
}

// DecodeBits32 is the inverse of EncodeBits32.
func DecodeBits32(stored uint32) uint32 {
	if stored&signBit32 == 0 {
		return ^stored
	}

	return stored &^ signBit32
}

// EncodeBits64 transforms a raw binary64 pattern into its sortable form.
func EncodeBits64(bits uint64) uint64 {
	if bits&signBit64 != 0 {
		return ^bits
	}

	return bits | signBit64
}

// DecodeBits64 is the inverse of EncodeBits64.
func DecodeBits64(stored uint64) uint64 {
	if stored&signBit64 == 0 {
		return ^stored
	}

	return stored &^ signBit64
}
