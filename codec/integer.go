package codec

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/arloliu/tuple/format"
)

// byteLen returns the number of big-endian bytes needed to hold mag.
func byteLen(mag uint64) int {
	return (bits.Len64(mag) + 7) / 8
}

// lowMask returns 2^(8n) - 1 for n in [0, 8].
func lowMask(n int) uint64 {
	if n >= format.MaxIntBytes {
		return math.MaxUint64
	}

	return uint64(1)<<(8*uint(n)) - 1 //nolint:gosec
}

// readUint reads up to 8 big-endian bytes as an unsigned integer.
func readUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}

// intMagnitude recovers the absolute value held by an n-byte centered integer payload.
// Negative payloads store the one's complement of the magnitude.
func intMagnitude(payload []byte, negative bool) uint64 {
	p := readUint(payload)
	if negative {
		return p ^ lowMask(len(payload))
	}

	return p
}

// intKind returns the narrowest integer kind holding the value with the given sign and magnitude.
func intKind(mag uint64, negative bool) format.Kind {
	if negative {
		switch {
		case mag <= 1<<31:
			return format.KindInt32
		case mag <= 1<<63:
			return format.KindInt64
		default:
			return format.KindBigInt
		}
	}

	switch {
	case mag <= math.MaxInt32:
		return format.KindInt32
	case mag <= math.MaxInt64:
		return format.KindInt64
	default:
		return format.KindBigInt
	}
}

// appendInt64 appends the canonical encoding of v.
func appendInt64(dst []byte, v int64) []byte {
	if v >= 0 {
		return appendMagnitude(dst, uint64(v), false)
	}

	// ^v is -v-1, which cannot overflow even for math.MinInt64.
	return appendMagnitude(dst, uint64(^v)+1, true)
}

// appendMagnitude appends a centered integer code and its payload for a
// magnitude that fits in 8 bytes.
func appendMagnitude(dst []byte, mag uint64, negative bool) []byte {
	n := byteLen(mag)
	dst = append(dst, byte(format.IntCode(n, negative)))

	p := mag
	if negative {
		p = ^mag & lowMask(n)
	}

	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(p>>(8*uint(i)))) //nolint:gosec
	}

	return dst
}

// bigMagnitude returns |v| when it fits in 8 bytes.
func bigMagnitude(v *big.Int) (uint64, bool) {
	if v.BitLen() > 64 {
		return 0, false
	}

	if v.Sign() >= 0 {
		return v.Uint64(), true
	}

	return new(big.Int).Neg(v).Uint64(), true
}

// bigIntSize returns the encoded size of v.
func bigIntSize(v *big.Int) int {
	if mag, ok := bigMagnitude(v); ok {
		return 1 + byteLen(mag)
	}

	return 2 + (v.BitLen()+7)/8
}

// appendBigInt appends the canonical encoding of v. Values whose magnitude
// fits in 8 bytes share the centered codes with fixed-width integers.
// The caller verifies the magnitude is at most format.MaxBigIntBytes long.
func appendBigInt(dst []byte, v *big.Int) []byte {
	if mag, ok := bigMagnitude(v); ok {
		return appendMagnitude(dst, mag, v.Sign() < 0)
	}

	if v.Sign() > 0 {
		mag := v.Bytes()
		dst = append(dst, byte(format.CodePosBigInt), byte(len(mag))) //nolint:gosec

		return append(dst, mag...)
	}

	mag := new(big.Int).Neg(v).Bytes()
	dst = append(dst, byte(format.CodeNegBigInt), ^byte(len(mag))) //nolint:gosec
	for _, c := range mag {
		dst = append(dst, ^c)
	}

	return dst
}

// decodeBigPayload decodes the magnitude bytes following an explicit big integer marker.
func decodeBigPayload(payload []byte, negative bool) *big.Int {
	if !negative {
		return new(big.Int).SetBytes(payload)
	}

	mag := make([]byte, len(payload))
	for i, c := range payload {
		mag[i] = ^c
	}

	return new(big.Int).Neg(new(big.Int).SetBytes(mag))
}
