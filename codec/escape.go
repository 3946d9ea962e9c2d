package codec

import (
	"bytes"
	"strings"
)

const (
	terminator = 0x00
	escapeByte = 0xFF
)

// escapedSize returns the encoded size of a variable-length payload, terminator included.
func escapedSize[T ~string | ~[]byte](src T) int {
	zeros := 0
	for i := 0; i < len(src); i++ {
		if src[i] == terminator {
			zeros++
		}
	}

	return len(src) + zeros + 1
}

// appendEscaped appends src with every 0x00 written as 0x00 0xFF, followed by the terminator.
func appendEscaped[T ~string | ~[]byte](dst []byte, src T) []byte {
	for i := 0; i < len(src); i++ {
		dst = append(dst, src[i])
		if src[i] == terminator {
			dst = append(dst, escapeByte)
		}
	}

	return append(dst, terminator)
}

// findTerminator returns the index of the first unescaped terminator at or after start.
func findTerminator(data []byte, start int) (int, bool) {
	i := start
	for i < len(data) {
		j := bytes.IndexByte(data[i:], terminator)
		if j < 0 {
			return -1, false
		}

		i += j
		if i+1 < len(data) && data[i+1] == escapeByte {
			i += 2
			continue
		}

		return i, true
	}

	return -1, false
}

// unescape copies an escaped payload (terminator excluded) into a new string,
// collapsing each 0x00 0xFF pair to a single 0x00.
func unescape(payload []byte) string {
	var sb strings.Builder
	sb.Grow(len(payload) - bytes.Count(payload, []byte{terminator}))

	for len(payload) > 0 {
		j := bytes.IndexByte(payload, terminator)
		if j < 0 {
			sb.Write(payload)
			break
		}

		sb.Write(payload[:j+1])
		payload = payload[j+2:]
	}

	return sb.String()
}
