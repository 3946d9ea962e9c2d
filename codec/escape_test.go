package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendEscaped(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{"empty", nil, []byte{0x00}},
		{"plain", []byte("ab"), []byte{'a', 'b', 0x00}},
		{"embedded null", []byte{'a', 0x00, 'b'}, []byte{'a', 0x00, 0xFF, 'b', 0x00}},
		{"leading and trailing null", []byte{0x00, 'x', 0x00}, []byte{0x00, 0xFF, 'x', 0x00, 0xFF, 0x00}},
		{"literal 0xff", []byte{0xFF}, []byte{0xFF, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendEscaped(nil, tt.src)
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), escapedSize(tt.src))

			// string and []byte paths share the helper
			require.Equal(t, got, appendEscaped(nil, string(tt.src)))

			end, ok := findTerminator(got, 0)
			require.True(t, ok)
			require.Equal(t, len(got)-1, end)
			require.Equal(t, string(tt.src), unescape(got[:end]))
		})
	}
}

func TestFindTerminator(t *testing.T) {
	end, ok := findTerminator([]byte{0x02, 'a', 0x00, 0x14}, 1)
	require.True(t, ok)
	require.Equal(t, 2, end)

	// 0x00 as the last byte is a terminator even though nothing follows
	end, ok = findTerminator([]byte{0x01, 0x00}, 1)
	require.True(t, ok)
	require.Equal(t, 1, end)

	_, ok = findTerminator([]byte{0x01, 'a', 0x00, 0xFF}, 1)
	require.False(t, ok)

	_, ok = findTerminator([]byte{0x01}, 1)
	require.False(t, ok)
}
