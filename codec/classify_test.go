package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind format.Kind
		size int
	}{
		{"null", []byte{0x00}, format.KindNull, 1},
		{"bytes", []byte{0x01, 0x41, 0x00, 0xFF, 0x42, 0x00, 0x14}, format.KindBytes, 6},
		{"text", []byte{0x02, 0x41, 0x00}, format.KindText, 3},
		{"zero", []byte{0x14}, format.KindInt32, 1},
		{"int32 4 bytes", []byte{0x18, 0x7F, 0xFF, 0xFF, 0xFF}, format.KindInt32, 5},
		{"int64 4 bytes", []byte{0x18, 0x80, 0x00, 0x00, 0x00}, format.KindInt64, 5},
		{"min int32", []byte{0x10, 0x7F, 0xFF, 0xFF, 0xFF}, format.KindInt32, 5},
		{"min int32 - 1", []byte{0x10, 0x7F, 0xFF, 0xFF, 0xFE}, format.KindInt64, 5},
		{"int64 5 bytes", []byte{0x19, 0x01, 0, 0, 0, 0}, format.KindInt64, 6},
		{"big 8 bytes", []byte{0x1C, 0x80, 0, 0, 0, 0, 0, 0, 0}, format.KindBigInt, 9},
		{"min int64", []byte{0x0C, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, format.KindInt64, 9},
		{"below min int64", []byte{0x0C, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}, format.KindBigInt, 9},
		{"positive big marker", []byte{0x1D, 0x09, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}, format.KindBigInt, 11},
		{"negative big marker", []byte{0x0B, 0xF6, 0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, format.KindBigInt, 11},
		{"float32", []byte{0x20, 1, 2, 3, 4}, format.KindFloat32, 5},
		{"float64", []byte{0x21, 1, 2, 3, 4, 5, 6, 7, 8}, format.KindFloat64, 9},
		{"false", []byte{0x26}, format.KindBool, 1},
		{"true", []byte{0x27}, format.KindBool, 1},
		{"uuid", append([]byte{0x30}, make([]byte, 16)...), format.KindUUID, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := append([]byte(nil), tt.data...)

			class, err := Classify(tt.data, 0)
			require.NoError(t, err)
			require.Equal(t, tt.kind, class.Kind)
			require.Equal(t, tt.size, class.Size)
			require.Equal(t, format.TypeCode(tt.data[0]), class.Code)
			require.Equal(t, snapshot, tt.data)
		})
	}
}

func TestClassify_Offset(t *testing.T) {
	data := []byte{0x27, 0x15, 0x09}
	class, err := Classify(data, 1)
	require.NoError(t, err)
	require.Equal(t, format.KindInt32, class.Kind)
	require.Equal(t, 2, class.Size)

	_, err = Classify(data, 3)
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = Classify(data, -1)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestClassify_Errors(t *testing.T) {
	_, err := Classify([]byte{0x05}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidTag)
	require.Contains(t, err.Error(), "0x05")

	_, err = Classify([]byte{0x33, 0x00}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidTag)

	_, err = Classify([]byte{0x1C, 0x01}, 0)
	require.ErrorIs(t, err, errs.ErrTruncated)
	require.Contains(t, err.Error(), "needs 9 bytes, 2 remain")

	_, err = Classify([]byte{0x01, 0x41}, 0)
	require.ErrorIs(t, err, errs.ErrUnterminatedPayload)
}

func TestClassify_NonCanonical(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"padded zero", []byte{0x15, 0x00}},
		{"negative zero", []byte{0x13, 0xFF}},
		{"padded positive", []byte{0x16, 0x00, 0x07}},
		{"padded negative", []byte{0x12, 0xFF, 0xF8}},
		{"padded 8-byte positive", []byte{0x1C, 0x00, 0x19, 0xA5, 0x7E, 0x4D, 0x21, 0x80, 0x26}},
		{"padded 8-byte negative", []byte{0x0C, 0xFF, 0x19, 0xA5, 0x7E, 0x4D, 0x21, 0x80, 0x26}},
		{"empty positive big", []byte{0x1D, 0x00}},
		{"empty negative big", []byte{0x0B, 0xFF}},
		{"small positive big", []byte{0x1D, 0x01, 0x07}},
		{"small negative big", []byte{0x0B, 0xFE, 0xF8}},
		{"8-byte positive big", []byte{0x1D, 0x08, 0x80, 0, 0, 0, 0, 0, 0, 0}},
		{"padded positive big", []byte{0x1D, 0x09, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0}},
		{"padded negative big", []byte{0x0B, 0xF6, 0xFF, 0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.data, 0)
			require.ErrorIs(t, err, errs.ErrNonCanonical)
		})
	}
}
