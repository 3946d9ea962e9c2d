package element

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuple/errs"
	"github.com/arloliu/tuple/format"
)

func TestElement_ZeroValueIsNull(t *testing.T) {
	var e Element
	require.True(t, e.IsNull())
	require.Equal(t, format.KindNull, e.Kind())
	require.True(t, Equal(e, Null()))
}

func TestElement_Kinds(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		kind format.Kind
	}{
		{"null", Null(), format.KindNull},
		{"bytes", Bytes([]byte{1, 2}), format.KindBytes},
		{"text", Text("a"), format.KindText},
		{"bool", Bool(true), format.KindBool},
		{"int32", Int32(1), format.KindInt32},
		{"int64", Int64(1), format.KindInt64},
		{"bigint", BigInt(big.NewInt(1)), format.KindBigInt},
		{"float32", Float32(1), format.KindFloat32},
		{"float64", Float64(1), format.KindFloat64},
		{"uuid", UUIDValue(UUID{1, 2}), format.KindUUID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.elem.Kind())
		})
	}
}

func TestInt_Narrowest(t *testing.T) {
	require.Equal(t, format.KindInt32, Int(0).Kind())
	require.Equal(t, format.KindInt32, Int(math.MaxInt32).Kind())
	require.Equal(t, format.KindInt32, Int(math.MinInt32).Kind())
	require.Equal(t, format.KindInt64, Int(math.MaxInt32+1).Kind())
	require.Equal(t, format.KindInt64, Int(math.MinInt32-1).Kind())
}

func TestBytes_CopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	e := Bytes(src)
	src[0] = 9

	got, err := e.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	got[1] = 9
	again, err := e.AsBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, again)
}

func TestBigInt_CopiesInput(t *testing.T) {
	v := big.NewInt(42)
	e := BigInt(v)
	v.SetInt64(7)

	got, err := e.AsBigInt()
	require.NoError(t, err)
	require.Equal(t, int64(42), got.Int64())

	got.SetInt64(1)
	again, err := e.AsBigInt()
	require.NoError(t, err)
	require.Equal(t, int64(42), again.Int64())

	require.True(t, Equal(BigInt(nil), Int(0)))
}

func TestAccessors_TypeMismatch(t *testing.T) {
	e := Text("x")

	_, err := e.AsBytes()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsBool()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsInt64()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsBigInt()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsFloat32()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsFloat64()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = e.AsUUID()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
	_, err = Int(1).AsText()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestAccessors_Overflow(t *testing.T) {
	_, err := Int64(math.MaxInt32 + 1).AsInt32()
	require.ErrorIs(t, err, errs.ErrOverflow)

	v, err := Int64(-5).AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-5), v)

	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = BigInt(huge).AsInt64()
	require.ErrorIs(t, err, errs.ErrOverflow)

	small, err := BigInt(big.NewInt(-9)).AsInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-9), small)

	b, err := Int32(3).AsBigInt()
	require.NoError(t, err)
	require.Equal(t, "3", b.String())
}

func TestAccessors_Values(t *testing.T) {
	bv, err := Bool(true).AsBool()
	require.NoError(t, err)
	require.True(t, bv)

	f32, err := Float32(1.5).AsFloat32()
	require.NoError(t, err)
	require.InDelta(t, 1.5, f32, 0)

	f64, err := Float64(-2.25).AsFloat64()
	require.NoError(t, err)
	require.InDelta(t, -2.25, f64, 0)

	u, err := UUIDValue(UUID{High: 1, Low: 2}).AsUUID()
	require.NoError(t, err)
	require.Equal(t, UUID{High: 1, Low: 2}, u)
}

func TestCompare_AcrossFamilies(t *testing.T) {
	ordered := []Element{
		Null(),
		Bytes(nil),
		Bytes([]byte{0xFF}),
		Text(""),
		Text("z"),
		Int(-1),
		Int(0),
		Int(1),
		Float32(-1),
		Float32(1),
		Float64(math.Inf(-1)),
		Float64(0),
		Bool(false),
		Bool(true),
		UUIDValue(UUID{}),
		UUIDValue(UUID{High: math.MaxUint64}),
	}
	for i := 1; i < len(ordered); i++ {
		require.Equal(t, -1, Compare(ordered[i-1], ordered[i]), "%s < %s", ordered[i-1], ordered[i])
		require.Equal(t, 1, Compare(ordered[i], ordered[i-1]))
	}
}

func TestCompare_IntegersAcrossWidths(t *testing.T) {
	require.Equal(t, 0, Compare(Int32(5), Int64(5)))
	require.Equal(t, 0, Compare(Int64(5), BigInt(big.NewInt(5))))
	require.Equal(t, -1, Compare(Int32(-1), BigInt(big.NewInt(0))))

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	require.Equal(t, -1, Compare(Int64(math.MaxInt64), BigInt(huge)))
	require.Equal(t, 1, Compare(Int64(math.MinInt64), BigInt(new(big.Int).Neg(huge))))
}

func TestCompare_Floats(t *testing.T) {
	negZero := math.Copysign(0, -1)
	require.Equal(t, -1, Compare(Float64(negZero), Float64(0)))
	require.Equal(t, -1, Compare(Float64(-1), Float64(negZero)))
	require.Equal(t, 1, Compare(Float64(math.NaN()), Float64(math.Inf(1))))
	require.True(t, Equal(Float64(math.NaN()), Float64(math.NaN())))
	require.Equal(t, -1, Compare(Float32(-1), Float32(1)))
}

func TestCompareSlices(t *testing.T) {
	a := []Element{Int(1), Text("a")}
	b := []Element{Int(1), Text("b")}
	prefix := []Element{Int(1)}

	require.Equal(t, -1, CompareSlices(a, b))
	require.Equal(t, -1, CompareSlices(prefix, a))
	require.Equal(t, 1, CompareSlices(a, prefix))
	require.Equal(t, 0, CompareSlices(nil, []Element{}))
	require.True(t, EqualSlices([]Element{Int32(7)}, []Element{Int64(7)}))
	require.False(t, EqualSlices(prefix, a))
}

func TestElement_String(t *testing.T) {
	require.Equal(t, "nil", Null().String())
	require.Equal(t, `b"A\x00B"`, Bytes([]byte{'A', 0, 'B'}).String())
	require.Equal(t, `"hi"`, Text("hi").String())
	require.Equal(t, "true", Bool(true).String())
	require.Equal(t, "-12", Int(-12).String())
	require.Equal(t, "1.5", Float32(1.5).String())
	require.Equal(t, "0.25", Float64(0.25).String())
}

func TestUUID(t *testing.T) {
	g := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	u := FromGoogle(g)
	require.Equal(t, uint64(0x0011223344556677), u.High)
	require.Equal(t, uint64(0x8899aabbccddeeff), u.Low)
	require.Equal(t, g, u.Google())
	require.Equal(t, "00112233-4455-6677-8899-aabbccddeeff", u.String())

	parsed, err := ParseUUID("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	require.Equal(t, u, parsed)

	_, err = ParseUUID("not-a-uuid")
	require.Error(t, err)

	require.Equal(t, u, UUIDFromBytes(u.Bytes()))
	require.Equal(t, -1, UUID{High: 1}.Compare(UUID{High: 1, Low: 1}))
	require.Equal(t, 1, UUID{High: 2}.Compare(UUID{High: 1, Low: math.MaxUint64}))
}
