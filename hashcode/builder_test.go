package hashcode

import (
	"math"
	"testing"

	"github.com/Pro7ech/minicommons/utils/structs"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {

	t.Run("New", func(t *testing.T) {
		require.Equal(t, int32(17), New().HashCode())
		require.Equal(t, int32(1), NewWithConstants(1, 31).HashCode())
		require.Equal(t, int32(17*37+45), New().AppendInt32(45).HashCode())
		require.Equal(t, int32(3*31+45), NewWithConstants(3, 31).AppendInt32(45).HashCode())
	})

	t.Run("AppendSuper", func(t *testing.T) {
		require.Equal(t, int32(17*37+99), New().AppendSuper(99).HashCode())
		require.Equal(t, int32((17*37+1)*37+2), New().AppendSuper(1).AppendSuper(2).HashCode())
	})

	t.Run("Scalars", func(t *testing.T) {
		base := int32(17 * 37)
		require.Equal(t, base+1, New().AppendBool(true).HashCode())
		require.Equal(t, base, New().AppendBool(false).HashCode())
		require.Equal(t, base+255, New().AppendByte(255).HashCode())
		require.Equal(t, base+'a', New().AppendRune('a').HashCode())
		require.Equal(t, base-3, New().AppendInt16(-3).HashCode())
		require.Equal(t, base+7, New().AppendInt64(7).HashCode())
		require.Equal(t, base+7, New().AppendInt(7).HashCode())
		require.Equal(t, base+structs.HashString("foo"), New().AppendString("foo").HashCode())
		require.Equal(t, base+int32(math.Float32bits(2.5)), New().AppendFloat32(2.5).HashCode())
		require.Equal(t, New().AppendInt64(int64(math.Float64bits(2.5))).HashCode(), New().AppendFloat64(2.5).HashCode())
	})

	t.Run("Overflow", func(t *testing.T) {
		h := New()
		for i := 0; i < 100; i++ {
			h.AppendInt32(math.MaxInt32)
		}
		g := New()
		for i := 0; i < 100; i++ {
			g.AppendInt32(math.MaxInt32)
		}
		require.Equal(t, h.HashCode(), g.HashCode())
	})

	t.Run("Int64", func(t *testing.T) {

		values := []int64{math.MaxInt64, math.MinInt64, 1, 0, -1}

		for _, v := range values {
			require.Equal(t, New().AppendInt64(v).HashCode(), New().AppendInt64(v).HashCode())
		}

		require.NotEqual(t, New().AppendInt64(math.MaxInt64).HashCode(), New().AppendInt64(1).HashCode())
		require.NotEqual(t, New().AppendInt64(math.MaxInt64).HashCode(), New().AppendInt64(0).HashCode())
		require.NotEqual(t, New().AppendInt64(math.MaxInt64).HashCode(), New().AppendInt64(-1).HashCode())
		require.NotEqual(t, New().AppendInt64(math.MinInt64).HashCode(), New().AppendInt64(1).HashCode())
		require.NotEqual(t, New().AppendInt64(math.MinInt64).HashCode(), New().AppendInt64(0).HashCode())
		require.NotEqual(t, New().AppendInt64(math.MinInt64).HashCode(), New().AppendInt64(-1).HashCode())
		require.NotEqual(t, New().AppendInt64(1).HashCode(), New().AppendInt64(0).HashCode())
		require.NotEqual(t, New().AppendInt64(1).HashCode(), New().AppendInt64(-1).HashCode())
	})

	t.Run("Float64", func(t *testing.T) {
		require.Equal(t, New().AppendFloat64(1).HashCode(), New().AppendFloat64(1).HashCode())
		require.Equal(t, New().AppendFloat64(math.NaN()).HashCode(), New().AppendFloat64(math.NaN()).HashCode())
		require.Equal(t,
			New().AppendFloat64(math.NaN()).HashCode(),
			New().AppendFloat64(math.Float64frombits(0x7ff0000000000001)).HashCode())
		require.NotEqual(t, New().AppendFloat64(0).HashCode(), New().AppendFloat64(math.Copysign(0, -1)).HashCode())
		require.NotEqual(t, New().AppendFloat64(math.Inf(1)).HashCode(), New().AppendFloat64(math.Inf(-1)).HashCode())
	})

	t.Run("Float32", func(t *testing.T) {
		require.Equal(t, New().AppendFloat32(float32(math.NaN())).HashCode(), New().AppendFloat32(float32(math.NaN())).HashCode())
		require.NotEqual(t, New().AppendFloat32(0).HashCode(), New().AppendFloat32(float32(math.Copysign(0, -1))).HashCode())
	})

	t.Run("Object", func(t *testing.T) {
		require.Equal(t, int32(17*37), New().AppendObject(nil).HashCode())
		require.Equal(t, New().AppendString("foo").HashCode(), New().AppendObject("foo").HashCode())
		require.Equal(t, New().AppendInt32(5).HashCode(), New().AppendObject(int32(5)).HashCode())
		require.Equal(t, New().AppendFloat64(2.5).HashCode(), New().AppendObject(2.5).HashCode())

		a := []int32{1, 2}
		require.Equal(t, New().AppendObject(a).HashCode(), New().AppendObject(a).HashCode())
	})

	t.Run("Arrays", func(t *testing.T) {

		t.Run("NilAndEmpty", func(t *testing.T) {
			require.Equal(t, int32(17*37), New().AppendInt32s(nil).HashCode())
			require.Equal(t, int32(17), New().AppendInt32s([]int32{}).HashCode())
			require.Equal(t, int32(17*37), New().AppendBools(nil).HashCode())
			require.Equal(t, int32(17*37), New().AppendObjects(nil).HashCode())
			require.Equal(t, int32(17*37), New().AppendDeepObjects(nil).HashCode())
			require.Equal(t, int32(17*37), New().AppendFloat64s(nil).HashCode())
		})

		t.Run("Elements", func(t *testing.T) {
			require.Equal(t, New().AppendInt32(1).AppendInt32(2).HashCode(), New().AppendInt32s([]int32{1, 2}).HashCode())
			require.Equal(t, New().AppendBool(true).AppendBool(false).HashCode(), New().AppendBools([]bool{true, false}).HashCode())
			require.Equal(t, New().AppendByte(1).AppendByte(200).HashCode(), New().AppendBytes([]byte{1, 200}).HashCode())
			require.Equal(t, New().AppendRune('a').AppendRune('b').HashCode(), New().AppendRunes([]rune("ab")).HashCode())
			require.Equal(t, New().AppendInt16(-1).AppendInt16(1).HashCode(), New().AppendInt16s([]int16{-1, 1}).HashCode())
			require.Equal(t, New().AppendInt64(-1).AppendInt64(1<<40).HashCode(), New().AppendInt64s([]int64{-1, 1 << 40}).HashCode())
			require.Equal(t, New().AppendFloat32(1.5).AppendFloat32(-2).HashCode(), New().AppendFloat32s([]float32{1.5, -2}).HashCode())
			require.Equal(t, New().AppendFloat64(1.5).AppendFloat64(-2).HashCode(), New().AppendFloat64s([]float64{1.5, -2}).HashCode())
			require.Equal(t, New().AppendObject("a").AppendObject(nil).HashCode(), New().AppendObjects([]any{"a", nil}).HashCode())
		})

		t.Run("Order", func(t *testing.T) {
			require.NotEqual(t, New().AppendInt32s([]int32{1, 2}).HashCode(), New().AppendInt32s([]int32{2, 1}).HashCode())
		})
	})

	t.Run("Generic", func(t *testing.T) {
		require.Equal(t, New().AppendInt32s([]int32{1, 2}).HashCode(), New().AppendGeneric([]int32{1, 2}).HashCode())
		require.Equal(t, New().AppendInt32s([]int32{1, 2}).HashCode(), New().AppendGeneric(structs.Int32s{1, 2}).HashCode())
		require.Equal(t, New().AppendBools([]bool{true}).HashCode(), New().AppendGeneric([]bool{true}).HashCode())
		require.Equal(t, New().AppendRunes([]rune("xy")).HashCode(), New().AppendGeneric(structs.Runes("xy")).HashCode())
		require.Equal(t, New().AppendFloat64s([]float64{2}).HashCode(), New().AppendGeneric([]float64{2}).HashCode())
		require.Equal(t, New().AppendObjects([]any{"a", 1}).HashCode(), New().AppendGeneric([]any{"a", 1}).HashCode())
		require.Equal(t, New().AppendObject(nil).HashCode(), New().AppendGeneric(structs.Float32s(nil)).HashCode())
		require.Equal(t, New().AppendObject("one").HashCode(), New().AppendGeneric("one").HashCode())
	})

	t.Run("Deep", func(t *testing.T) {
		a := []any{[]int32{1}}
		b := []any{[]int32{1}}

		// Nested arrays are hashed by identity unless deep.
		require.Equal(t, New().AppendDeep(a).HashCode(), New().AppendDeep(b).HashCode())
		require.Equal(t, New().AppendDeepObjects(a).HashCode(), New().AppendDeepObjects(b).HashCode())
		require.Equal(t, New().AppendInt32s([]int32{1}).HashCode(), New().AppendDeep(a).HashCode())

		x := []any{[]any{[]float64{1, 2}, []float64{3}}, "leaf", nil}
		require.Equal(t,
			New().AppendFloat64s([]float64{1, 2}).AppendFloat64s([]float64{3}).AppendString("leaf").AppendObject(nil).HashCode(),
			New().AppendDeepObjects(x).HashCode())
	})
}
