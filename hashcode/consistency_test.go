package hashcode

import (
	"math"
	"testing"

	"github.com/Pro7ech/minicommons/equals"
	"github.com/Pro7ech/minicommons/utils/structs"
	"github.com/stretchr/testify/require"
)

type celsius struct {
	degrees float64
	label   string
}

func (c celsius) Equal(other any) bool {
	o, ok := other.(celsius)
	return ok && equals.New().
		AppendFloat64(c.degrees, o.degrees).
		AppendString(c.label, o.label).
		IsEquals()
}

func (c celsius) Hash() int32 {
	return New().
		AppendFloat64(c.degrees).
		AppendString(c.label).
		HashCode()
}

// Values reported equal by the equals package must hash identically.
func TestConsistency(t *testing.T) {

	nan := math.NaN()
	otherNaN := math.Float64frombits(0x7ff8000000000042)

	shared := []int32{4, 5, 6}

	pairs := []struct {
		name string
		x, y any
	}{
		{"Nil", nil, nil},
		{"NilArrays", []int32(nil), []float64(nil)},
		{"String", "abc", "abc"},
		{"Int", 42, 42},
		{"NaN", nan, otherNaN},
		{"Float32NaN", float32(nan), float32(otherNaN)},
		{"Int32s", []int32{1, 2, 3}, []int32{1, 2, 3}},
		{"SharedArray", shared, shared},
		{"Runes", structs.Runes("go"), structs.Runes("go")},
		{"Float64s", []float64{nan, 1}, []float64{otherNaN, 1}},
		{"Empty", []bool{}, []bool{}},
		{"Objects", []any{"a", nil, 1}, []any{"a", nil, 1}},
		{"Equaler", celsius{21.5, "room"}, celsius{21.5, "room"}},
		{"NestedShared", []any{shared}, []any{shared}},
		{"Nested", []any{[]any{[]int64{1}, nil}, "x"}, []any{[]any{[]int64{1}, nil}, "x"}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {

			if equals.New().AppendObject(p.x, p.y).IsEquals() {
				require.Equal(t, New().AppendObject(p.x).HashCode(), New().AppendObject(p.y).HashCode())
			}

			if equals.New().AppendGeneric(p.x, p.y).IsEquals() {
				require.Equal(t, New().AppendGeneric(p.x).HashCode(), New().AppendGeneric(p.y).HashCode())
			}

			require.True(t, equals.New().AppendDeep(p.x, p.y).IsEquals())
			require.Equal(t, New().AppendDeep(p.x).HashCode(), New().AppendDeep(p.y).HashCode())
		})
	}

	t.Run("Fields", func(t *testing.T) {

		x := celsius{math.Copysign(0, -1), "freezing"}
		y := celsius{0, "freezing"}

		require.False(t, x.Equal(y))
		require.NotEqual(t, x.Hash(), y.Hash())

		require.True(t, x.Equal(celsius{math.Copysign(0, -1), "freezing"}))
		require.Equal(t, x.Hash(), celsius{math.Copysign(0, -1), "freezing"}.Hash())
	})
}
