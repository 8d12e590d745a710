package equals

import (
	"github.com/Pro7ech/minicommons/utils/structs"
)

// AppendBools compares two bool arrays. Length and all values are
// compared. A nil array is only equal to a nil array.
func (b *Builder) AppendBools(x, y []bool) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalBools(x, y)
	return b
}

// AppendBytes compares two byte arrays, see [Builder.AppendBools].
func (b *Builder) AppendBytes(x, y []byte) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendRunes compares two character arrays, see [Builder.AppendBools].
func (b *Builder) AppendRunes(x, y []rune) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendInt16s compares two int16 arrays, see [Builder.AppendBools].
func (b *Builder) AppendInt16s(x, y []int16) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendInt32s compares two int32 arrays, see [Builder.AppendBools].
func (b *Builder) AppendInt32s(x, y []int32) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendInt64s compares two int64 arrays, see [Builder.AppendBools].
func (b *Builder) AppendInt64s(x, y []int64) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendFloat32s compares two float32 arrays with [Builder.AppendFloat32]
// semantics, see [Builder.AppendBools].
func (b *Builder) AppendFloat32s(x, y []float32) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendFloat64s compares two float64 arrays with [Builder.AppendFloat64]
// semantics, see [Builder.AppendBools].
func (b *Builder) AppendFloat64s(x, y []float64) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalNumbers(x, y)
	return b
}

// AppendObjects performs a one level comparison of two object arrays:
// elements are compared with [Builder.AppendObject] semantics.
func (b *Builder) AppendObjects(x, y []any) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalObjects(x, y, false)
	return b
}

// AppendDeepObjects performs a deep comparison of two object arrays:
// elements are compared with [Builder.AppendDeep] semantics. Use it for
// the top level of multi-dimensional and ragged arrays.
func (b *Builder) AppendDeepObjects(x, y []any) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equalObjects(x, y, true)
	return b
}

// equal compares two values, element by element when they are arrays.
func equal(x, y any, deep bool) bool {

	xa, xIsArray := structs.ArrayOf(x)
	ya, yIsArray := structs.ArrayOf(y)

	if !xIsArray || !yIsArray {
		return structs.Equal(x, y)
	}

	if xa.Kind() != ya.Kind() {
		return xa.IsNil() && ya.IsNil()
	}

	switch xa := xa.(type) {
	case structs.Bools:
		return equalBools(xa, ya.(structs.Bools))
	case structs.Bytes:
		return equalNumbers(xa, ya.(structs.Bytes))
	case structs.Runes:
		return equalNumbers(xa, ya.(structs.Runes))
	case structs.Int16s:
		return equalNumbers(xa, ya.(structs.Int16s))
	case structs.Int32s:
		return equalNumbers(xa, ya.(structs.Int32s))
	case structs.Int64s:
		return equalNumbers(xa, ya.(structs.Int64s))
	case structs.Float32s:
		return equalNumbers(xa, ya.(structs.Float32s))
	case structs.Float64s:
		return equalNumbers(xa, ya.(structs.Float64s))
	case structs.Objects:
		return equalObjects(xa, ya.(structs.Objects), deep)
	default:
		return false
	}
}

func equalNumbers[S ~[]T, T structs.Number](x, y S) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return structs.Vector[T](x).Equal(structs.Vector[T](y))
}

func equalBools[S ~[]bool](x, y S) bool {

	if x == nil || y == nil {
		return x == nil && y == nil
	}

	if len(x) != len(y) {
		return false
	}

	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

func equalObjects[S ~[]any](x, y S, deep bool) bool {

	if x == nil || y == nil {
		return x == nil && y == nil
	}

	if len(x) != len(y) {
		return false
	}

	if structs.SameSlice([]any(x), []any(y)) {
		return true
	}

	for i := range x {
		if deep {
			if !equal(x[i], y[i], true) {
				return false
			}
		} else if !structs.Equal(x[i], y[i]) {
			return false
		}
	}

	return true
}
