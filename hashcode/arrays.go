package hashcode

import (
	"github.com/Pro7ech/minicommons/utils/structs"
)

// AppendBools appends a bool array. A nil array contributes 0 once,
// an empty array contributes nothing.
func (b *Builder) AppendBools(a []bool) *Builder {
	if a == nil {
		return b.fold(0)
	}
	for _, v := range a {
		b.AppendBool(v)
	}
	return b
}

// AppendBytes appends a byte array, see [Builder.AppendBools].
func (b *Builder) AppendBytes(a []byte) *Builder {
	return appendNumbers(b, a)
}

// AppendRunes appends a character array, see [Builder.AppendBools].
func (b *Builder) AppendRunes(a []rune) *Builder {
	return appendNumbers(b, a)
}

// AppendInt16s appends an int16 array, see [Builder.AppendBools].
func (b *Builder) AppendInt16s(a []int16) *Builder {
	return appendNumbers(b, a)
}

// AppendInt32s appends an int32 array, see [Builder.AppendBools].
func (b *Builder) AppendInt32s(a []int32) *Builder {
	return appendNumbers(b, a)
}

// AppendInt64s appends an int64 array, see [Builder.AppendBools].
func (b *Builder) AppendInt64s(a []int64) *Builder {
	return appendNumbers(b, a)
}

// AppendFloat32s appends a float32 array, see [Builder.AppendBools].
func (b *Builder) AppendFloat32s(a []float32) *Builder {
	return appendNumbers(b, a)
}

// AppendFloat64s appends a float64 array, see [Builder.AppendBools].
func (b *Builder) AppendFloat64s(a []float64) *Builder {
	return appendNumbers(b, a)
}

// AppendObjects appends an object array. Elements are appended with
// [Builder.AppendObject].
func (b *Builder) AppendObjects(a []any) *Builder {
	return b.appendObjects(a, false)
}

// AppendDeepObjects appends an object array. Elements are appended with
// [Builder.AppendDeep].
func (b *Builder) AppendDeepObjects(a []any) *Builder {
	return b.appendObjects(a, true)
}

func (b *Builder) appendValue(v any, deep bool) *Builder {

	a, ok := structs.ArrayOf(v)
	if !ok || a.IsNil() {
		return b.AppendObject(v)
	}

	switch a := a.(type) {
	case structs.Bools:
		return b.AppendBools(a)
	case structs.Bytes:
		return appendNumbers(b, a)
	case structs.Runes:
		return appendNumbers(b, a)
	case structs.Int16s:
		return appendNumbers(b, a)
	case structs.Int32s:
		return appendNumbers(b, a)
	case structs.Int64s:
		return appendNumbers(b, a)
	case structs.Float32s:
		return appendNumbers(b, a)
	case structs.Float64s:
		return appendNumbers(b, a)
	case structs.Objects:
		return b.appendObjects(a, deep)
	default:
		return b.AppendObject(v)
	}
}

func (b *Builder) appendObjects(a []any, deep bool) *Builder {

	if a == nil {
		return b.fold(0)
	}

	for _, v := range a {
		if deep {
			b.appendValue(v, true)
		} else {
			b.AppendObject(v)
		}
	}

	return b
}

func appendNumbers[S ~[]T, T structs.Number](b *Builder, a S) *Builder {
	if a == nil {
		return b.fold(0)
	}
	b.total = structs.Vector[T](a).Fold(b.total, b.multiplier)
	return b
}
