// Package equals implements a fluent builder for equality methods.
//
// A type compares its fields one after the other and reads the result
// at the end:
//
//	func (p *Person) Equal(other any) bool {
//		o, ok := other.(*Person)
//		if !ok {
//			return false
//		}
//		return equals.New().
//			AppendString(p.Name, o.Name).
//			AppendInt32(p.Age, o.Age).
//			AppendFloat64s(p.Scores, o.Scores).
//			IsEquals()
//	}
//
// Once a comparison fails, every later append is a no-op: the result
// stays false and the remaining (possibly expensive) comparisons are not
// evaluated.
//
// Floating point values are compared by bit pattern: NaN is equal to NaN
// and 0.0 is not equal to -0.0. This is the rule that keeps [Builder]
// consistent with the hashcode package.
package equals

import (
	"github.com/Pro7ech/minicommons/utils/structs"
)

// Builder accumulates the equality of a sequence of fields.
// The zero value is not ready for use, see [New].
// A Builder is meant to be used for a single comparison, by a single goroutine.
type Builder struct {
	isEquals bool
}

// New returns a new [Builder]. It starts off assuming that the fields are equal.
func New() *Builder {
	return &Builder{isEquals: true}
}

// IsEquals returns true if all the fields appended so far are equal.
func (b *Builder) IsEquals() bool {
	return b.isEquals
}

// AppendSuper adds the result of an embedded type's equality to the builder.
func (b *Builder) AppendSuper(superEquals bool) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = superEquals
	return b
}

// AppendBool tests if two bool are equal.
func (b *Builder) AppendBool(x, y bool) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendByte tests if two byte are equal.
func (b *Builder) AppendByte(x, y byte) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendRune tests if two characters are equal.
func (b *Builder) AppendRune(x, y rune) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendInt16 tests if two int16 are equal.
func (b *Builder) AppendInt16(x, y int16) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendInt32 tests if two int32 are equal.
func (b *Builder) AppendInt32(x, y int32) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendInt64 tests if two int64 are equal.
func (b *Builder) AppendInt64(x, y int64) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendInt tests if two int are equal.
func (b *Builder) AppendInt(x, y int) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendString tests if two strings are equal.
func (b *Builder) AppendString(x, y string) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = x == y
	return b
}

// AppendFloat32 tests if two float32 have the same bit pattern.
// This handles NaN, infinities and -0.0.
func (b *Builder) AppendFloat32(x, y float32) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = structs.EqualFloat(x, y)
	return b
}

// AppendFloat64 tests if two float64 have the same bit pattern.
// This handles NaN, infinities and -0.0.
func (b *Builder) AppendFloat64(x, y float64) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = structs.EqualFloat(x, y)
	return b
}

// AppendObject tests if two values are equal, using their own Equal
// method when they implement [structs.Equaler]. Arrays are not compared
// element by element: two arrays are equal only if they are the same
// array. Empty arrays of the same kind count as the same array.
// See [structs.Equal] for the complete rules.
func (b *Builder) AppendObject(x, y any) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = structs.Equal(x, y)
	return b
}

// AppendGeneric is like [Builder.AppendObject], but compares arrays
// (see [structs.ArrayOf]) element by element. Arrays of different kinds
// are never equal. The elements of object arrays are compared with
// [structs.Equal], so nested arrays are compared by identity.
func (b *Builder) AppendGeneric(x, y any) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equal(x, y, false)
	return b
}

// AppendDeep is like [Builder.AppendGeneric], but recurses through
// nested object arrays, so that multi-dimensional and ragged arrays are
// compared element by element at every level.
func (b *Builder) AppendDeep(x, y any) *Builder {
	if !b.isEquals {
		return b
	}
	b.isEquals = equal(x, y, true)
	return b
}
