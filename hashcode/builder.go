// Package hashcode implements a fluent builder for hash code methods.
//
// When appending a field, the running total is multiplied by a fixed
// multiplier and the field's contribution is added: with the default
// seed 17 and multiplier 37, appending the int32 45 gives 17*37+45 = 674.
//
//	func (p *Person) Hash() int32 {
//		return hashcode.New().
//			AppendString(p.Name).
//			AppendInt32(p.Age).
//			AppendFloat64s(p.Scores).
//			HashCode()
//	}
//
// Every field used by the equality method of a type should be appended,
// with the method matching the one used on the equals.Builder: values
// that the equals package reports equal always produce the same hash
// code. In particular floating point values contribute their bit
// pattern, so NaN hashes like NaN and 0.0 differs from -0.0.
//
// Contributions:
//
//   - bool: 1 for true, 0 for false;
//   - byte, rune, int16, int32: the value itself (byte is zero-extended);
//   - int64, int: the value with its high 32 bits XORed into the low 32 bits;
//   - float32: its 32-bit pattern, float64: its 64-bit pattern folded as an int64;
//   - string: its 32-bit FNV-1a hash;
//   - nil values (including nil arrays): 0;
//   - arrays: each element in turn, as if appended one by one.
package hashcode

import (
	"github.com/Pro7ech/minicommons/utils/structs"
)

// Builder accumulates the hash code of a sequence of fields.
// The zero value is not ready for use, see [New].
// A Builder is meant to be used for a single hash code, by a single goroutine.
type Builder struct {
	total      int32
	multiplier int32
}

// New returns a new [Builder] with the default seed [structs.Seed]
// and multiplier [structs.Multiplier].
func New() *Builder {
	return NewWithConstants(structs.Seed, structs.Multiplier)
}

// NewWithConstants returns a new [Builder] with the given seed and
// multiplier. Both should be non-zero odd numbers, ideally different
// for each type.
func NewWithConstants(seed, multiplier int32) *Builder {
	return &Builder{total: seed, multiplier: multiplier}
}

// HashCode returns the computed hash code.
func (b *Builder) HashCode() int32 {
	return b.total
}

func (b *Builder) fold(contribution int32) *Builder {
	b.total = b.total*b.multiplier + contribution
	return b
}

// AppendSuper adds the hash code of an embedded type to the builder.
func (b *Builder) AppendSuper(superHash int32) *Builder {
	return b.fold(superHash)
}

// AppendBool appends a bool: 1 when true, 0 when false.
func (b *Builder) AppendBool(v bool) *Builder {
	return b.fold(structs.HashBool(v))
}

// AppendByte appends a byte.
func (b *Builder) AppendByte(v byte) *Builder {
	return b.fold(structs.HashInteger(v))
}

// AppendRune appends a character.
func (b *Builder) AppendRune(v rune) *Builder {
	return b.fold(structs.HashInteger(v))
}

// AppendInt16 appends an int16.
func (b *Builder) AppendInt16(v int16) *Builder {
	return b.fold(structs.HashInteger(v))
}

// AppendInt32 appends an int32.
func (b *Builder) AppendInt32(v int32) *Builder {
	return b.fold(v)
}

// AppendInt64 appends an int64.
func (b *Builder) AppendInt64(v int64) *Builder {
	return b.fold(structs.HashInteger(v))
}

// AppendInt appends an int. It contributes like the int64 of the same value.
func (b *Builder) AppendInt(v int) *Builder {
	return b.fold(structs.HashInteger(int64(v)))
}

// AppendString appends a string.
func (b *Builder) AppendString(v string) *Builder {
	return b.fold(structs.HashString(v))
}

// AppendFloat32 appends the bit pattern of a float32.
func (b *Builder) AppendFloat32(v float32) *Builder {
	return b.fold(structs.HashFloat(v))
}

// AppendFloat64 appends the bit pattern of a float64.
func (b *Builder) AppendFloat64(v float64) *Builder {
	return b.fold(structs.HashFloat(v))
}

// AppendObject appends the hash code of a value, see [structs.Hash].
// Arrays are hashed by identity, like the equals package compares them
// with AppendObject.
func (b *Builder) AppendObject(v any) *Builder {
	return b.fold(structs.Hash(v))
}

// AppendGeneric is like [Builder.AppendObject], but appends the elements
// of arrays (see [structs.ArrayOf]) one level deep.
func (b *Builder) AppendGeneric(v any) *Builder {
	return b.appendValue(v, false)
}

// AppendDeep is like [Builder.AppendGeneric], but recurses through
// nested object arrays.
func (b *Builder) AppendDeep(v any) *Builder {
	return b.appendValue(v, true)
}
