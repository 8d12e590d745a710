package structs

import (
	"unsafe"
)

// Kind is the component type of an [Array].
type Kind int

const (
	// Scalar tags values that are not arrays.
	Scalar Kind = iota
	Bool
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	Object
)

var kindNames = [...]string{
	Scalar: "scalar",
	Bool:   "bool",
	Byte:   "byte",
	Char:   "char",
	Short:  "short",
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Array is the tagged union of the array types understood by the
// equality and hash code builders. The set is closed: it is implemented
// only by the slice types of this package.
//
// A nil Array stands for an absent array and is distinct from an
// empty one.
type Array interface {
	// Kind returns the component type of the array.
	Kind() Kind
	// Len returns the number of elements.
	Len() int
	// IsNil reports whether the array is absent.
	IsNil() bool

	addr() uintptr
}

type (
	// Bools is an array of bool.
	Bools []bool
	// Bytes is an array of byte.
	Bytes []byte
	// Runes is an array of characters. It is distinct from [Int32s]
	// even though both share the same element type.
	Runes []rune
	// Int16s is an array of int16.
	Int16s []int16
	// Int32s is an array of int32.
	Int32s []int32
	// Int64s is an array of int64.
	Int64s []int64
	// Float32s is an array of float32.
	Float32s []float32
	// Float64s is an array of float64.
	Float64s []float64
	// Objects is an array of arbitrary values. Elements may themselves
	// be arrays, which makes multi-dimensional and ragged arrays.
	Objects []any
)

func (Bools) Kind() Kind    { return Bool }
func (Bytes) Kind() Kind    { return Byte }
func (Runes) Kind() Kind    { return Char }
func (Int16s) Kind() Kind   { return Short }
func (Int32s) Kind() Kind   { return Int }
func (Int64s) Kind() Kind   { return Long }
func (Float32s) Kind() Kind { return Float }
func (Float64s) Kind() Kind { return Double }
func (Objects) Kind() Kind  { return Object }

func (a Bools) Len() int    { return len(a) }
func (a Bytes) Len() int    { return len(a) }
func (a Runes) Len() int    { return len(a) }
func (a Int16s) Len() int   { return len(a) }
func (a Int32s) Len() int   { return len(a) }
func (a Int64s) Len() int   { return len(a) }
func (a Float32s) Len() int { return len(a) }
func (a Float64s) Len() int { return len(a) }
func (a Objects) Len() int  { return len(a) }

func (a Bools) IsNil() bool    { return a == nil }
func (a Bytes) IsNil() bool    { return a == nil }
func (a Runes) IsNil() bool    { return a == nil }
func (a Int16s) IsNil() bool   { return a == nil }
func (a Int32s) IsNil() bool   { return a == nil }
func (a Int64s) IsNil() bool   { return a == nil }
func (a Float32s) IsNil() bool { return a == nil }
func (a Float64s) IsNil() bool { return a == nil }
func (a Objects) IsNil() bool  { return a == nil }

func (a Bools) addr() uintptr    { return SliceAddr(a) }
func (a Bytes) addr() uintptr    { return SliceAddr(a) }
func (a Runes) addr() uintptr    { return SliceAddr(a) }
func (a Int16s) addr() uintptr   { return SliceAddr(a) }
func (a Int32s) addr() uintptr   { return SliceAddr(a) }
func (a Int64s) addr() uintptr   { return SliceAddr(a) }
func (a Float32s) addr() uintptr { return SliceAddr(a) }
func (a Float64s) addr() uintptr { return SliceAddr(a) }
func (a Objects) addr() uintptr  { return SliceAddr(a) }

// ArrayOf returns the [Array] held by v. Besides the types of this
// package, it accepts the unnamed slices []bool, []byte, []int16,
// []int32, []int64, []float32, []float64 and []any. A []int32 is an
// [Int32s]: use [Runes] explicitly for characters.
func ArrayOf(v any) (a Array, ok bool) {
	switch v := v.(type) {
	case Array:
		return v, true
	case []bool:
		return Bools(v), true
	case []byte:
		return Bytes(v), true
	case []int16:
		return Int16s(v), true
	case []int32:
		return Int32s(v), true
	case []int64:
		return Int64s(v), true
	case []float32:
		return Float32s(v), true
	case []float64:
		return Float64s(v), true
	case []any:
		return Objects(v), true
	default:
		return nil, false
	}
}

// KindOf returns the component type of v, or [Scalar] if v is not an array.
func KindOf(v any) Kind {
	if a, ok := ArrayOf(v); ok {
		return a.Kind()
	}
	return Scalar
}

// Same reports whether x and y are the same array: same kind, same
// backing storage and same length. Two nil arrays of the same kind
// are the same, and so are two empty non-nil arrays of the same kind,
// which have no storage to tell apart.
func Same(x, y Array) bool {

	if x.Kind() != y.Kind() || x.IsNil() != y.IsNil() || x.Len() != y.Len() {
		return false
	}

	return x.Len() == 0 || x.addr() == y.addr()
}

// SliceAddr returns the address of the first element of s,
// or 0 if s is nil.
func SliceAddr[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// SameSlice reports whether x and y share backing storage and length.
func SameSlice[T any](x, y []T) bool {
	return (x == nil) == (y == nil) && len(x) == len(y) && SliceAddr(x) == SliceAddr(y)
}

func hashIdentity(addr uintptr, n int) int32 {
	if n == 0 {
		addr = 0
	}
	return Combine(HashInteger(uint64(addr)), int32(n))
}
