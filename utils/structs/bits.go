package structs

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Every NaN is reported with these patterns, so that all NaNs are
// equal to each other and share one hash code.
const (
	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

// FloatBits returns the IEEE-754 bit pattern of x, with NaN canonicalized.
// The pattern of a 32-bit float occupies the low 32 bits.
func FloatBits[T constraints.Float](x T) uint64 {

	if unsafe.Sizeof(x) == 4 {
		if x != x {
			return uint64(canonicalNaN32)
		}
		return uint64(math.Float32bits(float32(x)))
	}

	if x != x {
		return canonicalNaN64
	}

	return math.Float64bits(float64(x))
}

// EqualFloat reports whether x and y have the same bit pattern.
// Unlike ==, NaN is equal to NaN and 0.0 is not equal to -0.0.
func EqualFloat[T constraints.Float](x, y T) bool {
	return FloatBits(x) == FloatBits(y)
}

// HashFloat returns the hash contribution of a float: its bit pattern,
// folded like an integer of the same width.
func HashFloat[T constraints.Float](x T) int32 {
	if unsafe.Sizeof(x) == 4 {
		return int32(uint32(FloatBits(x)))
	}
	return foldUint64(FloatBits(x))
}

// HashInteger returns the hash contribution of an integer. Values narrower
// than 64 bits contribute themselves, 64-bit values fold their high half
// into their low half.
func HashInteger[T constraints.Integer](v T) int32 {
	if unsafe.Sizeof(v) == 8 {
		return foldUint64(uint64(v))
	}
	return int32(v)
}

// HashBool returns 1 for true and 0 for false.
func HashBool(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func equalComplex64(x, y complex64) bool {
	return EqualFloat(real(x), real(y)) && EqualFloat(imag(x), imag(y))
}

func equalComplex128(x, y complex128) bool {
	return EqualFloat(real(x), real(y)) && EqualFloat(imag(x), imag(y))
}

func hashComplex64(x complex64) int32 {
	return Combine(HashFloat(real(x)), HashFloat(imag(x)))
}

func hashComplex128(x complex128) int32 {
	return Combine(HashFloat(real(x)), HashFloat(imag(x)))
}

func foldUint64(u uint64) int32 {
	return int32(u ^ u>>32)
}
