package structs

import (
	"unsafe"
)

// Number is the set of element types accepted by [Vector].
type Number interface {
	int8 | int16 | int32 | int64 | int | uint8 | uint16 | uint32 | uint64 | uint | float32 | float64
}

// Vector is a struct wrapping a slice of numbers, compared and hashed
// element by element. Floating point components are compared by bit
// pattern, see [EqualFloat].
type Vector[T Number] []T

// Equal reports whether the receiver and other have the same length
// and the same components.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {

	if len(v) != len(other) {
		return false
	}

	if SameSlice([]T(v), []T(other)) {
		return true
	}

	switch v := any(v).(type) {
	case Vector[float32]:
		o := any(other).(Vector[float32])
		for i := range v {
			if !EqualFloat(v[i], o[i]) {
				return false
			}
		}
		return true
	case Vector[float64]:
		o := any(other).(Vector[float64])
		for i := range v {
			if !EqualFloat(v[i], o[i]) {
				return false
			}
		}
		return true
	}

	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}

	return true
}

// Fold folds the hash contribution of each component into total,
// in index order, as total = total*multiplier + contribution.
func (v Vector[T]) Fold(total, multiplier int32) int32 {

	switch v := any(v).(type) {
	case Vector[float32]:
		for _, x := range v {
			total = total*multiplier + HashFloat(x)
		}
		return total
	case Vector[float64]:
		for _, x := range v {
			total = total*multiplier + HashFloat(x)
		}
		return total
	}

	for _, x := range v {
		total = total*multiplier + hashInteger(x)
	}

	return total
}

// hashInteger is HashInteger for the integer members of Number.
func hashInteger[T Number](x T) int32 {
	if unsafe.Sizeof(x) == 8 {
		return foldUint64(uint64(x))
	}
	return int32(x)
}
