package structs

import (
	"math/big"
	"reflect"

	"github.com/segmentio/fasthash/fnv1a"
)

// IsNull reports whether v is absent: a nil interface, or a nil
// pointer, slice, map, channel or function.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if a, ok := v.(Array); ok {
		return a.IsNil()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Equal compares two values one level deep:
//
//   - two null values are equal, a null value equals nothing else;
//   - an [Equaler] decides for itself;
//   - floating point and complex values are compared by bit pattern;
//   - *big.Int and *big.Rat are compared by value;
//   - arrays and other slices are equal only if they are the same slice,
//     and empty slices of the same type are all the same slice;
//   - comparable values are compared with ==;
//   - anything else falls back to reflect.DeepEqual.
func Equal(x, y any) bool {

	if xNull, yNull := IsNull(x), IsNull(y); xNull || yNull {
		return xNull && yNull
	}

	switch x := x.(type) {
	case Equaler:
		return x.Equal(y)
	case float32:
		y, ok := y.(float32)
		return ok && EqualFloat(x, y)
	case float64:
		y, ok := y.(float64)
		return ok && EqualFloat(x, y)
	case complex64:
		y, ok := y.(complex64)
		return ok && equalComplex64(x, y)
	case complex128:
		y, ok := y.(complex128)
		return ok && equalComplex128(x, y)
	case *big.Int:
		y, ok := y.(*big.Int)
		return ok && x.Cmp(y) == 0
	case *big.Rat:
		y, ok := y.(*big.Rat)
		return ok && x.Cmp(y) == 0
	}

	if xa, ok := ArrayOf(x); ok {
		ya, ok := ArrayOf(y)
		return ok && Same(xa, ya)
	}

	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)

	if xv.Type() != yv.Type() {
		return false
	}

	if xv.Kind() == reflect.Slice {
		return xv.Len() == yv.Len() && (xv.Len() == 0 || xv.Pointer() == yv.Pointer())
	}

	// A comparable type may still hold an uncomparable value in an
	// interface field, on which == panics.
	if xv.Comparable() && yv.Comparable() {
		return x == y
	}

	return reflect.DeepEqual(x, y)
}

// Hash returns the hash code of a value, consistent with [Equal]: values
// that are Equal have the same Hash. Null values hash to 0, as do values
// implementing [Equaler] but not [Hasher] and values of types this
// function knows nothing about (which is OK in terms of correctness).
func Hash(v any) int32 {

	if IsNull(v) {
		return 0
	}

	switch v := v.(type) {
	case Hasher:
		return v.Hash()
	case Equaler:
		return 0
	case bool:
		return HashBool(v)
	case int:
		return HashInteger(v)
	case int8:
		return HashInteger(v)
	case int16:
		return HashInteger(v)
	case int32:
		return HashInteger(v)
	case int64:
		return HashInteger(v)
	case uint:
		return HashInteger(v)
	case uint8:
		return HashInteger(v)
	case uint16:
		return HashInteger(v)
	case uint32:
		return HashInteger(v)
	case uint64:
		return HashInteger(v)
	case uintptr:
		return HashInteger(v)
	case float32:
		return HashFloat(v)
	case float64:
		return HashFloat(v)
	case complex64:
		return hashComplex64(v)
	case complex128:
		return hashComplex128(v)
	case string:
		return HashString(v)
	case *big.Int:
		return hashBigInt(v)
	case *big.Rat:
		return Combine(hashBigInt(v.Num()), hashBigInt(v.Denom()))
	}

	if a, ok := ArrayOf(v); ok {
		return hashIdentity(a.addr(), a.Len())
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice:
		return hashIdentity(rv.Pointer(), rv.Len())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return HashInteger(uint64(rv.Pointer()))
	}

	return 0
}

// HashString returns the 32-bit FNV-1a hash of s.
func HashString(s string) int32 {
	return int32(fnv1a.HashString32(s))
}

func hashBigInt(z *big.Int) (h int32) {
	h = int32(z.Sign())
	for _, word := range z.Bits() {
		h = Combine(h, HashInteger(uint64(word)))
	}
	return
}
