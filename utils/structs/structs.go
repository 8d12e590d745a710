// Package structs implements the value model shared by the equality and hash code builders:
// the object contracts, the tagged union of supported arrays and the bitwise helpers
// that keep equality and hashing consistent with each other.
package structs

const (
	// Seed is the default initial total of a hash code builder.
	Seed int32 = 17

	// Multiplier is the default factor applied to the running total
	// before folding in the next contribution.
	Multiplier int32 = 37
)

// Equaler is implemented by values that decide their own equality.
// Two values that are Equal must return the same Hash.
type Equaler interface {
	Equal(other any) bool
}

// Hasher is implemented by values that compute their own hash code.
type Hasher interface {
	Hash() int32
}

// Combine folds h into acc with the default [Multiplier].
func Combine(acc, h int32) int32 {
	return acc*Multiplier + h
}
