// Package strutil implements left-padding of integers and strings to a
// minimum field width.
//
// Padding never truncates: when the content is at least as long as the
// requested size, it is written as is and no pad character is emitted.
package strutil

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrNegative is returned when a negative integer is given to
// [DigitLength] or one of the padding functions.
var ErrNegative = errors.New("strutil: negative value")

// Buffer is a growable destination for the Into variants.
// It is implemented by *strings.Builder, *bytes.Buffer and *bufio.Writer.
type Buffer interface {
	io.Writer
	io.StringWriter
	WriteRune(r rune) (n int, err error)
}

// thresholds[i] is the largest value with i+1 decimal digits.
var thresholds = [...]uint64{
	9,
	99,
	999,
	9999,
	99999,
	999999,
	9999999,
	99999999,
	999999999,
	9999999999,
	99999999999,
	999999999999,
	9999999999999,
	99999999999999,
	999999999999999,
	9999999999999999,
	99999999999999999,
	999999999999999999,
	9999999999999999999,
}

// DigitLength returns the number of decimal digits of n.
// It returns an error wrapping [ErrNegative] if n is negative.
func DigitLength[T constraints.Integer](n T) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrNegative, "digit length of %d", n)
	}
	return digits(uint64(n)), nil
}

// DigitLengthPtr is like [DigitLength], but accepts an absent value,
// which has no digits.
func DigitLengthPtr[T constraints.Integer](n *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	return DigitLength(*n)
}

func digits(u uint64) int {
	for i, t := range thresholds {
		if u <= t {
			return i + 1
		}
	}
	return len(thresholds) + 1
}

// LeftPad returns the decimal representation of n, preceded by as many
// padChar as needed to reach size characters.
func LeftPad[T constraints.Integer](n T, size int, padChar rune) (string, error) {
	var sb strings.Builder
	sb.Grow(max(size, len(thresholds)+1))
	if err := LeftPadInto(&sb, n, size, padChar); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LeftPadPtr is like [LeftPad], but accepts an absent value, in which
// case the result is size padChar and nothing else.
func LeftPadPtr[T constraints.Integer](n *T, size int, padChar rune) (string, error) {
	if n == nil {
		return LeftPadString("", size, padChar), nil
	}
	return LeftPad(*n, size, padChar)
}

// LeftPadInto writes to dst what [LeftPad] would return.
// If a write to dst fails, the error is returned and whatever was
// written before the failure is left in dst.
func LeftPadInto[T constraints.Integer](dst Buffer, n T, size int, padChar rune) error {

	if n < 0 {
		return errors.Wrapf(ErrNegative, "left pad of %d", n)
	}

	var buf [24]byte
	b := strconv.AppendUint(buf[:0], uint64(n), 10)

	if err := writePadding(dst, size-len(b), padChar); err != nil {
		return err
	}

	if _, err := dst.Write(b); err != nil {
		return errors.Wrap(err, "write digits")
	}

	return nil
}

// LeftPadPtrInto writes to dst what [LeftPadPtr] would return.
func LeftPadPtrInto[T constraints.Integer](dst Buffer, n *T, size int, padChar rune) error {
	if n == nil {
		return writePadding(dst, size, padChar)
	}
	return LeftPadInto(dst, *n, size, padChar)
}

// LeftPadString returns s preceded by as many padChar as needed to reach
// size characters. Lengths are counted in runes.
func LeftPadString(s string, size int, padChar rune) string {
	var sb strings.Builder
	sb.Grow(max(size, 0)*utf8.UTFMax + len(s))
	// strings.Builder never fails.
	_ = LeftPadStringInto(&sb, s, size, padChar)
	return sb.String()
}

// LeftPadStringInto writes to dst what [LeftPadString] would return.
// On a write error, dst keeps the part written so far.
func LeftPadStringInto(dst Buffer, s string, size int, padChar rune) error {

	if err := writePadding(dst, size-utf8.RuneCountInString(s), padChar); err != nil {
		return err
	}

	if _, err := dst.WriteString(s); err != nil {
		return errors.Wrap(err, "write string")
	}

	return nil
}

// AppendLeftPad appends to dst what [LeftPad] would return and returns
// the extended buffer.
func AppendLeftPad[T constraints.Integer](dst []byte, n T, size int, padChar rune) ([]byte, error) {

	if n < 0 {
		return dst, errors.Wrapf(ErrNegative, "left pad of %d", n)
	}

	for i := digits(uint64(n)); i < size; i++ {
		dst = utf8.AppendRune(dst, padChar)
	}

	return strconv.AppendUint(dst, uint64(n), 10), nil
}

func writePadding(dst Buffer, count int, padChar rune) error {
	for i := 0; i < count; i++ {
		if _, err := dst.WriteRune(padChar); err != nil {
			return errors.Wrap(err, "write padding")
		}
	}
	return nil
}
