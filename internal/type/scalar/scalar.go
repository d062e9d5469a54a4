// Released under an MIT license. See LICENSE.

// Package scalar provides everest's ring element type: the integers modulo 11.
package scalar

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
)

// Modulus is the number of elements in the ring.
const Modulus = 11

// ErrEmpty is returned when an empty string is parsed as a scalar.
var ErrEmpty = errors.New("tried to parse an empty string as a number")

// T (scalar) is an element of the ring. Values are always in [0, Modulus).
// Use New to construct a T from an arbitrary integer.
type T uint8

type scalar = T

// New creates the scalar congruent to n. Negative n wrap around.
func New(n int) T {
	m := n % Modulus
	if m < 0 {
		m += Modulus
	}

	return T(m)
}

// FromRune maps '0' through '9' to their value and 'X' to 10.
func FromRune(r rune) (T, error) {
	switch {
	case r >= '0' && r <= '9':
		return T(r - '0'), nil
	case r == 'X':
		return T(10), nil
	}

	return 0, &UnknownDigitError{Digit: r}
}

// Parse parses a single digit string.
func Parse(s string) (T, error) {
	if s == "" {
		return 0, ErrEmpty
	}

	r, w := utf8.DecodeRuneInString(s)
	if w < len(s) {
		return 0, &TooLongError{Text: s}
	}

	return FromRune(r)
}

// Add returns a + b.
func Add(a, b T) T {
	return New(a.Int() + b.Int())
}

// Sub returns a - b.
func Sub(a, b T) T {
	return New(a.Int() - b.Int())
}

// Mul returns a * b.
func Mul(a, b T) T {
	return New(a.Int() * b.Int())
}

// Neg returns the additive inverse of a.
func Neg(a T) T {
	return Sub(0, a)
}

// Div returns the x for which x * b == a.
//
// Candidates are tried in ascending order. Because the modulus is prime there
// is exactly one answer for any b other than zero.
func Div(a, b T) (T, error) {
	if b == 0 {
		return 0, &NoSolutionError{Dividend: a, Divisor: b}
	}

	for i := T(0); i < Modulus; i++ {
		if Mul(i, b) == a {
			return i, nil
		}
	}

	return 0, &NoSolutionError{Dividend: a, Divisor: b}
}

// Pow returns a multiplied by itself n times. Pow(a, 0) is 1.
func Pow(a T, n int) T {
	p := T(1)
	for ; n > 0; n-- {
		p = Mul(p, a)
	}

	return p
}

// Int returns the value of the scalar s as an int.
func (s scalar) Int() int {
	return int(s)
}

// String returns the digit for the scalar s. Ten is written as X.
func (s scalar) String() string {
	if s == 10 {
		return "X"
	}

	return strconv.Itoa(int(s))
}

// UnknownDigitError is returned when a rune is not one of 0-9 or X.
type UnknownDigitError struct {
	Digit rune
}

func (e *UnknownDigitError) Error() string {
	return "an unknown digit was encountered: " + adapted.CanonicalString(string(e.Digit))
}

// TooLongError is returned when a number string is longer than one digit.
type TooLongError struct {
	Text string
}

func (e *TooLongError) Error() string {
	return "number longer than one digit: " + adapted.CanonicalString(e.Text)
}

// NoSolutionError is returned when no scalar times Divisor gives Dividend.
type NoSolutionError struct {
	Dividend T
	Divisor  T
}

func (e *NoSolutionError) Error() string {
	return "cannot divide " + e.Dividend.String() + " by " + e.Divisor.String()
}
