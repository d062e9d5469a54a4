// Released under an MIT license. See LICENSE.

// Package vector provides everest's pair type. A vector (a, b) behaves like
// the complex number a + bi with components in the scalar ring.
package vector

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/everest/internal/type/scalar"
)

// T (vector) is an ordered pair of scalars.
type T [2]scalar.T

type vector = T

// New creates the vector (first, second).
func New(first, second scalar.T) T {
	return T{first, second}
}

// Parse parses text of the form "a|b".
func Parse(s string) (T, error) {
	first, second, found := strings.Cut(s, "|")
	if !found {
		return T{}, &NoPipeError{Text: s}
	}

	a, err := scalar.Parse(first)
	if err != nil {
		return T{}, err
	}

	b, err := scalar.Parse(second)
	if err != nil {
		return T{}, err
	}

	return New(a, b), nil
}

// Add returns the component-wise sum of v and w.
func Add(v, w T) T {
	return T{scalar.Add(v[0], w[0]), scalar.Add(v[1], w[1])}
}

// Sub returns the component-wise difference of v and w.
func Sub(v, w T) T {
	return T{scalar.Sub(v[0], w[0]), scalar.Sub(v[1], w[1])}
}

// Mul returns (a*c - b*d, a*d + b*c) for v = (a, b) and w = (c, d).
func Mul(v, w T) T {
	a, b := v[0], v[1]
	c, d := w[0], w[1]

	return T{
		scalar.Sub(scalar.Mul(a, c), scalar.Mul(b, d)),
		scalar.Add(scalar.Mul(a, d), scalar.Mul(b, c)),
	}
}

// Neg returns the additive inverse of v.
func Neg(v T) T {
	return Sub(T{}, v)
}

// Div returns the x for which x * w == v.
//
// A divisor with a zero component is handled separately. Otherwise the
// quotient is found by multiplying through by the conjugate of w.
func Div(v, w T) (T, error) {
	a, b := v[0], v[1]
	c, d := w[0], w[1]

	var x, y scalar.T

	var err error

	switch {
	case c == 0 && d == 0:
		return T{}, &NoSolutionError{Dividend: v, Divisor: w}

	case c == 0:
		x, err = scalar.Div(b, d)
		if err == nil {
			y, err = scalar.Div(scalar.Neg(a), d)
		}

	case d == 0:
		x, err = scalar.Div(a, c)
		if err == nil {
			y, err = scalar.Div(b, c)
		}

	default:
		n := scalar.Add(scalar.Mul(a, c), scalar.Mul(b, d))
		m := scalar.Add(scalar.Mul(c, c), scalar.Mul(d, d))

		x, err = scalar.Div(n, m)
		if err == nil {
			y, err = scalar.Div(scalar.Sub(b, scalar.Mul(d, x)), c)
		}
	}

	if err != nil {
		return T{}, &NoSolutionError{Dividend: v, Divisor: w, Err: err}
	}

	return T{x, y}, nil
}

// Pow returns v multiplied by itself n times. Pow(v, 0) is 1|0.
func Pow(v T, n int) T {
	p := T{1, 0}
	for ; n > 0; n-- {
		p = Mul(p, v)
	}

	return p
}

// First returns the first component of the vector v.
func (v vector) First() scalar.T {
	return v[0]
}

// Second returns the second component of the vector v.
func (v vector) Second() scalar.T {
	return v[1]
}

// String returns the text of the vector v.
func (v vector) String() string {
	return v[0].String() + "|" + v[1].String()
}

// NoPipeError is returned when vector text has no separator.
type NoPipeError struct {
	Text string
}

func (e *NoPipeError) Error() string {
	return "vec without a separator: " + adapted.CanonicalString(e.Text)
}

// NoSolutionError is returned when no vector times Divisor gives Dividend.
// Err is the failing scalar division, if there was one.
type NoSolutionError struct {
	Dividend T
	Divisor  T
	Err      error
}

func (e *NoSolutionError) Error() string {
	return "cannot divide " + e.Dividend.String() + " by " + e.Divisor.String()
}

func (e *NoSolutionError) Unwrap() error {
	return e.Err
}
