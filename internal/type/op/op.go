// Released under an MIT license. See LICENSE.

// Package op names everest's binary operators.
package op

// T (op) is an operator. Its value is the character used to write it.
type T rune

// Operators.
const (
	Add      T = '+'
	Subtract T = '-'
	Multiply T = '*'
	Divide   T = '/'
	Power    T = '^'
)

// Of returns the operator written as r.
func Of(r rune) (T, bool) {
	switch o := T(r); o {
	case Add, Subtract, Multiply, Divide, Power:
		return o, true
	}

	return 0, false
}

// String returns the character for the operator o.
func (o T) String() string {
	return string(o)
}
