// Released under an MIT license. See LICENSE.

// Package value provides the results of evaluating everest expressions.
//
// A value is either a Scalar or a Vector. Arithmetic is only defined between
// values of the same kind; there is no conversion from one to the other.
package value

import (
	"errors"

	"github.com/michaelmacinnis/everest/internal/type/op"
	"github.com/michaelmacinnis/everest/internal/type/scalar"
	"github.com/michaelmacinnis/everest/internal/type/vector"
)

// T (value) is implemented by Scalar and Vector only.
type T interface {
	String() string

	value()
}

// Scalar is a value holding a ring element.
type Scalar struct {
	scalar.T
}

// Vector is a value holding a pair of ring elements.
type Vector struct {
	vector.T
}

func (Scalar) value() {}
func (Vector) value() {}

// NewScalar wraps s as a value.
func NewScalar(s scalar.T) T {
	return Scalar{s}
}

// NewVector wraps v as a value.
func NewVector(v vector.T) T {
	return Vector{v}
}

// Apply applies the operator o to a and b.
func Apply(o op.T, a, b T) (T, error) {
	switch o {
	case op.Add:
		return Add(a, b)
	case op.Subtract:
		return Sub(a, b)
	case op.Multiply:
		return Mul(a, b)
	case op.Divide:
		return Div(a, b)
	case op.Power:
		return Pow(a, b)
	}

	return nil, errors.New("unknown operator '" + o.String() + "'")
}

// Add returns a + b.
func Add(a, b T) (T, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return Scalar{scalar.Add(a.T, b.T)}, nil
		}
	case Vector:
		if b, ok := b.(Vector); ok {
			return Vector{vector.Add(a.T, b.T)}, nil
		}
	}

	return nil, &IncompatibleError{Op: op.Add, Left: a, Right: b}
}

// Sub returns a - b.
func Sub(a, b T) (T, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return Scalar{scalar.Sub(a.T, b.T)}, nil
		}
	case Vector:
		if b, ok := b.(Vector); ok {
			return Vector{vector.Sub(a.T, b.T)}, nil
		}
	}

	return nil, &IncompatibleError{Op: op.Subtract, Left: a, Right: b}
}

// Mul returns a * b.
func Mul(a, b T) (T, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			return Scalar{scalar.Mul(a.T, b.T)}, nil
		}
	case Vector:
		if b, ok := b.(Vector); ok {
			return Vector{vector.Mul(a.T, b.T)}, nil
		}
	}

	return nil, &IncompatibleError{Op: op.Multiply, Left: a, Right: b}
}

// Div returns a / b. Division errors from the scalar and vector packages are
// returned as is.
func Div(a, b T) (T, error) {
	switch a := a.(type) {
	case Scalar:
		if b, ok := b.(Scalar); ok {
			q, err := scalar.Div(a.T, b.T)
			if err != nil {
				return nil, err
			}

			return Scalar{q}, nil
		}
	case Vector:
		if b, ok := b.(Vector); ok {
			q, err := vector.Div(a.T, b.T)
			if err != nil {
				return nil, err
			}

			return Vector{q}, nil
		}
	}

	return nil, &IncompatibleError{Op: op.Divide, Left: a, Right: b}
}

// Pow returns a raised to b. The exponent b must be a Scalar.
func Pow(a, b T) (T, error) {
	n, ok := b.(Scalar)
	if !ok {
		return nil, &IncompatibleError{Op: op.Power, Left: a, Right: b}
	}

	switch a := a.(type) {
	case Scalar:
		return Scalar{scalar.Pow(a.T, n.Int())}, nil
	case Vector:
		return Vector{vector.Pow(a.T, n.Int())}, nil
	}

	return nil, &IncompatibleError{Op: op.Power, Left: a, Right: b}
}

// IncompatibleError is returned when an operator is applied to values that
// cannot be combined.
type IncompatibleError struct {
	Op    op.T
	Left  T
	Right T
}

func (e *IncompatibleError) Error() string {
	l := e.Left.String()
	r := e.Right.String()

	switch e.Op {
	case op.Add:
		return "cannot add " + l + " and " + r
	case op.Subtract:
		return "cannot subtract " + r + " from " + l
	case op.Multiply:
		return "cannot multiply " + l + " and " + r
	case op.Divide:
		return "cannot divide " + l + " by " + r
	case op.Power:
		return "cannot raise " + l + " to the power " + r
	}

	return "cannot apply '" + e.Op.String() + "' to " + l + " and " + r
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	// Both kinds are values.
	_ = T(Scalar{})
	_ = T(Vector{})
}
