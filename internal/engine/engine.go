// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed everest expressions.
package engine

import (
	"github.com/michaelmacinnis/everest/internal/type/expr"
	"github.com/michaelmacinnis/everest/internal/type/value"
)

// Evaluate reduces e to a value. The left operand of a node is evaluated
// before the right and the first error encountered is returned unchanged.
func Evaluate(e expr.T) (value.T, error) {
	switch e := e.(type) {
	case *expr.Leaf:
		return e.Value, nil

	case *expr.Binary:
		l, err := Evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		r, err := Evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		return value.Apply(e.Op, l, r)
	}

	panic("unexpected expression type")
}
