// Released under an MIT license. See LICENSE.

// Package expr provides the parsed form of an everest expression.
package expr

import (
	"github.com/michaelmacinnis/everest/internal/type/op"
	"github.com/michaelmacinnis/everest/internal/type/value"
)

// T (expr) is implemented by *Leaf and *Binary only.
type T interface {
	String() string

	expr()
}

// Leaf is an expression consisting of a single value.
type Leaf struct {
	Value value.T
}

// Binary applies Op to the results of Left and Right.
type Binary struct {
	Op    op.T
	Left  T
	Right T
}

func (*Leaf) expr()   {}
func (*Binary) expr() {}

// New creates a leaf holding v.
func New(v value.T) *Leaf {
	return &Leaf{Value: v}
}

// Apply creates a node applying o to l and r.
func Apply(o op.T, l, r T) *Binary {
	return &Binary{Op: o, Left: l, Right: r}
}

// String returns the text of the leaf l.
func (l *Leaf) String() string {
	return l.Value.String()
}

// String returns the fully parenthesized text of the node b.
func (b *Binary) String() string {
	return "(" + b.Left.String() + b.Op.String() + b.Right.String() + ")"
}
