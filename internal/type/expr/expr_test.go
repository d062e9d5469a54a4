package expr

import (
	"testing"

	"github.com/michaelmacinnis/everest/internal/type/op"
	"github.com/michaelmacinnis/everest/internal/type/value"
	"github.com/michaelmacinnis/everest/internal/type/vector"
)

func TestString(t *testing.T) {
	one := New(value.NewScalar(1))
	two := New(value.NewVector(vector.T{2, 10}))

	e := Apply(op.Multiply, Apply(op.Add, one, two), one)

	if s := e.String(); s != "((1+2|X)*1)" {
		t.Fatalf("got %s, want ((1+2|X)*1)", s)
	}
}
