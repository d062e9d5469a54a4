package value

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/everest/internal/type/op"
	"github.com/michaelmacinnis/everest/internal/type/scalar"
	"github.com/michaelmacinnis/everest/internal/type/vector"
)

func TestSameKind(t *testing.T) {
	tests := []struct {
		o    op.T
		a, b T
		want string
	}{
		{op.Add, NewScalar(9), NewScalar(4), "2"},
		{op.Subtract, NewScalar(1), NewScalar(2), "X"},
		{op.Multiply, NewScalar(3), NewScalar(4), "1"},
		{op.Divide, NewScalar(1), NewScalar(2), "6"},
		{op.Power, NewScalar(2), NewScalar(3), "8"},
		{op.Add, NewVector(vector.T{1, 2}), NewVector(vector.T{3, 4}), "4|6"},
		{op.Subtract, NewVector(vector.T{1, 2}), NewVector(vector.T{3, 4}), "9|9"},
		{op.Multiply, NewVector(vector.T{1, 2}), NewVector(vector.T{3, 4}), "6|X"},
		{op.Divide, NewVector(vector.T{6, 10}), NewVector(vector.T{3, 4}), "1|2"},
		{op.Power, NewVector(vector.T{1, 1}), NewScalar(2), "0|2"},
	}

	for _, tt := range tests {
		v, err := Apply(tt.o, tt.a, tt.b)
		if err != nil {
			t.Errorf("%v%v%v: unexpected error: %v", tt.a, tt.o, tt.b, err)

			continue
		}

		if v.String() != tt.want {
			t.Errorf("%v%v%v = %v, want %s", tt.a, tt.o, tt.b, v, tt.want)
		}
	}
}

func TestResultKind(t *testing.T) {
	v, _ := Add(NewScalar(1), NewScalar(2))
	if _, ok := v.(Scalar); !ok {
		t.Fatalf("scalar sum has type %T", v)
	}

	v, _ = Mul(NewVector(vector.T{1, 2}), NewVector(vector.T{1, 2}))
	if _, ok := v.(Vector); !ok {
		t.Fatalf("vector product has type %T", v)
	}
}

func TestIncompatible(t *testing.T) {
	s := NewScalar(3)
	v := NewVector(vector.T{1, 2})

	tests := []struct {
		o    op.T
		a, b T
		msg  string
	}{
		{op.Add, s, v, "cannot add 3 and 1|2"},
		{op.Add, v, s, "cannot add 1|2 and 3"},
		{op.Subtract, s, v, "cannot subtract 1|2 from 3"},
		{op.Multiply, v, s, "cannot multiply 1|2 and 3"},
		{op.Divide, s, v, "cannot divide 3 by 1|2"},
		{op.Divide, v, s, "cannot divide 1|2 by 3"},
		{op.Power, s, v, "cannot raise 3 to the power 1|2"},
		{op.Power, v, v, "cannot raise 1|2 to the power 1|2"},
	}

	for _, tt := range tests {
		_, err := Apply(tt.o, tt.a, tt.b)

		var e *IncompatibleError
		if !errors.As(err, &e) {
			t.Errorf("%v%v%v: got %v, want IncompatibleError", tt.a, tt.o, tt.b, err)

			continue
		}

		if e.Op != tt.o || e.Left != tt.a || e.Right != tt.b {
			t.Errorf("%v%v%v: unexpected error contents %+v", tt.a, tt.o, tt.b, e)
		}

		if e.Error() != tt.msg {
			t.Errorf("got %q, want %q", e.Error(), tt.msg)
		}
	}
}

func TestDivisionErrors(t *testing.T) {
	_, err := Div(NewScalar(5), NewScalar(0))

	var s *scalar.NoSolutionError
	if !errors.As(err, &s) {
		t.Errorf("5/0: got %v, want scalar.NoSolutionError", err)
	}

	_, err = Div(NewVector(vector.T{5, 1}), NewVector(vector.T{0, 0}))

	var v *vector.NoSolutionError
	if !errors.As(err, &v) {
		t.Errorf("5|1/0|0: got %v, want vector.NoSolutionError", err)
	}
}

func TestUnknownOperator(t *testing.T) {
	if _, err := Apply(op.T('%'), NewScalar(1), NewScalar(2)); err == nil {
		t.Fatal("expected an error for an unknown operator")
	}
}
