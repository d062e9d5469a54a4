package op

import "testing"

func TestOf(t *testing.T) {
	for _, r := range "+-*/^" {
		o, ok := Of(r)
		if !ok || o.String() != string(r) {
			t.Errorf("Of(%q) = %v, %v", r, o, ok)
		}
	}

	for _, r := range "%|( X1" {
		if _, ok := Of(r); ok {
			t.Errorf("Of(%q) should not be an operator", r)
		}
	}
}
