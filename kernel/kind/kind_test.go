package kind

import "testing"

func TestArity(t *testing.T) {
	testCases := []struct {
		name string
		k    Kind
		exp  int
	}{
		{"Star", Star{}, 0},
		{"OneArg", NewArrow(Star{}, Star{}), 1},
		{"TwoArg", NewArrow(Star{}, NewArrow(Star{}, Star{})), 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if res := Arity(tc.k); res != tc.exp {
				t.Errorf("expected arity %d, got %d", tc.exp, res)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b Kind
		exp  bool
	}{
		{"StarStar", Star{}, Star{}, true},
		{"StarArrow", Star{}, NewArrow(Star{}, Star{}), false},
		{"SameArrow", NewArrow(Star{}, Star{}), NewArrow(Star{}, Star{}), true},
		{"DiffArrow", NewArrow(Star{}, Star{}), NewArrow(Star{}, NewArrow(Star{}, Star{})), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if res := Equal(tc.a, tc.b); res != tc.exp {
				t.Errorf("expected %v, got %v", tc.exp, res)
			}
		})
	}
}

func TestApply(t *testing.T) {
	binary := NewArrow(Star{}, NewArrow(Star{}, Star{}))

	if !CanApply(binary, Star{}) {
		t.Errorf("expected binary constructor kind to accept a Star argument")
	}
	if CanApply(Star{}, Star{}) {
		t.Errorf("Star is not an arrow kind and should never accept an application")
	}

	res, err := Apply(binary, Star{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(res, NewArrow(Star{}, Star{})) {
		t.Errorf("expected remaining kind %s, got %s", NewArrow(Star{}, Star{}), res)
	}

	if _, err := Apply(Star{}, Star{}); err == nil {
		t.Errorf("expected an error applying a non-arrow kind")
	}
}
