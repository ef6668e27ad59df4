package szs

import "testing"

func TestStringMatchesOntologyNames(t *testing.T) {
	cases := map[Status]string{
		EquiSatisfiable:    "EquiSatisfiable",
		Theorem:            "Theorem",
		CounterSatisfiable: "CounterSatisfiable",
		GaveUp:             "GaveUp",
		Timeout:            "Timeout",
		Inappropriate:      "Inappropriate",
		InputError:         "InputError",
		SyntaxError:        "SyntaxError",
		TypeError:          "TypeError",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %s, want %s", status, got, want)
		}
	}
}

func TestErrorImplementsError(t *testing.T) {
	err := NewError(SyntaxError, "unexpected token")
	if err.Error() != "SyntaxError: unexpected token" {
		t.Errorf("Error() = %s, want %q", err.Error(), "SyntaxError: unexpected token")
	}
}

func TestIsFailure(t *testing.T) {
	for _, s := range []Status{InputError, SyntaxError, TypeError, Inappropriate} {
		if !IsFailure(s) {
			t.Errorf("IsFailure(%s) = false, want true", s)
		}
	}
	for _, s := range []Status{Theorem, CounterSatisfiable, GaveUp, Timeout, EquiSatisfiable} {
		if IsFailure(s) {
			t.Errorf("IsFailure(%s) = true, want false", s)
		}
	}
}
