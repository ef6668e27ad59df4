package term

import (
	"testing"

	"github.com/noesis-atp/noesis/kernel/typesys"
)

var iTy = typesys.Base{Key: 1, Name: "i"}

func TestApplyIdentity(t *testing.T) {
	tm := NewSpine(Var{Idx: 3, Ty: iTy}, TermArg(Var{Idx: 1, Ty: iTy}))
	if got := Apply(Id(), tm); got.String() != tm.String() {
		t.Errorf("Apply(Id(), t) = %s, want %s", got, tm)
	}
}

func TestSubstTop(t *testing.T) {
	// (\x. f x v2) applied at the top to c, where f, v2 are free (idx 2, 3
	// relative to the outer scope, i.e. idx 3, 4 inside the Abs body).
	c := Const{Key: 7, Ty: iTy}
	body := NewSpine(Var{Idx: 3, Ty: typesys.NewFunc([]typesys.Type{iTy, iTy}, iTy)},
		TermArg(Var{Idx: 1, Ty: iTy}), TermArg(Var{Idx: 4, Ty: iTy}))

	got := substTop(c, body)

	// idx 1 (the bound var) -> c. idx 3 (f, was free beyond the binder) -> idx 2.
	// idx 4 (v2) -> idx 3.
	want := NewSpine(Var{Idx: 2, Ty: typesys.NewFunc([]typesys.Type{iTy, iTy}, iTy)},
		TermArg(c), TermArg(Var{Idx: 3, Ty: iTy}))

	if got.String() != want.String() {
		t.Errorf("substTop = %s, want %s", got, want)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	// sigma: idx1 -> c7, tau: idx1 -> v_idx5 (a free var), idx2 -> idx1 (rename).
	c7 := Const{Key: 7, Ty: iTy}
	sigma := Cons(FrontTerm{Term: c7}, Id())
	tau := Cons(FrontTerm{Term: Var{Idx: 5, Ty: iTy}}, ConsBound(1, Id()))

	terms := []Term{
		Var{Idx: 1, Ty: iTy},
		Var{Idx: 2, Ty: iTy},
		Var{Idx: 3, Ty: iTy},
		NewSpine(Var{Idx: 1, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 2, Ty: iTy})),
	}

	composed := Compose(sigma, tau)
	for _, tm := range terms {
		got := Apply(composed, tm)
		want := Apply(sigma, Apply(tau, tm))
		if got.String() != want.String() {
			t.Errorf("Compose law failed for %s: Apply(Compose(sigma,tau), t) = %s, want %s", tm, got, want)
		}
	}
}

func TestApplyCapturesAvoided(t *testing.T) {
	// Substitute a term mentioning a free variable (idx 1 relative to the
	// top) into the body of an Abs. Once under the binder, that same free
	// identity must read back as idx 2 (shifted past the new binder), never
	// colliding with the binder's own idx 1.
	free := Var{Idx: 1, Ty: iTy}
	abs := Abs{ParamType: iTy, Body: NewSpine(Var{Idx: 2, Ty: typesys.NewFunc([]typesys.Type{iTy, iTy}, iTy)},
		TermArg(Var{Idx: 1, Ty: iTy}), TermArg(Var{Idx: 2, Ty: iTy}))}

	s := Cons(FrontTerm{Term: free}, Id())
	got := Apply(s, abs).(Abs)

	sp := got.Body.(Spine)
	// The bound var (idx 1) must be untouched.
	if v := sp.Args[0].Term.(Var); v.Idx != 1 {
		t.Errorf("bound variable was substituted: got idx %d", v.Idx)
	}
	// The free var (was idx 2, mapped to `free` which has idx 1 outside)
	// must appear reshifted to idx 2 inside the Abs.
	if v := sp.Args[1].Term.(Var); v.Idx != 2 {
		t.Errorf("substituted free variable not reshifted under binder: got idx %d", v.Idx)
	}
}

func TestShiftLeavesBoundIndicesAlone(t *testing.T) {
	abs := Abs{ParamType: iTy, Body: Var{Idx: 1, Ty: iTy}}
	got := Shift(abs, 5).(Abs)
	if v := got.Body.(Var); v.Idx != 1 {
		t.Errorf("Shift touched a bound variable: got idx %d", v.Idx)
	}
}

func TestShiftBumpsFreeIndices(t *testing.T) {
	v := Var{Idx: 3, Ty: iTy}
	got := Shift(v, 2).(Var)
	if got.Idx != 5 {
		t.Errorf("Shift(v3, 2) = v%d, want v5", got.Idx)
	}
}
