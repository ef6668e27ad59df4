package term

import (
	"testing"

	"github.com/noesis-atp/noesis/kernel/typesys"
)

func TestNewAppFlattensNestedSpines(t *testing.T) {
	h := Var{Idx: 1, Ty: typesys.NewFunc([]typesys.Type{iTy, iTy}, iTy)}
	a := Const{Key: 1, Ty: iTy}
	b := Const{Key: 2, Ty: iTy}

	step1 := NewApp(h, TermArg(a))
	step2 := NewApp(step1, TermArg(b))

	sp, ok := step2.(Spine)
	if !ok {
		t.Fatalf("NewApp result is not a Spine: %T", step2)
	}
	if _, isSpine := sp.Head.(Spine); isSpine {
		t.Errorf("Spine head must never itself be a Spine")
	}
	if len(sp.Args) != 2 {
		t.Errorf("expected 2 flattened args, got %d", len(sp.Args))
	}
}

func TestIsFlexAndIsRigid(t *testing.T) {
	flex := NewApp(Var{Idx: 1, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Const{Key: 1, Ty: iTy}))
	rigid := NewApp(Const{Key: 2, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Const{Key: 1, Ty: iTy}))

	if !IsFlex(flex) || IsRigid(flex) {
		t.Errorf("expected variable-headed spine to be flex")
	}
	if IsFlex(rigid) || !IsRigid(rigid) {
		t.Errorf("expected constant-headed spine to be rigid")
	}
}

func TestOccurs(t *testing.T) {
	inner := NewApp(Var{Idx: 3, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 5, Ty: iTy}))
	if !Occurs(3, inner) {
		t.Errorf("expected free variable 3 to occur")
	}
	if Occurs(4, inner) {
		t.Errorf("did not expect free variable 4 to occur")
	}
}

func TestOccursUnderBinderReadsBackIndex(t *testing.T) {
	// \x. f x, where f is free variable 1 (idx 2 inside the abstraction).
	abs := Abs{ParamType: iTy, Body: NewApp(Var{Idx: 2, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 1, Ty: iTy}))}
	if !Occurs(1, abs) {
		t.Errorf("expected outer free variable 1 to be detected occurring under the binder")
	}
	if Occurs(2, abs) {
		t.Errorf("did not expect idx 2 under the binder to be read as outer free variable 2")
	}
}

func TestLooseIndices(t *testing.T) {
	abs := Abs{ParamType: iTy, Body: NewApp(Var{Idx: 2, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 3, Ty: iTy}))}
	free := LooseIndices(abs)
	if _, ok := free[1]; !ok {
		t.Errorf("expected free identity 1 in loose indices, got %v", free)
	}
	if _, ok := free[2]; !ok {
		t.Errorf("expected free identity 2 in loose indices, got %v", free)
	}
	if len(free) != 2 {
		t.Errorf("expected exactly 2 loose indices, got %v", free)
	}
}

func TestWellTypedRejectsMismatchedArgument(t *testing.T) {
	fnTy := typesys.NewFunc([]typesys.Type{iTy}, iTy)
	oTy := typesys.Base{Key: 0, Name: "o"}
	badArg := NewApp(Const{Key: 1, Ty: fnTy}, TermArg(Const{Key: 2, Ty: oTy}))
	if WellTyped(badArg) {
		t.Errorf("expected WellTyped to reject an argument of the wrong type")
	}
}

func TestWellTypedAcceptsMatchedArgument(t *testing.T) {
	fnTy := typesys.NewFunc([]typesys.Type{iTy}, iTy)
	good := NewApp(Const{Key: 1, Ty: fnTy}, TermArg(Const{Key: 2, Ty: iTy}))
	if !WellTyped(good) {
		t.Errorf("expected WellTyped to accept a matching argument")
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewApp(Const{Key: 1, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 1, Ty: iTy}))
	b := NewApp(Const{Key: 1, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 1, Ty: iTy}))
	c := NewApp(Const{Key: 1, Ty: typesys.NewFunc([]typesys.Type{iTy}, iTy)}, TermArg(Var{Idx: 2, Ty: iTy}))

	if !Equal(a, b) {
		t.Errorf("expected structurally identical terms to be Equal")
	}
	if Equal(a, c) {
		t.Errorf("expected terms differing by variable index to be unequal")
	}
}
