package huet

import (
	"testing"

	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/signature"
)

var iTy = signature.IType()

func constOf(key int) term.Term { return term.Const{Key: key, Ty: iTy} }

func varOf(idx int) term.Term { return term.Var{Idx: idx, Ty: iTy} }

func TestClassifyRigidRigid(t *testing.T) {
	eq := Equation{Left: constOf(1), Right: constOf(2)}
	if got := Classify(eq); got != RigidRigid {
		t.Fatalf("Classify() = %v, want RigidRigid", got)
	}
}

func TestClassifyFlexFlex(t *testing.T) {
	eq := Equation{Left: varOf(5), Right: varOf(6)}
	if got := Classify(eq); got != FlexFlex {
		t.Fatalf("Classify() = %v, want FlexFlex", got)
	}
}

func TestClassifyFlexRigidEitherOrientation(t *testing.T) {
	if got := Classify(Equation{Left: varOf(5), Right: constOf(1)}); got != FlexRigid {
		t.Fatalf("Classify(flex,rigid) = %v, want FlexRigid", got)
	}
	if got := Classify(Equation{Left: constOf(1), Right: varOf(5)}); got != FlexRigid {
		t.Fatalf("Classify(rigid,flex) = %v, want FlexRigid", got)
	}
}

func TestSortUnsolvedOrdersRigidFlexFlexFlex(t *testing.T) {
	p := Problem{Unsolved: []Equation{
		{Left: varOf(1), Right: varOf(2)},   // flex-flex
		{Left: constOf(1), Right: constOf(1)}, // rigid-rigid
		{Left: varOf(3), Right: constOf(2)},   // flex-rigid
	}}
	p.SortUnsolved()

	want := []Kind{RigidRigid, FlexRigid, FlexFlex}
	for i, k := range want {
		if got := Classify(p.Unsolved[i]); got != k {
			t.Fatalf("position %d: Classify() = %v, want %v", i, got, k)
		}
	}
}

func TestSortUnsolvedStable(t *testing.T) {
	a := Equation{Left: constOf(10), Right: constOf(10)}
	b := Equation{Left: constOf(11), Right: constOf(11)}
	p := Problem{Unsolved: []Equation{a, b}}
	p.SortUnsolved()

	if p.Unsolved[0] != a || p.Unsolved[1] != b {
		t.Fatalf("SortUnsolved reordered equal-kind equations")
	}
}
