// Package huet implements Huet-style pre-unification over the term
// algebra in kernel/term: the deterministic exhauster (Delete, Decompose,
// Bind, Func) and the nondeterministic breadth-first driver over Imitate
// and Project, per spec.md §4.4-4.6. No repo in the retrieval pack
// implements higher-order unification, so this package is grounded
// directly on spec.md rather than on any single teacher file. It has an
// explicit fresh-variable parameter and an immutable BFS Config plus an
// externally-driven Next. Each rule is a pair of free functions (CanX and
// X) that Exhaust and Stream.Next call in a fixed order; there is no
// single Rule type and no tagged-union dispatch over rules.
package huet

import (
	"sort"

	"github.com/noesis-atp/noesis/kernel/term"
)

// Equation is one unsolved pair: two terms of identical type.
type Equation struct {
	Left  term.Term
	Right term.Term
}

// Kind classifies an equation by its heads' flex/rigid status, the
// ordering key the exhauster and driver both sort and dispatch on.
type Kind int

const (
	RigidRigid Kind = iota
	FlexRigid
	FlexFlex
)

// Classify reports eq's Kind, without orienting it.
func Classify(eq Equation) Kind {
	lf, rf := term.IsFlex(eq.Left), term.IsFlex(eq.Right)
	switch {
	case !lf && !rf:
		return RigidRigid
	case lf && rf:
		return FlexFlex
	default:
		return FlexRigid
	}
}

// SolvedEq is one entry of SEq: a binding for the free variable at Var to
// Term.
type SolvedEq struct {
	Var  int
	Term term.Term
}

// Problem is a search node's constraint state: the unsolved equation list,
// sorted rigid-rigid first and flex-flex last, and the accumulated solved
// set.
type Problem struct {
	Unsolved []Equation
	Solved   []SolvedEq
}

// SortUnsolved reorders p.Unsolved in place so rigid-rigid pairs come
// first and flex-flex pairs last, the invariant spec.md §4.5 relies on to
// make the head-equation test in §4.6 a cheap Classify call on index 0.
// Go's sort.SliceStable preserves relative order within each Kind, so
// this never reorders two equations that were already adjacent and of
// the same kind — needed for §8's BFS-determinism property.
func (p *Problem) SortUnsolved() {
	sort.SliceStable(p.Unsolved, func(i, j int) bool {
		return Classify(p.Unsolved[i]) < Classify(p.Unsolved[j])
	})
}
