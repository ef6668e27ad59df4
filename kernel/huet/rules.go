package huet

import (
	"github.com/noesis-atp/noesis/kernel/fresh"
	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/kernel/typesys"
	"github.com/noesis-atp/noesis/signature"
)

// CanDelete reports whether eq's two sides are already identical, spec.md
// §4.4's Delete rule.
func CanDelete(eq Equation) bool {
	return term.Equal(eq.Left, eq.Right)
}

// sameRigidHead reports whether two rigid heads are the same signature
// symbol.
func sameRigidHead(a, b term.Term) bool {
	switch at := a.(type) {
	case term.Const:
		bt, ok := b.(term.Const)
		return ok && at.Key == bt.Key
	case term.DistinctObject:
		bt, ok := b.(term.DistinctObject)
		return ok && at.Key == bt.Key
	default:
		return false
	}
}

// CanDecompose reports whether both sides are rigid with identical heads.
func CanDecompose(eq Equation) bool {
	if Classify(eq) != RigidRigid {
		return false
	}
	return sameRigidHead(term.Head(eq.Left), term.Head(eq.Right))
}

// Decompose replaces eq by pointwise equations on corresponding term
// arguments, ignoring type arguments (spec.md §4.4). The caller must have
// already checked CanDecompose; args lengths are guaranteed equal because
// both heads carry the same signature type.
func Decompose(eq Equation) []Equation {
	largs := term.SpineArgs(eq.Left)
	rargs := term.SpineArgs(eq.Right)
	out := make([]Equation, 0, len(largs))
	for i := range largs {
		if largs[i].IsTypeArg() {
			continue
		}
		out = append(out, Equation{Left: largs[i].Term, Right: rargs[i].Term})
	}
	return out
}

// orientForBind returns eq with the bare-variable side (not occurring
// free in the other side) moved to Left, or false if neither side
// qualifies.
func orientForBind(eq Equation) (Equation, bool) {
	if v, ok := eq.Left.(term.Var); ok && !term.Occurs(v.Idx, eq.Right) {
		return eq, true
	}
	if v, ok := eq.Right.(term.Var); ok && !term.Occurs(v.Idx, eq.Left) {
		return Equation{Left: eq.Right, Right: eq.Left}, true
	}
	return Equation{}, false
}

// CanBind reports whether Bind applies to eq: one side is a bare free
// variable X not occurring free in the other side.
func CanBind(eq Equation) bool {
	_, ok := orientForBind(eq)
	return ok
}

// Bind orients eq and returns the (X, term) pair to register into SEq.
// The caller must have already checked CanBind.
func Bind(eq Equation) SolvedEq {
	oriented, _ := orientForBind(eq)
	return SolvedEq{Var: oriented.Left.(term.Var).Idx, Term: oriented.Right}
}

// CanFunc reports whether both sides of eq have function type.
func CanFunc(eq Equation) bool {
	_, lok := eq.Left.Type().(typesys.Func)
	_, rok := eq.Right.Type().(typesys.Func)
	return lok && rok
}

// Func applies both sides of eq to a fresh Skolem constant built from the
// shared domain type, then normalises — spec.md §4.4's functional
// extensionality rule. The Skolem is a genuine signature constant, not a
// fresh meta-variable: it must stay rigid so the resulting equation does
// not spuriously become flex-flex.
func Func(sig *signature.Table, eq Equation) Equation {
	fn := eq.Left.Type().(typesys.Func)
	sk := sig.FreshSkolem(fn.Domain)
	skTerm := term.Const{Key: sk.Key, Ty: fn.Domain}
	return Equation{
		Left:  term.Normalize(term.NewApp(eq.Left, term.TermArg(skTerm))),
		Right: term.Normalize(term.NewApp(eq.Right, term.TermArg(skTerm))),
	}
}

// orientFlexRigid returns eq with the flex side moved to Left, or false
// if eq is not a flex-rigid pair.
func orientFlexRigid(eq Equation) (Equation, bool) {
	if Classify(eq) != FlexRigid {
		return Equation{}, false
	}
	if term.IsFlex(eq.Left) {
		return eq, true
	}
	return Equation{Left: eq.Right, Right: eq.Left}, true
}

// buildPartialBinding constructs
//
//	λy1:α1. … λyn:αn. head (X1 ȳ) … (Xm ȳ)
//
// where alphas = [α1..αn] are the flex head's own argument types, head is
// already correctly indexed for use n levels under the new
// binders (a rigid constant, which is shift-invariant, or one of the ȳ
// themselves for Project), and headArgTypes are head's own argument types
// (each Xi's result type). Every Xi is fresh, of type α1→…→αn→headArgTypes[i].
// The result is eta-expanded before return, per spec.md §4.4.
func buildPartialBinding(gen *fresh.Gen, alphas []typesys.Type, head term.Term, headArgTypes []typesys.Type) term.Term {
	n := len(alphas)
	yArgs := make([]term.Arg, n)
	for j := 1; j <= n; j++ {
		yArgs[j-1] = term.TermArg(term.Var{Idx: n - j + 1, Ty: alphas[j-1]})
	}

	xiArgs := make([]term.Arg, len(headArgTypes))
	for i, gi := range headArgTypes {
		xiType := typesys.NewFunc(alphas, gi)
		freshIdx := gen.Next(xiType)
		xiVar := term.Var{Idx: freshIdx + n, Ty: xiType}
		xiArgs[i] = term.TermArg(term.NewSpine(xiVar, yArgs...))
	}

	body := term.NewSpine(head, xiArgs...)
	binding := body
	for j := n; j >= 1; j-- {
		binding = term.Abs{ParamType: alphas[j-1], Body: binding}
	}
	return term.Eta(binding)
}

// CanImitate reports whether Imitate applies to an already flex-rigid-
// oriented equation: the rigid head must be a constant or distinct
// object, never a bound variable. Under this kernel's discipline every
// rule ever inspects an equation only at binder depth 0 (Func always
// discharges function-typed equations first, so no rule ever needs to
// classify a head under a real binder) so a rigid head here can only ever
// be a Const or DistinctObject; a bound-variable rigid head is a
// structural impossibility rather than a case Imitate must guard against
// (spec.md §9's open question).
func CanImitate(oriented Equation) bool {
	switch term.Head(oriented.Right).(type) {
	case term.Const, term.DistinctObject:
		return true
	default:
		return false
	}
}

// Imitate returns the imitating partial binding for an already
// flex-rigid-oriented equation on which CanImitate holds: a guess at the
// flex head's value, still containing fresh unknowns. The caller (the
// search driver) is responsible for committing this guess — substituting
// it for the flex head throughout the whole configuration, including
// re-checking it against the very equation it came from, rather than
// discarding that equation outright. A bare `(X, binding)` fact would be
// unsound whenever the rigid side still mentions X (e.g. unifying X with
// f(X): the guess X ↦ f(X') must be checked against f(X) too, which is
// exactly what re-derives the equivalent problem X' ≐ f(X') and lets the
// occurs violation resurface every round instead of vanishing after one).
func Imitate(gen *fresh.Gen, oriented Equation) term.Term {
	flexHead := term.Head(oriented.Left).(term.Var)
	rigidHead := term.Head(oriented.Right)
	alphas, _ := typesys.Decompose(flexHead.Ty)
	gammas, _ := typesys.Decompose(rigidHead.Type())
	return buildPartialBinding(gen, alphas, rigidHead, gammas)
}

// Project returns one projecting partial binding per bound parameter of
// the flex head whose own result type matches the overall equation's
// result type, in left-to-right parameter order, for an already
// flex-rigid-oriented equation. Like Imitate, each returned binding is a
// guess the caller must commit and re-check, not a finished fact. It
// panics unless oriented is flex-rigid with the flex side on the left and
// Bind does not apply to it.
func Project(gen *fresh.Gen, oriented Equation) []term.Term {
	if Classify(oriented) != FlexRigid || !term.IsFlex(oriented.Left) || CanBind(oriented) {
		panic("huet: Project called on an equation that is not a flex-rigid pair outside Bind's reach")
	}
	flexHead := term.Head(oriented.Left).(term.Var)
	alphas, beta := typesys.Decompose(flexHead.Ty)

	var out []term.Term
	for j := 1; j <= len(alphas); j++ {
		deltas, resultJ := typesys.Decompose(alphas[j-1])
		if !typesys.Equal(resultJ, beta) {
			continue
		}
		yj := term.Var{Idx: len(alphas) - j + 1, Ty: alphas[j-1]}
		out = append(out, buildPartialBinding(gen, alphas, yj, deltas))
	}
	return out
}
