package term

import "github.com/noesis-atp/noesis/kernel/typesys"

// substTop is the classic beta-reduction substitution: replace the
// variable bound by the outermost binder with n, and renumber every other
// free identity down by one to account for that binder's removal. This
// falls straight out of Subst's semantics: consing a single term front
// onto the identity substitution already renumbers everything beyond it
// down by exactly one (see Subst's doc comment on frontAt).
func substTop(n Term, body Term) Term {
	return Apply(Cons(FrontTerm{Term: n}, Id()), body)
}

func substTypeAt(t Term, index int, repl typesys.Type, tdepth int) Term {
	switch v := t.(type) {
	case Var:
		return Var{Idx: v.Idx, Ty: typesys.SubstAt(v.Ty, index, repl, tdepth)}
	case Const:
		return Const{Key: v.Key, Ty: typesys.SubstAt(v.Ty, index, repl, tdepth)}
	case DistinctObject:
		return DistinctObject{Key: v.Key, Ty: typesys.SubstAt(v.Ty, index, repl, tdepth)}
	case Abs:
		return Abs{ParamType: typesys.SubstAt(v.ParamType, index, repl, tdepth), Body: substTypeAt(v.Body, index, repl, tdepth)}
	case TyAbs:
		return TyAbs{Body: substTypeAt(v.Body, index, repl, tdepth+1)}
	case Spine:
		newArgs := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				newArgs[i] = TypeArg(typesys.SubstAt(a.Type, index, repl, tdepth))
			} else {
				newArgs[i] = TermArg(substTypeAt(a.Term, index, repl, tdepth))
			}
		}
		return rebuildSpine(substTypeAt(v.Head, index, repl, tdepth), newArgs)
	default:
		return t
	}
}

// SubstType substitutes replacement for the type variable at index
// throughout a term's embedded type annotations, the type-level analogue
// of substTop used when a Spine's head is a TyAbs applied to a type
// argument.
func SubstType(t Term, index int, repl typesys.Type) Term {
	return substTypeAt(t, index, repl, 0)
}

// Whnf reduces t to weak head normal form: enough beta/type-beta steps to
// expose the head, without normalizing beneath it. Beta calls it at every
// level of the term it normalizes.
func Whnf(t Term) Term {
	sp, ok := t.(Spine)
	if !ok {
		return t
	}
	result := Whnf(sp.Head)
	idx := 0
	for idx < len(sp.Args) {
		switch h := result.(type) {
		case Abs:
			if sp.Args[idx].IsTypeArg() {
				return rebuildSpine(result, sp.Args[idx:])
			}
			result = Whnf(substTop(sp.Args[idx].Term, h.Body))
			idx++
		case TyAbs:
			if !sp.Args[idx].IsTypeArg() {
				return rebuildSpine(result, sp.Args[idx:])
			}
			result = Whnf(SubstType(h.Body, 1, sp.Args[idx].Type))
			idx++
		default:
			return rebuildSpine(result, sp.Args[idx:])
		}
	}
	return result
}

// Beta puts t into full beta normal form: every redex, at any depth, is
// reduced. Idempotent: Beta(Beta(t)) == Beta(t), since a normal term has
// no redex left for Whnf to find.
func Beta(t Term) Term {
	w := Whnf(t)
	switch v := w.(type) {
	case Abs:
		return Abs{ParamType: v.ParamType, Body: Beta(v.Body)}
	case TyAbs:
		return TyAbs{Body: Beta(v.Body)}
	case Spine:
		args := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				args[i] = a
			} else {
				args[i] = TermArg(Beta(a.Term))
			}
		}
		return rebuildSpine(v.Head, args)
	default:
		return w
	}
}

// etaWrap eta-expands t once at the top if its type is functional and it
// is not already an abstraction.
func etaWrap(t Term) Term {
	fn, ok := t.Type().(typesys.Func)
	if !ok {
		return t
	}
	if _, isAbs := t.(Abs); isAbs {
		return t
	}
	return Abs{
		ParamType: fn.Domain,
		Body:      Eta(NewApp(Shift(t, 1), TermArg(Var{Idx: 1, Ty: fn.Domain}))),
	}
}

// Eta puts t into eta-long form: every subterm of functional type is a
// lambda, recursively. Idempotent up to alpha, matching spec.md §4.2's
// contract, because a term already in eta-long form is always structurally
// an Abs at every function-typed position, and Eta never touches an Abs's
// own top level, only its body.
func Eta(t Term) Term {
	switch v := t.(type) {
	case Var, Const, DistinctObject:
		return etaWrap(t)
	case Abs:
		return Abs{ParamType: v.ParamType, Body: Eta(v.Body)}
	case TyAbs:
		return TyAbs{Body: Eta(v.Body)}
	case Spine:
		args := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				args[i] = a
			} else {
				args[i] = TermArg(Eta(a.Term))
			}
		}
		return etaWrap(rebuildSpine(v.Head, args))
	default:
		return t
	}
}

// DefinitionLookup resolves a constant key to its unfolding, if the
// signature table registered one as a Defined constant. Kept as an
// explicit function parameter, the same way kernel/fresh.Gen is threaded
// explicitly rather than reached for as global state, so kernel/term never
// needs to import the signature package.
type DefinitionLookup func(key int) (Term, bool)

// Delta unfolds every defined constant in t transitively until none
// remain. Used during preprocessing, never inside the unifier's inner
// loop (spec.md §4.2).
func Delta(t Term, lookup DefinitionLookup) Term {
	switch v := t.(type) {
	case Const:
		if def, ok := lookup(v.Key); ok {
			return Delta(def, lookup)
		}
		return v
	case Var, DistinctObject:
		return v
	case Abs:
		return Abs{ParamType: v.ParamType, Body: Delta(v.Body, lookup)}
	case TyAbs:
		return TyAbs{Body: Delta(v.Body, lookup)}
	case Spine:
		args := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				args[i] = a
			} else {
				args[i] = TermArg(Delta(a.Term, lookup))
			}
		}
		return rebuildSpine(Delta(v.Head, lookup), args)
	default:
		return t
	}
}

// Normalize computes the canonical beta-normal eta-long form the unifier
// consumes: full beta reduction first, then eta-expansion. Eta-expanding a
// term already in beta normal form never reintroduces a redex here (it
// only ever adds one more atomic-headed argument to a spine, or wraps a
// bare atomic head in a fresh lambda), so this order reaches the same
// fixed point spec.md §4.2 calls β(η(t)) without a second beta pass.
func Normalize(t Term) Term {
	return Eta(Beta(t))
}
