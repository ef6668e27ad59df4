package term

// Front is one entry of a Subst: either a term to substitute in, or a
// bound reference renaming the index to another one.
type Front interface {
	isFront()
}

// FrontTerm replaces the index with Term.
type FrontTerm struct {
	Term Term
}

func (FrontTerm) isFront() {}

// FrontBound renumbers the index to Index.
type FrontBound struct {
	Index int
}

func (FrontBound) isFront() {}

// Subst is a finite sequence of fronts indexed from 1, plus an integer
// shift applied beyond the end of the sequence: spec.md §3/§4.1's
// substitution representation, shared between beta-reduction (Beta calls
// Apply with a single-front Subst) and the unifier's final answer
// substitution (kernel/huet.ComputeSubst builds one via Cons/ConsBound following
// spec.md §4.3).
type Subst struct {
	Shift  int
	Fronts []Front
}

// Id is the identity substitution.
func Id() Subst { return Subst{} }

// ShiftBy is the substitution that renumbers every index up by n and has
// no explicit fronts.
func ShiftBy(n int) Subst { return Subst{Shift: n} }

// Cons prepends front, so it now governs index 1 and every existing front
// shifts up to index+1.
func Cons(front Front, s Subst) Subst {
	fronts := make([]Front, 0, len(s.Fronts)+1)
	fronts = append(fronts, front)
	fronts = append(fronts, s.Fronts...)
	return Subst{Shift: s.Shift, Fronts: fronts}
}

// ConsBound extends s with a renaming front for index i.
func ConsBound(i int, s Subst) Subst { return Cons(FrontBound{Index: i}, s) }

// frontAt reports what index i maps to under s, expressed as a Front value
// (a term to splice in, or a further bound reference).
func frontAt(s Subst, i int) Front {
	if i <= len(s.Fronts) {
		return s.Fronts[i-1]
	}
	return FrontBound{Index: i - len(s.Fronts) + s.Shift}
}

// shiftAt increments every index in t that denotes something outside c
// enclosing binders by d, leaving indices bound within t itself untouched.
// This is the classical de-Bruijn shift (cf. the shift/subst pair in
// other_examples/smasher164-tapl__fullsimple.go), generalized to the rest
// of the term algebra's variants.
func shiftAt(t Term, d, c int) Term {
	if d == 0 {
		return t
	}
	switch v := t.(type) {
	case Var:
		if v.Idx <= c {
			return v
		}
		return Var{Idx: v.Idx + d, Ty: v.Ty}
	case Const, DistinctObject:
		return v
	case Abs:
		return Abs{ParamType: v.ParamType, Body: shiftAt(v.Body, d, c+1)}
	case TyAbs:
		return TyAbs{Body: shiftAt(v.Body, d, c)}
	case Spine:
		newArgs := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				newArgs[i] = a
			} else {
				newArgs[i] = TermArg(shiftAt(a.Term, d, c))
			}
		}
		return rebuildSpine(shiftAt(v.Head, d, c), newArgs)
	default:
		return t
	}
}

// Shift renumbers every free identity in t up by d.
func Shift(t Term, d int) Term { return shiftAt(t, d, 0) }

// rebuildSpine reapplies args to head, re-flattening if substitution has
// turned head into a bigger Spine (a flex variable bound to an applied
// term) — the "ill-formed spine" invariant must never survive a
// substitution.
func rebuildSpine(head Term, args []Arg) Term {
	if len(args) == 0 {
		return head
	}
	if sp, ok := head.(Spine); ok {
		combined := make([]Arg, 0, len(sp.Args)+len(args))
		combined = append(combined, sp.Args...)
		combined = append(combined, args...)
		return Spine{Head: sp.Head, Args: combined}
	}
	return Spine{Head: head, Args: args}
}

// applyAt applies s to t, treating any Var at or below depth d as locally
// bound (untouched) and any Var above d as governed by s, read back to its
// identity relative to s's own frame (idx - d) before lookup.
func applyAt(s Subst, t Term, d int) Term {
	switch v := t.(type) {
	case Var:
		if v.Idx <= d {
			return v
		}
		i := v.Idx - d
		switch f := frontAt(s, i).(type) {
		case FrontTerm:
			return Shift(f.Term, d)
		case FrontBound:
			return Var{Idx: f.Index + d, Ty: v.Ty}
		default:
			panic("term: unrecognized substitution front")
		}
	case Const, DistinctObject:
		return v
	case Abs:
		return Abs{ParamType: v.ParamType, Body: applyAt(s, v.Body, d+1)}
	case TyAbs:
		return TyAbs{Body: applyAt(s, v.Body, d)}
	case Spine:
		newArgs := make([]Arg, len(v.Args))
		for i, a := range v.Args {
			if a.IsTypeArg() {
				newArgs[i] = a
			} else {
				newArgs[i] = TermArg(applyAt(s, a.Term, d))
			}
		}
		return rebuildSpine(applyAt(s, v.Head, d), newArgs)
	default:
		return t
	}
}

// Apply substitutes s into t. Apply(Id(), t) == t; substitution never
// captures because a term spliced in under d binders is reshifted by d on
// the way in (see applyAt above).
func Apply(s Subst, t Term) Term { return applyAt(s, t, 0) }

// Compose returns a substitution equivalent to applying tau then sigma:
// Apply(Compose(sigma, tau), t) == Apply(sigma, Apply(tau, t)).
func Compose(sigma, tau Subst) Subst {
	m := len(tau.Fronts)
	k := len(sigma.Fronts)
	l := m + k
	fronts := make([]Front, l)
	for i := 1; i <= l; i++ {
		if i <= m {
			switch f := tau.Fronts[i-1].(type) {
			case FrontTerm:
				fronts[i-1] = FrontTerm{Term: Apply(sigma, f.Term)}
			case FrontBound:
				fronts[i-1] = frontAt(sigma, f.Index)
			}
			continue
		}
		j := i - m + tau.Shift
		fronts[i-1] = frontAt(sigma, j)
	}
	return Subst{Shift: tau.Shift + sigma.Shift, Fronts: fronts}
}
