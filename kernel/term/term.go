// Package term implements the typed higher-order term algebra: a
// spine/locally-nameless representation with one shared index space for
// bound and free (meta) variables, plus the substitution and
// normalisation machinery the unifier in kernel/huet is built on.
//
// A Var's index is interpreted relative to the binder depth at the point
// it occurs: an index at or below the current depth denotes a variable
// bound by an enclosing Abs; an index above it denotes a free (meta)
// variable, allocated by kernel/fresh, whose true identity is index minus
// depth. This mirrors the substitution algebra in subst.go, which is
// defined in exactly those terms.
package term

import (
	"fmt"

	"github.com/noesis-atp/noesis/kernel/typesys"
)

// Term is a closed variant type: Var, Const, DistinctObject, Abs, TyAbs,
// Spine.
type Term interface {
	fmt.Stringer
	// Type returns this term's type.
	Type() typesys.Type
	isTerm()
}

// Var is a de-Bruijn-like index shared by bound and free (meta) variables;
// see the package doc for how the distinction is read contextually.
type Var struct {
	Idx int
	Ty  typesys.Type
}

func (Var) isTerm() {}

func (v Var) Type() typesys.Type { return v.Ty }

func (v Var) String() string { return fmt.Sprintf("v%d", v.Idx) }

// Const references a constant registered in the external signature table
// by key.
type Const struct {
	Key int
	Ty  typesys.Type
}

func (Const) isTerm() {}

func (c Const) Type() typesys.Type { return c.Ty }

func (c Const) String() string { return fmt.Sprintf("c%d", c.Key) }

// DistinctObject is a leaf referring to a signature constant known to
// denote something pairwise-distinct from every syntactically different
// distinct object (TPTP's quoted and $file-style literals).
type DistinctObject struct {
	Key int
	Ty  typesys.Type
}

func (DistinctObject) isTerm() {}

func (d DistinctObject) Type() typesys.Type { return d.Ty }

func (d DistinctObject) String() string { return fmt.Sprintf("do%d", d.Key) }

// Abs is a one-parameter abstraction; n-ary lambdas are built by nesting.
type Abs struct {
	ParamType typesys.Type
	Body      Term
}

func (Abs) isTerm() {}

func (a Abs) Type() typesys.Type { return typesys.Func{Domain: a.ParamType, Codomain: a.Body.Type()} }

func (a Abs) String() string { return fmt.Sprintf("(\\%s. %s)", a.ParamType, a.Body) }

// TyAbs is a type abstraction, for polymorphism.
type TyAbs struct {
	Body Term
}

func (TyAbs) isTerm() {}

func (t TyAbs) Type() typesys.Type { return typesys.Forall{Body: t.Body.Type()} }

func (t TyAbs) String() string { return fmt.Sprintf("(/\\. %s)", t.Body) }

// Arg is one spine argument: exactly one of Term or Type is set.
type Arg struct {
	Term Term
	Type typesys.Type
}

// TermArg wraps a term as a spine argument.
func TermArg(t Term) Arg { return Arg{Term: t} }

// TypeArg wraps a type as a spine argument.
func TypeArg(t typesys.Type) Arg { return Arg{Type: t} }

// IsTypeArg reports whether this argument is a type instantiation rather
// than a term.
func (a Arg) IsTypeArg() bool { return a.Type != nil }

func (a Arg) String() string {
	if a.IsTypeArg() {
		return a.Type.String()
	}
	return a.Term.String()
}

// Spine is a head applied to an ordered argument list. The head is never
// itself a Spine: NewApp flattens nested applications on construction.
type Spine struct {
	Head Term
	Args []Arg
}

func (Spine) isTerm() {}

func (s Spine) Type() typesys.Type {
	t := s.Head.Type()
	for _, a := range s.Args {
		if a.IsTypeArg() {
			forall, ok := t.(typesys.Forall)
			if !ok {
				panic(fmt.Sprintf("term: type argument applied to non-polymorphic type %s", t))
			}
			t = typesys.Subst(forall.Body, 1, a.Type)
		} else {
			fn, ok := t.(typesys.Func)
			if !ok {
				panic(fmt.Sprintf("term: argument applied to non-function type %s", t))
			}
			t = fn.Codomain
		}
	}
	return t
}

func (s Spine) String() string {
	out := s.Head.String()
	for _, a := range s.Args {
		out += " " + a.String()
	}
	return "(" + out + ")"
}

// NewApp applies fn to one argument, flattening the result if fn is
// already a Spine so that a spine head is never itself an application.
func NewApp(fn Term, arg Arg) Term {
	if sp, ok := fn.(Spine); ok {
		return Spine{Head: sp.Head, Args: append(append([]Arg{}, sp.Args...), arg)}
	}
	return Spine{Head: fn, Args: []Arg{arg}}
}

// NewSpine applies fn to a list of arguments in order.
func NewSpine(fn Term, args ...Arg) Term {
	for _, a := range args {
		fn = NewApp(fn, a)
	}
	return fn
}

// Head returns a term's spine head, or the term itself if it is not a
// Spine (i.e. it is already a bare head with no arguments).
func Head(t Term) Term {
	if sp, ok := t.(Spine); ok {
		return sp.Head
	}
	return t
}

// SpineArgs returns a term's argument list, or nil if it is not a Spine.
func SpineArgs(t Term) []Arg {
	if sp, ok := t.(Spine); ok {
		return sp.Args
	}
	return nil
}

// IsFlexAt reports whether t's head is a variable that is free relative to
// depth (i.e. index exceeds depth). Flex heads are the ones Huet's Bind,
// Imitate, and Project rules act on.
func IsFlexAt(t Term, depth int) bool {
	v, ok := Head(t).(Var)
	return ok && v.Idx > depth
}

// IsFlex reports whether t's head is free relative to top-level depth 0,
// the only depth the Huet rules ever inspect a head at (see the package
// doc and kernel/huet for why: eta-long normal form guarantees every
// function-typed subterm is already an Abs, so Func always discharges
// function-typed equations before any rule needs to classify a head under
// a real binder).
func IsFlex(t Term) bool { return IsFlexAt(t, 0) }

// IsRigid reports whether t's head is a constant, distinct object, or a
// variable bound within t itself (never free). A bound-variable head can
// only arise as the argument of some outer application, never as a
// top-level equation side once eta-long normal form is enforced; see
// kernel/huet's Imitate for how this is treated structurally rather than
// by assertion.
func IsRigid(t Term) bool { return !IsFlex(t) }

// IsBareVar reports whether t is, at the top level, exactly a variable
// with no arguments — the case Bind requires.
func IsBareVar(t Term) bool {
	_, ok := t.(Var)
	return ok
}

// Equal reports whether two terms are structurally identical, indices and
// all — the test Delete uses, since terms entering the unifier are always
// already normalised into a canonical (beta-normal, eta-long) shape, so
// structural identity coincides with alpha-equality.
func Equal(a, b Term) bool {
	switch at := a.(type) {
	case Var:
		bt, ok := b.(Var)
		return ok && at.Idx == bt.Idx && typesys.Equal(at.Ty, bt.Ty)
	case Const:
		bt, ok := b.(Const)
		return ok && at.Key == bt.Key
	case DistinctObject:
		bt, ok := b.(DistinctObject)
		return ok && at.Key == bt.Key
	case Abs:
		bt, ok := b.(Abs)
		return ok && typesys.Equal(at.ParamType, bt.ParamType) && Equal(at.Body, bt.Body)
	case TyAbs:
		bt, ok := b.(TyAbs)
		return ok && Equal(at.Body, bt.Body)
	case Spine:
		bt, ok := b.(Spine)
		if !ok || !Equal(at.Head, bt.Head) || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Args {
			if at.Args[i].IsTypeArg() != bt.Args[i].IsTypeArg() {
				return false
			}
			if at.Args[i].IsTypeArg() {
				if !typesys.Equal(at.Args[i].Type, bt.Args[i].Type) {
					return false
				}
			} else if !Equal(at.Args[i].Term, bt.Args[i].Term) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// occursAt reports whether the free variable freeIdx occurs anywhere in t,
// tracking the local binder depth so a Var deeper inside t is correctly
// read back to its outer identity (idx - depth) before comparing.
func occursAt(freeIdx int, t Term, depth int) bool {
	switch v := t.(type) {
	case Var:
		return v.Idx > depth && v.Idx-depth == freeIdx
	case Const, DistinctObject:
		return false
	case Abs:
		return occursAt(freeIdx, v.Body, depth+1)
	case TyAbs:
		return occursAt(freeIdx, v.Body, depth)
	case Spine:
		if occursAt(freeIdx, v.Head, depth) {
			return true
		}
		for _, a := range v.Args {
			if !a.IsTypeArg() && occursAt(freeIdx, a.Term, depth) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Occurs is the occurs check: does the free variable at index freeIdx
// appear anywhere within t.
func Occurs(freeIdx int, t Term) bool { return occursAt(freeIdx, t, 0) }

// LooseIndices returns the set of a term's free-variable identities: every
// Var occurrence whose index exceeds the local binder depth surrounding
// it, read back to its outer (depth-independent) identity. This is the
// free-variable-hygiene bookkeeping spec.md §3 requires.
func LooseIndices(t Term) map[int]struct{} {
	acc := map[int]struct{}{}
	var walk func(Term, int)
	walk = func(t Term, depth int) {
		switch v := t.(type) {
		case Var:
			if v.Idx > depth {
				acc[v.Idx-depth] = struct{}{}
			}
		case Abs:
			walk(v.Body, depth+1)
		case TyAbs:
			walk(v.Body, depth)
		case Spine:
			walk(v.Head, depth)
			for _, a := range v.Args {
				if !a.IsTypeArg() {
					walk(a.Term, depth)
				}
			}
		}
	}
	walk(t, 0)
	return acc
}

// WellTyped checks the invariant spec.md §3 requires of every term entering
// unification: argument types must match a spine head's declared domains
// in order, type arguments must instantiate an actual Forall, and a
// spine's head must never itself be a Spine (nested applications must
// already be flattened by NewApp).
func WellTyped(t Term) bool {
	switch v := t.(type) {
	case Var, Const, DistinctObject:
		return true
	case Abs:
		return WellTyped(v.Body)
	case TyAbs:
		return WellTyped(v.Body)
	case Spine:
		if _, ok := v.Head.(Spine); ok {
			return false
		}
		if !WellTyped(v.Head) {
			return false
		}
		cur := v.Head.Type()
		for _, a := range v.Args {
			if a.IsTypeArg() {
				forall, ok := cur.(typesys.Forall)
				if !ok {
					return false
				}
				cur = typesys.Subst(forall.Body, 1, a.Type)
			} else {
				if !WellTyped(a.Term) {
					return false
				}
				fn, ok := cur.(typesys.Func)
				if !ok || !typesys.Equal(fn.Domain, a.Term.Type()) {
					return false
				}
				cur = fn.Codomain
			}
		}
		return true
	default:
		return false
	}
}
