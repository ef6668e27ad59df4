// Package typesys implements the type language of the reasoning kernel:
// base types indexed by signature key, function/product/sum types, free
// type variables, and universally quantified types. Types are compared
// structurally and carry their own Kind, following the accessor-per-variant
// idiom the kernel's term algebra also uses.
package typesys

import (
	"fmt"

	"github.com/noesis-atp/noesis/kernel/kind"
)

// Type is a closed variant type: Base, Func, Product, Sum, Var, Forall.
type Type interface {
	fmt.Stringer
	// Kind returns the kind of this type.
	Kind() kind.Kind
	isType()
}

// Base is a reference into the external signature table by key, e.g. the
// fixed keys for object truth `o` and individual `i`.
type Base struct {
	Key      int
	Name     string
	BaseKind kind.Kind
}

func (Base) isType() {}

func (t Base) Kind() kind.Kind { return t.BaseKind }

func (t Base) String() string { return t.Name }

// Func is the function type `A -> B`.
type Func struct {
	Domain   Type
	Codomain Type
}

func (Func) isType() {}

func (Func) Kind() kind.Kind { return kind.Star{} }

func (t Func) String() string {
	if _, ok := t.Domain.(Func); ok {
		return fmt.Sprintf("(%s) -> %s", t.Domain, t.Codomain)
	}
	return fmt.Sprintf("%s -> %s", t.Domain, t.Codomain)
}

// Product is the product type `A x B`.
type Product struct {
	Left  Type
	Right Type
}

func (Product) isType() {}

func (Product) Kind() kind.Kind { return kind.Star{} }

func (t Product) String() string { return fmt.Sprintf("(%s x %s)", t.Left, t.Right) }

// Sum is the sum type `A + B`.
type Sum struct {
	Left  Type
	Right Type
}

func (Sum) isType() {}

func (Sum) Kind() kind.Kind { return kind.Star{} }

func (t Sum) String() string { return fmt.Sprintf("(%s + %s)", t.Left, t.Right) }

// Var is a free type variable, identified by a de-Bruijn-like index in the
// same style as term-level variables (spec §3): an index below the current
// binder depth is bound, above it is free.
type Var struct {
	Index  int
	VarKind kind.Kind
}

func (Var) isType() {}

func (t Var) Kind() kind.Kind { return t.VarKind }

func (t Var) String() string { return fmt.Sprintf("t%d", t.Index) }

// Forall universally quantifies over one bound type variable in Body. The
// bound variable's kind is fixed to Star: this kernel does not support
// higher-kinded quantification.
type Forall struct {
	Body Type
}

func (Forall) isType() {}

func (Forall) Kind() kind.Kind { return kind.Star{} }

func (t Forall) String() string { return fmt.Sprintf("!. %s", t.Body) }

// Decompose splits a type into its argument list and final result type,
// e.g. `A -> B -> C` decomposes to ([A, B], C).
func Decompose(t Type) (args []Type, result Type) {
	for {
		f, ok := t.(Func)
		if !ok {
			return args, t
		}
		args = append(args, f.Domain)
		t = f.Codomain
	}
}

// Arity is the number of arguments a function type accepts before reaching
// a non-function result.
func Arity(t Type) int {
	args, _ := Decompose(t)
	return len(args)
}

// Result returns the final, non-function result type.
func Result(t Type) Type {
	_, result := Decompose(t)
	return result
}

// IsPolymorphic reports whether t is headed by a universal quantifier.
func IsPolymorphic(t Type) bool {
	_, ok := t.(Forall)
	return ok
}

// Subst replaces every free occurrence of the type variable at index with
// replacement, shifting indices under a Forall the same way term-level
// substitution shifts under a binder (kernel/term.Apply).
func Subst(t Type, index int, replacement Type) Type {
	return substAt(t, index, replacement, 0)
}

// SubstAt is Subst starting from a nonzero binder depth, for callers (like
// kernel/term's type-substitution pass) that must substitute inside a type
// already nested under some number of binders they are tracking themselves.
func SubstAt(t Type, index int, replacement Type, depth int) Type {
	return substAt(t, index, replacement, depth)
}

func substAt(t Type, index int, replacement Type, depth int) Type {
	switch tt := t.(type) {
	case Base:
		return tt
	case Var:
		switch {
		case tt.Index == index+depth:
			return shiftType(replacement, depth)
		case tt.Index > index+depth:
			return Var{Index: tt.Index - 1, VarKind: tt.VarKind}
		default:
			return tt
		}
	case Func:
		return Func{Domain: substAt(tt.Domain, index, replacement, depth), Codomain: substAt(tt.Codomain, index, replacement, depth)}
	case Product:
		return Product{Left: substAt(tt.Left, index, replacement, depth), Right: substAt(tt.Right, index, replacement, depth)}
	case Sum:
		return Sum{Left: substAt(tt.Left, index, replacement, depth), Right: substAt(tt.Right, index, replacement, depth)}
	case Forall:
		return Forall{Body: substAt(tt.Body, index, replacement, depth+1)}
	default:
		panic(fmt.Sprintf("typesys: unrecognized type variant %T", t))
	}
}

func shiftType(t Type, by int) Type {
	if by == 0 {
		return t
	}
	switch tt := t.(type) {
	case Base:
		return tt
	case Var:
		return Var{Index: tt.Index + by, VarKind: tt.VarKind}
	case Func:
		return Func{Domain: shiftType(tt.Domain, by), Codomain: shiftType(tt.Codomain, by)}
	case Product:
		return Product{Left: shiftType(tt.Left, by), Right: shiftType(tt.Right, by)}
	case Sum:
		return Sum{Left: shiftType(tt.Left, by), Right: shiftType(tt.Right, by)}
	case Forall:
		return Forall{Body: shiftType(tt.Body, by)}
	default:
		panic(fmt.Sprintf("typesys: unrecognized type variant %T", t))
	}
}

// Equal reports whether two types are structurally identical.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Base:
		bt, ok := b.(Base)
		return ok && at.Key == bt.Key
	case Var:
		bt, ok := b.(Var)
		return ok && at.Index == bt.Index
	case Func:
		bt, ok := b.(Func)
		return ok && Equal(at.Domain, bt.Domain) && Equal(at.Codomain, bt.Codomain)
	case Product:
		bt, ok := b.(Product)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case Sum:
		bt, ok := b.(Sum)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case Forall:
		bt, ok := b.(Forall)
		return ok && Equal(at.Body, bt.Body)
	default:
		return false
	}
}

// NewFunc builds a right-associated function type from a list of argument
// types plus a final result type, the inverse of Decompose.
func NewFunc(args []Type, result Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = Func{Domain: args[i], Codomain: t}
	}
	return t
}
