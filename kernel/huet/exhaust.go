package huet

import (
	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/signature"
)

func splice(list []Equation, i int, replacement ...Equation) []Equation {
	out := make([]Equation, 0, len(list)-1+len(replacement))
	out = append(out, list[:i]...)
	out = append(out, replacement...)
	out = append(out, list[i+1:]...)
	return out
}

// exhaustStep applies the highest-priority firing rule once and reports
// whether anything fired, spec.md §4.5's priority order: Delete, Decompose,
// Bind, Func.
func exhaustStep(sig *signature.Table, p Problem) (Problem, bool) {
	for i, eq := range p.Unsolved {
		if CanDelete(eq) {
			p.Unsolved = splice(p.Unsolved, i)
			return p, true
		}
	}
	for i, eq := range p.Unsolved {
		if CanDecompose(eq) {
			p.Unsolved = splice(p.Unsolved, i, Decompose(eq)...)
			p.SortUnsolved()
			return p, true
		}
	}
	for i, eq := range p.Unsolved {
		oriented, ok := orientForBind(eq)
		if !ok {
			continue
		}
		pair := SolvedEq{Var: oriented.Left.(term.Var).Idx, Term: oriented.Right}
		sigma := ComputeSubst([]SolvedEq{pair})

		rest := make([]Equation, 0, len(p.Unsolved)-1)
		for k, other := range p.Unsolved {
			if k == i {
				continue
			}
			rest = append(rest, Equation{
				Left:  term.Normalize(term.Apply(sigma, other.Left)),
				Right: term.Normalize(term.Apply(sigma, other.Right)),
			})
		}
		solved := make([]SolvedEq, len(p.Solved))
		for k, s := range p.Solved {
			solved[k] = SolvedEq{Var: s.Var, Term: term.Normalize(term.Apply(sigma, s.Term))}
		}
		solved = append(solved, pair)

		p.Unsolved = rest
		p.Solved = solved
		p.SortUnsolved()
		return p, true
	}
	for i, eq := range p.Unsolved {
		if CanFunc(eq) {
			p.Unsolved[i] = Func(sig, eq)
			p.SortUnsolved()
			return p, true
		}
	}
	return p, false
}

// Exhaust repeatedly fires Delete/Decompose/Bind/Func until none applies,
// spec.md §4.5.
func Exhaust(sig *signature.Table, p Problem) Problem {
	p.SortUnsolved()
	for {
		next, fired := exhaustStep(sig, p)
		if !fired {
			return next
		}
		p = next
	}
}
