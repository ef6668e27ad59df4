package huet

import "github.com/noesis-atp/noesis/kernel/term"

// ComputeSubst realises SEq as a single composite substitution, spec.md
// §4.3: find the highest bound index M, then cons fronts from M down to 1,
// a term front for each solved index and a renaming front for every index
// SEq left untouched.
func ComputeSubst(seq []SolvedEq) term.Subst {
	if len(seq) == 0 {
		return term.Id()
	}

	byVar := make(map[int]term.Term, len(seq))
	m := 0
	for _, s := range seq {
		byVar[s.Var] = s.Term
		if s.Var > m {
			m = s.Var
		}
	}

	sigma := term.ShiftBy(m)
	for j := 1; j <= m; j++ {
		idx := m - j + 1
		if t, ok := byVar[idx]; ok {
			sigma = term.Cons(term.FrontTerm{Term: t}, sigma)
		} else {
			sigma = term.ConsBound(idx, sigma)
		}
	}
	return sigma
}
