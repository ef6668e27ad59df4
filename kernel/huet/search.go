package huet

import (
	"context"

	"github.com/noesis-atp/noesis/kernel/fresh"
	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/signature"
)

// Unifier is one pre-unifier: a substitution plus a residual set of
// flex-flex equations postponed rather than solved (spec.md §3).
type Unifier struct {
	Subst    term.Subst
	Residual []Equation
}

// Config is one search node: an immutable constraint problem, the
// fresh-variable generator scoped to its branch, and its BFS depth.
// Configurations are never mutated after construction; Stream.Next
// produces new ones rather than editing existing queue entries, per
// spec.md §3's "configurations are immutable" and §9's externally-driven
// next() design.
type Config struct {
	Problem Problem
	Gen     *fresh.Gen
	Depth   int
}

// Stream is a lazy breadth-first walk of the pre-unification search
// space. Callers pull one pre-unifier at a time via Next; dropping a
// Stream is how a caller cancels the search (spec.md §5).
type Stream struct {
	sig      *signature.Table
	maxDepth int
	queue    []Config
}

// DefaultMaxDepth is the search's default depth bound (spec.md §4.6).
const DefaultMaxDepth = 60

// Solve starts a pre-unification search for left = right. gen must be
// owned exclusively by this attempt (spec.md §4.7): a second concurrent
// Solve call must use an independent generator.
func Solve(sig *signature.Table, gen *fresh.Gen, left, right term.Term, maxDepth int) *Stream {
	initial := Problem{Unsolved: []Equation{{
		Left:  term.Normalize(left),
		Right: term.Normalize(right),
	}}}
	return &Stream{
		sig:      sig,
		maxDepth: maxDepth,
		queue:    []Config{{Problem: initial, Gen: gen, Depth: 0}},
	}
}

func prepend(eq Equation, rest []Equation) []Equation {
	out := make([]Equation, 0, len(rest)+1)
	out = append(out, eq)
	out = append(out, rest...)
	return out
}

// Next advances the search until it produces a pre-unifier, exhausts the
// queue, or ctx is cancelled. The second return is false exactly when no
// further pre-unifier will ever be produced (normal exhaustion, depth
// cut, or cancellation are all silent per spec.md §7 — none is an error).
func (s *Stream) Next(ctx context.Context) (Unifier, bool) {
	for len(s.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return Unifier{}, false
		}

		cfg := s.queue[0]
		s.queue = s.queue[1:]
		if cfg.Depth > s.maxDepth {
			continue
		}

		exhausted := Exhaust(s.sig, cfg.Problem)
		if len(exhausted.Unsolved) == 0 {
			return Unifier{Subst: ComputeSubst(exhausted.Solved)}, true
		}

		head := exhausted.Unsolved[0]
		switch Classify(head) {
		case RigidRigid:
			continue
		case FlexFlex:
			residual := append([]Equation{}, exhausted.Unsolved...)
			return Unifier{Subst: ComputeSubst(exhausted.Solved), Residual: residual}, true
		case FlexRigid:
			oriented, _ := orientFlexRigid(head)
			flexVar := term.Head(oriented.Left).(term.Var)
			rest := exhausted.Unsolved[1:]

			// spawnChild commits a guessed binding for flexVar. It is not
			// enough to record (flexVar, binding) as a standalone fact,
			// because the rigid side of the very equation that produced the
			// guess may itself still mention flexVar — occurs-check
			// failures like X = f(X) route here precisely because Bind
			// refused them. So the binding is substituted through the
			// original pair too, and the residual re-enters the queue
			// alongside the rest of the problem, substituted the same way
			// Bind substitutes through the equations it leaves behind. For
			// X = f(X), this reduces the residual to f(X') = f(f(X')),
			// which Decompose then turns back into X' = f(X') — the same
			// shape one level deeper — so the branch never closes and dies
			// only at the depth bound, instead of emitting the unsound
			// "solution" X ↦ f(X') for a totally unconstrained X'.
			spawnChild := func(gen *fresh.Gen, binding term.Term) {
				sigma := ComputeSubst([]SolvedEq{{Var: flexVar.Idx, Term: binding}})
				residual := Equation{
					Left:  term.Normalize(term.Apply(sigma, oriented.Left)),
					Right: term.Normalize(term.Apply(sigma, oriented.Right)),
				}
				newRest := make([]Equation, len(rest))
				for i, e := range rest {
					newRest[i] = Equation{
						Left:  term.Normalize(term.Apply(sigma, e.Left)),
						Right: term.Normalize(term.Apply(sigma, e.Right)),
					}
				}
				newSolved := make([]SolvedEq, len(exhausted.Solved), len(exhausted.Solved)+1)
				for i, se := range exhausted.Solved {
					newSolved[i] = SolvedEq{Var: se.Var, Term: term.Normalize(term.Apply(sigma, se.Term))}
				}
				newSolved = append(newSolved, SolvedEq{Var: flexVar.Idx, Term: binding})

				s.queue = append(s.queue, Config{
					Problem: Problem{Unsolved: prepend(residual, newRest), Solved: newSolved},
					Gen:     gen,
					Depth:   cfg.Depth + 1,
				})
			}

			if CanImitate(oriented) {
				g := cfg.Gen.Fork()
				spawnChild(g, Imitate(g, oriented))
			}

			projGen := cfg.Gen.Fork()
			for _, binding := range Project(projGen, oriented) {
				spawnChild(projGen.Fork(), binding)
			}
		}
	}
	return Unifier{}, false
}
