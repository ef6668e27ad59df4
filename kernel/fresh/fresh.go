// Package fresh generates fresh free-variable identities for the term
// algebra in kernel/term. It is grounded on the teacher's IndexFresh: a
// tiny monotonic counter, no global state, one instance per caller.
package fresh

import "github.com/noesis-atp/noesis/kernel/typesys"

// Entry records one previously allocated fresh variable's index and type.
type Entry struct {
	Index int
	Type  typesys.Type
}

// Gen is a scoped, single-owner fresh-variable generator: every unification
// attempt (kernel/huet.Solve) constructs its own Gen rather than reaching
// for a package-level counter, so two independent attempts can never
// allocate colliding identities. Unlike the teacher's IndexFresh, Gen also
// records each allocated index's type, since kernel/term.Var carries its
// type inline and callers need to look it up again when building answer
// substitutions.
type Gen struct {
	state   int
	entries []Entry
}

// New returns a generator whose first allocation is start. Huet problems
// typically start above every index already in use by the initial
// equation, so start is usually one past the highest index appearing in
// the problem.
func New(start int) *Gen {
	return &Gen{state: start}
}

// Next allocates one fresh variable of type ty and returns its index.
func (g *Gen) Next(ty typesys.Type) int {
	idx := g.state
	g.state++
	g.entries = append(g.entries, Entry{Index: idx, Type: ty})
	return idx
}

// NextN allocates n fresh variables, all of type ty, and returns their
// indices in allocation order.
func (g *Gen) NextN(n int, ty typesys.Type) []int {
	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = g.Next(ty)
	}
	return res
}

// Peek reports the next index this generator will allocate, without
// allocating it.
func (g *Gen) Peek() int { return g.state }

// Existing returns every index this generator has allocated so far, in
// allocation order.
func (g *Gen) Existing() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// TypeOf looks up the type a previously allocated index was given. The
// second return is false if idx was never allocated by this generator.
func (g *Gen) TypeOf(idx int) (typesys.Type, bool) {
	for _, e := range g.entries {
		if e.Index == idx {
			return e.Type, true
		}
	}
	return nil, false
}

// Fork returns a new independent generator continuing from this one's
// current state, for a search branch that must allocate further fresh
// variables of its own without perturbing sibling branches sharing the
// same parent state (kernel/huet's search tree forks a Gen per successor
// state it expands).
func (g *Gen) Fork() *Gen {
	entries := make([]Entry, len(g.entries))
	copy(entries, g.entries)
	return &Gen{state: g.state, entries: entries}
}
