package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/noesis-atp/noesis/kernel/fresh"
	"github.com/noesis-atp/noesis/kernel/term"
	"github.com/noesis-atp/noesis/kernel/typesys"
	"github.com/noesis-atp/noesis/signature"
)

// termParser parses noesis unify's minimal prefix S-expression syntax into
// kernel/term terms: `(c a b)` for an n-ary application, `(\ (x i) body)`
// for a one-parameter abstraction whose parameter type names a signature
// entry, and `?X` for a free (meta) variable. There is no library in the
// retrieval pack for this kind of surface syntax — a hand-rolled
// recursive-descent parser over a pre-split token list is the plain,
// idiomatic way to do it in Go, the way the pack's own lexers are
// hand-rolled cursor scanners rather than generated ones.
//
// Any plain identifier not already in sig is auto-declared in sig, and any
// ?-variable gets a fresh identity from gen (kept in freeI/freeT, not in
// sig), the first time it is used, with a curried type of arity args -> i (the
// playground's only base type is the individual sort i, matching spec.md's
// own worked examples which never need anything richer).
//
// Bound names are resolved to the shared index space kernel/term.Var
// documents: a bound occurrence's index is its distance to its binder
// (innermost = 1); a free occurrence's index is its stable identity plus
// the number of binders currently enclosing it, matching how
// kernel/huet/rules.go's buildPartialBinding places fresh variables under
// freshly built abstractions.
type termParser struct {
	toks []string
	pos  int
	sig  *signature.Table
	gen  *fresh.Gen

	env      []string       // env[0] is the innermost enclosing binder's name
	envTypes []typesys.Type // envTypes[i] is env[i]'s declared parameter type

	freeI map[string]int          // stable identity per free-variable name
	freeT map[string]typesys.Type // its (possibly curried) type, fixed on first use
}

// newTermParser returns a parser over src. Two terms parsed with parsers
// sharing the same sig, gen, and free-variable maps refer to the same
// meta-variable identity for a repeated ?X — the shape noesis unify needs
// so ?X in lhs and ?X in rhs name one unknown, not two.
func newTermParser(src string, sig *signature.Table, gen *fresh.Gen, freeI map[string]int, freeT map[string]typesys.Type) *termParser {
	return &termParser{
		toks:  tokenizeSexpr(src),
		sig:   sig,
		gen:   gen,
		freeI: freeI,
		freeT: freeT,
	}
}

// tokenizeSexpr splits on parens and whitespace, keeping ( and ) as their
// own tokens.
func tokenizeSexpr(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func (p *termParser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *termParser) next() (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("unexpected end of input")
	}
	p.pos++
	return tok, nil
}

func (p *termParser) expect(want string) (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok != want {
		return "", fmt.Errorf("expected %q, got %q", want, tok)
	}
	return tok, nil
}

// Parse parses one complete term and reports an error if input remains.
func (p *termParser) Parse() (term.Term, error) {
	t, err := p.parseArg()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing input starting at %q", p.toks[p.pos])
	}
	return t, nil
}

// parseCompound parses everything after a consumed "(". A bare identifier
// or ?-variable head is not resolved until every argument has been parsed,
// so an unseen head's arity is known before it is auto-declared.
func (p *termParser) parseCompound() (term.Term, error) {
	headTok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of input inside (")
	}
	if headTok == `\` {
		p.pos++
		return p.parseAbs()
	}

	var headTerm term.Term
	var headName string
	bareHead := headTok != "("
	if bareHead {
		p.pos++
		headName = headTok
	} else {
		var err error
		headTerm, err = p.parseArg()
		if err != nil {
			return nil, err
		}
	}

	var args []term.Arg
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unexpected end of input, expected )")
		}
		if tok == ")" {
			p.pos++
			break
		}
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, term.TermArg(arg))
	}

	if bareHead {
		var err error
		headTerm, err = p.resolveHead(headName, len(args))
		if err != nil {
			return nil, err
		}
	}
	if len(args) == 0 {
		return headTerm, nil
	}
	return term.NewSpine(headTerm, args...), nil
}

// parseArg parses one argument position: either a parenthesized compound
// or a bare zero-arity head.
func (p *termParser) parseArg() (term.Term, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of input")
	}
	if tok == "(" {
		p.pos++
		return p.parseCompound()
	}
	p.pos++
	return p.resolveHead(tok, 0)
}

// parseAbs parses `(x t) body)` — the `\` and its own `(` have already
// been consumed by parseCompound.
func (p *termParser) parseAbs() (term.Term, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	name, err := p.next()
	if err != nil {
		return nil, err
	}
	typeName, err := p.next()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	paramTy, err := p.resolveType(typeName)
	if err != nil {
		return nil, err
	}

	p.env = append([]string{name}, p.env...)
	p.envTypes = append([]typesys.Type{paramTy}, p.envTypes...)
	body, err := p.parseArg()
	p.env = p.env[1:]
	p.envTypes = p.envTypes[1:]
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return term.Abs{ParamType: paramTy, Body: body}, nil
}

func (p *termParser) resolveType(name string) (typesys.Type, error) {
	entry, ok := p.sig.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	switch entry.Key {
	case signature.FixedO:
		return signature.OType(), nil
	case signature.FixedI:
		return signature.IType(), nil
	default:
		return typesys.Base{Key: entry.Key, Name: entry.Name, BaseKind: entry.TyKind}, nil
	}
}

// resolveHead resolves a bare identifier used as a spine head with the
// given argument count: a bound parameter (always arity 0 in this small
// surface syntax), a free ?-variable, or a signature constant -- declaring
// the constant with a fresh curried arity->i type on first use if it is
// not already registered.
func (p *termParser) resolveHead(name string, arity int) (term.Term, error) {
	if strings.HasPrefix(name, "?") {
		return p.freeVar(name[1:], arity)
	}
	for i, bound := range p.env {
		if bound == name {
			if arity != 0 {
				return nil, fmt.Errorf("bound variable %q cannot be applied to arguments in this syntax", name)
			}
			return term.Var{Idx: i + 1, Ty: p.envTypes[i]}, nil
		}
	}

	entry, ok := p.sig.Lookup(name)
	if !ok {
		ty := curriedIndividual(arity)
		var err error
		entry, err = p.sig.Define(name, signature.Uninterpreted, ty, nil)
		if err != nil {
			return nil, err
		}
	}
	if entry.Type == nil {
		return nil, fmt.Errorf("%q has no term type (it is a %s)", name, entry.Kind)
	}
	if typesys.Arity(entry.Type) != arity {
		return nil, fmt.Errorf("%q expects %d argument(s), used with %d", name, typesys.Arity(entry.Type), arity)
	}
	return term.Const{Key: entry.Key, Ty: entry.Type}, nil
}

func (p *termParser) freeVar(name string, arity int) (term.Term, error) {
	ty, ok := p.freeT[name]
	if !ok {
		ty = curriedIndividual(arity)
		p.freeT[name] = ty
		p.freeI[name] = p.gen.Next(ty)
	} else if typesys.Arity(ty) != arity {
		return nil, fmt.Errorf("free variable ?%s expects %d argument(s), used with %d", name, typesys.Arity(ty), arity)
	}
	identity := p.freeI[name]
	return term.Var{Idx: identity + len(p.env), Ty: ty}, nil
}

// curriedIndividual builds arity -> i -> ... -> i -> i, the fresh-symbol
// default type when no declaration says otherwise.
func curriedIndividual(arity int) typesys.Type {
	iTy := signature.IType()
	args := make([]typesys.Type, arity)
	for i := range args {
		args[i] = iTy
	}
	return typesys.NewFunc(args, iTy)
}
