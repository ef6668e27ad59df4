package tptp

import (
	"fmt"

	"github.com/noesis-atp/noesis/kernel/kind"
	"github.com/noesis-atp/noesis/kernel/typesys"
	"github.com/noesis-atp/noesis/signature"
	"github.com/noesis-atp/noesis/szs"
)

// StatementKind distinguishes the two top-level shapes a TPTP file's
// statements can take (spec.md §6).
type StatementKind int

const (
	Include StatementKind = iota
	Annotated
)

// Statement is one recognized top-level unit of a TPTP file: either an
// include directive or an `<lang>(name, role, formula, annotations).`
// statement, with the formula kept as raw, unparsed source text — the
// formula grammar itself belongs to the external parser spec.md §1 names,
// not to this reader.
type Statement struct {
	Kind StatementKind

	// Include fields.
	IncludeFile  string
	IncludeNames []string

	// Annotated fields.
	Lang    string
	Name    string
	Role    string
	Formula string
}

// Reader recognizes TPTP's statement-level shape — include(...) and
// <lang>(name, role, formula, annotations). with balanced parens — without
// parsing the formula grammar. When sig is non-nil, `type`-role statements
// whose formula has the shape `ident : arrow-of-idents` are additionally
// registered into sig, exercising the signature-table contract end to end
// against real TPTP-like input.
type Reader struct {
	lex *Lexer
	src string
	sig *signature.Table
}

// NewReader returns a Reader over src. sig may be nil if the caller only
// wants statement extraction, not signature registration.
func NewReader(src string, sig *signature.Table) *Reader {
	return &Reader{lex: NewLexer(src), src: src, sig: sig}
}

// ReadAll scans every statement in the input. A structural or lexical
// violation is reported as an szs.Error, spec.md §7's fail-fast contract.
func (r *Reader) ReadAll() ([]Statement, error) {
	var out []Statement
	for {
		tok, err := r.lex.Next()
		if err != nil {
			return out, szs.NewError(szs.SyntaxError, err.Error())
		}
		if tok.Type == EOF {
			return out, nil
		}
		if tok.Type != LowerWord {
			return out, r.syntaxErrorf(tok, "expected a statement keyword, got %s", tok.Type)
		}

		var stmt Statement
		if tok.Text == "include" {
			stmt, err = r.readInclude()
		} else {
			stmt, err = r.readAnnotated(tok.Text)
		}
		if err != nil {
			return out, err
		}
		out = append(out, stmt)
	}
}

func (r *Reader) syntaxErrorf(tok Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return szs.NewError(szs.SyntaxError, fmt.Sprintf("%d:%d: %s", tok.Line, tok.Col, msg))
}

func (r *Reader) expect(t TokenType) (Token, error) {
	tok, err := r.lex.Next()
	if err != nil {
		return Token{}, szs.NewError(szs.SyntaxError, err.Error())
	}
	if tok.Type != t {
		return Token{}, r.syntaxErrorf(tok, "expected %s, got %s %q", t, tok.Type, tok.Text)
	}
	return tok, nil
}

func (r *Reader) readInclude() (Statement, error) {
	if _, err := r.expect(LParen); err != nil {
		return Statement{}, err
	}
	file, err := r.expect(SingleQuoted)
	if err != nil {
		return Statement{}, err
	}
	stmt := Statement{Kind: Include, IncludeFile: unquote(file.Text)}

	tok, err := r.lex.Next()
	if err != nil {
		return Statement{}, szs.NewError(szs.SyntaxError, err.Error())
	}
	if tok.Type == Comma {
		if _, err := r.expect(LBracket); err != nil {
			return Statement{}, err
		}
		for {
			name, err := r.lex.Next()
			if err != nil {
				return Statement{}, szs.NewError(szs.SyntaxError, err.Error())
			}
			if name.Type != LowerWord && name.Type != UpperWord {
				return Statement{}, r.syntaxErrorf(name, "expected a select name, got %s", name.Type)
			}
			stmt.IncludeNames = append(stmt.IncludeNames, name.Text)

			sep, err := r.lex.Next()
			if err != nil {
				return Statement{}, szs.NewError(szs.SyntaxError, err.Error())
			}
			if sep.Type == RBracket {
				break
			}
			if sep.Type != Comma {
				return Statement{}, r.syntaxErrorf(sep, "expected , or ], got %s", sep.Type)
			}
		}
		if tok, err = r.lex.Next(); err != nil {
			return Statement{}, szs.NewError(szs.SyntaxError, err.Error())
		}
	}
	if tok.Type != RParen {
		return Statement{}, r.syntaxErrorf(tok, "expected ), got %s", tok.Type)
	}
	if _, err := r.expect(Period); err != nil {
		return Statement{}, err
	}
	return stmt, nil
}

func (r *Reader) readAnnotated(lang string) (Statement, error) {
	if _, err := r.expect(LParen); err != nil {
		return Statement{}, err
	}
	name, err := r.lex.Next()
	if err != nil {
		return Statement{}, szs.NewError(szs.SyntaxError, err.Error())
	}
	if _, err := r.expect(Comma); err != nil {
		return Statement{}, err
	}
	role, err := r.expect(LowerWord)
	if err != nil {
		return Statement{}, err
	}
	if _, err := r.expect(Comma); err != nil {
		return Statement{}, err
	}

	formulaTokens, terminator, err := r.scanBalancedSpan()
	if err != nil {
		return Statement{}, err
	}
	if terminator.Type == Comma {
		// Annotations: one more balanced span, discarded — this reader
		// only needs the formula's raw text, not the annotation's source.
		if _, terminator, err = r.scanBalancedSpan(); err != nil {
			return Statement{}, err
		}
	}
	if terminator.Type != RParen {
		return Statement{}, r.syntaxErrorf(terminator, "expected ) or ,, got %s", terminator.Type)
	}
	if _, err := r.expect(Period); err != nil {
		return Statement{}, err
	}

	stmt := Statement{
		Kind: Annotated, Lang: lang, Name: name.Text, Role: role.Text,
		Formula: formulaSpan(r.src, formulaTokens),
	}

	if role.Text == "type" && r.sig != nil {
		if err := defineTypeDecl(r.sig, formulaTokens); err != nil {
			return Statement{}, err
		}
	}
	return stmt, nil
}

// scanBalancedSpan reads tokens up to (but not consuming) the next
// depth-zero Comma or RParen, tracking (), [], {} nesting. It returns the
// span's tokens and the terminating token.
func (r *Reader) scanBalancedSpan() ([]Token, Token, error) {
	var span []Token
	depth := 0
	for {
		tok, err := r.lex.Next()
		if err != nil {
			return nil, Token{}, szs.NewError(szs.SyntaxError, err.Error())
		}
		if tok.Type == EOF {
			return nil, Token{}, r.syntaxErrorf(tok, "unexpected end of input inside a formula")
		}
		switch tok.Type {
		case LParen, LBracket, LBrace:
			depth++
		case RParen, RBracket, RBrace:
			if depth == 0 && tok.Type == RParen {
				return span, tok, nil
			}
			depth--
		case Comma:
			if depth == 0 {
				return span, tok, nil
			}
		}
		span = append(span, tok)
	}
}

func formulaSpan(src string, toks []Token) string {
	if len(toks) == 0 {
		return ""
	}
	return src[toks[0].Start:toks[len(toks)-1].End]
}

func unquote(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

// defineTypeDecl recognizes a `type`-role formula of the shape
//
//	ident : ident (> ident)*
//
// e.g. `f : i > i > o` — a monomorphic function symbol's declared type —
// or `c : i`, a plain constant declaration, or `human : $tType` /
// `list : $tType > $tType`, a type-constructor declaration, and registers
// whichever it is into sig as an Uninterpreted or TypeConstructor entry
// respectively — the real disjunction spec.md §6 draws between the two
// declaration shapes. Every identifier after the colon must already be a
// known type (one of sig's Fixed base types, or an earlier `type`-role
// declaration of a TypeConstructor), except `$tType` itself, which never
// gets a signature entry of its own. This intentionally does not handle
// parenthesized argument groupings or polymorphic (`!>`-quantified) types
// — spec.md §1 names the external formula parser as the place a full
// six-dialect type grammar belongs; this is only enough to exercise the
// signature table against realistic input.
func defineTypeDecl(sig *signature.Table, toks []Token) error {
	if len(toks) < 3 || toks[0].Type != LowerWord || toks[1].Type != Colon {
		return szs.NewError(szs.SyntaxError, "type declaration must have the shape `ident : ident (> ident)*`")
	}
	declName := toks[0].Text

	var idents []string
	for i := 2; i < len(toks); i += 2 {
		if toks[i].Type != LowerWord && toks[i].Type != DollarWord {
			return szs.NewError(szs.SyntaxError, fmt.Sprintf("expected a type identifier, got %s %q", toks[i].Type, toks[i].Text))
		}
		idents = append(idents, toks[i].Text)
		if i+1 < len(toks) {
			if toks[i+1].Type != Greater {
				return szs.NewError(szs.SyntaxError, fmt.Sprintf("expected > between arrow components, got %s", toks[i+1].Type))
			}
		}
	}

	if idents[len(idents)-1] == "$tType" {
		return defineTypeConstructor(sig, declName, idents)
	}

	resolved := make([]typesys.Type, len(idents))
	for i, name := range idents {
		entry, ok := sig.Lookup(builtinTypeName(name))
		if !ok || (entry.Kind != signature.Fixed && entry.Kind != signature.TypeConstructor) {
			return szs.NewError(szs.TypeError, fmt.Sprintf("undeclared type %q in %q's declaration", name, declName))
		}
		switch entry.Key {
		case signature.FixedO:
			resolved[i] = signature.OType()
		case signature.FixedI:
			resolved[i] = signature.IType()
		default:
			resolved[i] = typesys.Base{Key: entry.Key, Name: entry.Name, BaseKind: kind.Star{}}
		}
	}

	var declType typesys.Type
	if len(resolved) == 1 {
		declType = resolved[0]
	} else {
		declType = typesys.NewFunc(resolved[:len(resolved)-1], resolved[len(resolved)-1])
	}

	_, err := sig.Define(declName, signature.Uninterpreted, declType, kind.Star{})
	if err != nil {
		return szs.NewError(szs.TypeError, err.Error())
	}
	return nil
}

// defineTypeConstructor handles the `$tType`-headed shape of a type
// declaration: `name : $tType` declares name as a nullary base type
// (kind *), and `name : $tType > ... > $tType` declares it as a type
// constructor whose kind has one Arrow per argument. Every component
// before the final `$tType` must itself be `$tType` — TPTP's type
// language has no mixed term/type arrows.
func defineTypeConstructor(sig *signature.Table, declName string, idents []string) error {
	for _, name := range idents {
		if name != "$tType" {
			return szs.NewError(szs.SyntaxError, fmt.Sprintf("%q mixes $tType with a term-level type in %q's declaration", name, declName))
		}
	}

	k := kind.Kind(kind.Star{})
	for range idents[:len(idents)-1] {
		k = kind.NewArrow(kind.Star{}, k)
	}

	_, err := sig.Define(declName, signature.TypeConstructor, nil, k)
	if err != nil {
		return szs.NewError(szs.TypeError, err.Error())
	}
	return nil
}

// builtinTypeName maps TPTP's dollar-prefixed built-in type names onto the
// plain names sig.New() registers its two fixed types under. $tType itself
// is handled directly in defineTypeDecl, since it never gets a Lookup-able
// signature entry.
func builtinTypeName(name string) string {
	switch name {
	case "$o":
		return "o"
	case "$i":
		return "i"
	default:
		return name
	}
}
