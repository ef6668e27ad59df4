package tptp

import "testing"

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTypes(t *testing.T, src string, want []TokenType) {
	t.Helper()
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %s, want %s", src, i, got[i], want[i])
		}
	}
}

func TestLexerWordsAndIdentifiers(t *testing.T) {
	assertTypes(t, "foo Bar", []TokenType{LowerWord, UpperWord, EOF})
}

func TestLexerDollarWords(t *testing.T) {
	assertTypes(t, "$true $$meta", []TokenType{DollarWord, DollarDollarWord, EOF})
}

func TestLexerQuotedLiterals(t *testing.T) {
	toks, err := NewLexer(`'a symbol' "a distinct object"`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[0].Type != SingleQuoted || toks[0].Text != "'a symbol'" {
		t.Fatalf("toks[0] = %v", toks[0])
	}
	if toks[1].Type != DoubleQuoted || toks[1].Text != `"a distinct object"` {
		t.Fatalf("toks[1] = %v", toks[1])
	}
}

func TestLexerQuotedLiteralWithEscape(t *testing.T) {
	toks, err := NewLexer(`'it\'s here'`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[0].Type != SingleQuoted {
		t.Fatalf("toks[0].Type = %s, want SingleQuoted", toks[0].Type)
	}
}

func TestLexerUnterminatedQuotedLiteralErrors(t *testing.T) {
	if _, err := NewLexer(`'unterminated`).Tokenize(); err == nil {
		t.Fatal("Tokenize(unterminated quote) = nil error, want an error")
	}
}

func TestLexerNumbers(t *testing.T) {
	assertTypes(t, "42 3/7 2.5 2.5e10 2.5E-3", []TokenType{
		Integer, Rational, Real, Real, Real, EOF,
	})
}

func TestLexerRationalRejectsZeroDenominator(t *testing.T) {
	if _, err := NewLexer("5/0").Tokenize(); err == nil {
		t.Fatal("Tokenize(\"5/0\") = nil error, want a rational-denominator error")
	}
}

func TestLexerPunctuationLongestMatchFirst(t *testing.T) {
	assertTypes(t, "<=> <~> => <= ~| ~& !> ?* @@+ @@- @@= @+ @- != :=", []TokenType{
		Iff, Xor, Implies, ImpliedBy, Nor, Nand, BangGreater, QuestionStar,
		AtAtPlus, AtAtMinus, AtAtAssign, AtPlus, AtMinus, NotEquals, Assign, EOF,
	})
}

func TestLexerSingleCharPunctuation(t *testing.T) {
	// Spaced so no pair accidentally forms a punct2/punct3 token (e.g. "=>").
	assertTypes(t, "( ) [ ] { } , . : | & ~ ! ? ^ @ = > * +", []TokenType{
		LParen, RParen, LBracket, RBracket, LBrace, RBrace, Comma, Period,
		Colon, Pipe, Amp, Tilde, Bang, Question, Caret, At, Equals, Greater,
		Star, Plus, EOF,
	})
}

func TestLexerSkipsCommentsAndWhitespace(t *testing.T) {
	assertTypes(t, "foo % a line comment\n bar /* a block\ncomment */ baz", []TokenType{
		LowerWord, LowerWord, LowerWord, EOF,
	})
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	toks, err := NewLexer("foo\nbar").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[0].Line != 1 || toks[0].Col != 1 {
		t.Fatalf("toks[0] position = %d:%d, want 1:1", toks[0].Line, toks[0].Col)
	}
	if toks[1].Line != 2 || toks[1].Col != 1 {
		t.Fatalf("toks[1] position = %d:%d, want 2:1", toks[1].Line, toks[1].Col)
	}
}

func TestLexerStartEndSpanExactSubstring(t *testing.T) {
	src := "foo(bar)"
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	for _, tok := range toks {
		if tok.Type == EOF {
			continue
		}
		if got := src[tok.Start:tok.End]; got != tok.Text {
			t.Fatalf("src[%d:%d] = %q, want %q", tok.Start, tok.End, got, tok.Text)
		}
	}
}

func TestLexerUnexpectedCharacterErrors(t *testing.T) {
	if _, err := NewLexer("#").Tokenize(); err == nil {
		t.Fatal("Tokenize(\"#\") = nil error, want an error")
	}
}
