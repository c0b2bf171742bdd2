package lexer

import (
	"testing"

	"github.com/mgrue/stacklang/internal/token"
)

func mustScan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan(%q) returned unexpected error: %v", src, err)
	}
	return toks
}

func TestScanEmpty(t *testing.T) {
	toks := mustScan(t, "")
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

func TestScanSimpleWords(t *testing.T) {
	toks := mustScan(t, "1 dup  drop")
	want := []string{"1", "dup", "drop"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != token.WORD || toks[i].Lexeme != w {
			t.Fatalf("token %d = %+v, want WORD %q", i, toks[i], w)
		}
	}
}

func TestPunctuationAreOwnTokens(t *testing.T) {
	toks := mustScan(t, "[1,2]")
	wantTypes := []token.Type{token.LBRACKET, token.WORD, token.COMMA, token.WORD, token.RBRACKET}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantTypes), toks)
	}
	for i, wt := range wantTypes {
		if toks[i].Type != wt {
			t.Fatalf("token %d type = %s, want %s (%v)", i, toks[i].Type, wt, toks[i])
		}
	}
}

func TestPunctuationAdjacentToWord(t *testing.T) {
	toks := mustScan(t, "dup;")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[0].Type != token.WORD || toks[0].Lexeme != "dup" {
		t.Fatalf("token 0 = %+v", toks[0])
	}
	if toks[1].Type != token.SEMICOLON {
		t.Fatalf("token 1 = %+v", toks[1])
	}
}

func TestBracesParensBrackets(t *testing.T) {
	toks := mustScan(t, "{}()[]")
	want := []token.Type{token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, wt := range want {
		if toks[i].Type != wt {
			t.Fatalf("token %d = %+v, want %s", i, toks[i], wt)
		}
	}
}

func TestScanSimpleString(t *testing.T) {
	toks := mustScan(t, `"hi"`)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
	}
	if toks[0].Type != token.STRING || toks[0].Lexeme != `"hi"` {
		t.Fatalf("token = %+v", toks[0])
	}
}

func TestScanStringWithEscape(t *testing.T) {
	toks := mustScan(t, `"a\"b"`)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(toks), toks)
	}
	if toks[0].Type != token.STRING || toks[0].Lexeme != `"a\"b"` {
		t.Fatalf("token = %+v", toks[0])
	}
}

func TestUnterminatedStringAtEOF(t *testing.T) {
	_, err := Scan(`"oops`)
	if err == nil {
		t.Fatal("expected a ParseError for an unterminated string")
	}
}

func TestUnterminatedStringAtNewline(t *testing.T) {
	_, err := Scan("\"oops\nmore")
	if err == nil {
		t.Fatal("expected a ParseError for a string broken by a raw newline")
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := mustScan(t, "1\ndup")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Fatalf("token 0 position = %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	if toks[1].Line != 2 || toks[1].Column != 1 {
		t.Fatalf("token 1 position = %d:%d, want 2:1", toks[1].Line, toks[1].Column)
	}
}

func TestDefinitionSourceScansEqualsAsWord(t *testing.T) {
	toks := mustScan(t, "def a : Int = 1 ;")
	wantLexemes := []string{"def", "a", ":", "Int", "=", "1", ";"}
	if len(toks) != len(wantLexemes) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantLexemes), toks)
	}
	for i, w := range wantLexemes {
		if toks[i].Lexeme != w {
			t.Fatalf("token %d lexeme = %q, want %q", i, toks[i].Lexeme, w)
		}
	}
	if toks[2].Type != token.COLON || toks[6].Type != token.SEMICOLON {
		t.Fatalf("expected : and ; to scan as punctuation, got %+v / %+v", toks[2], toks[6])
	}
	if toks[4].Type != token.WORD {
		t.Fatalf("expected = to scan as a WORD token, got %+v", toks[4])
	}
}

func TestFunctionAnnotationArrowScansAsWord(t *testing.T) {
	toks := mustScan(t, "(Int, String -> Int, String)")
	var arrowCount int
	for _, tok := range toks {
		if tok.Lexeme == "->" {
			if tok.Type != token.WORD {
				t.Fatalf("-> must scan as a WORD, got %+v", tok)
			}
			arrowCount++
		}
	}
	if arrowCount != 1 {
		t.Fatalf("expected exactly one -> token, saw %d", arrowCount)
	}
}
