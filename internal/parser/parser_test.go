package parser

import (
	"testing"

	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/lexer"
)

func mustParse(t *testing.T, src string) []ast.Cycle {
	t.Helper()
	toks, lexErr := lexer.Scan(src)
	if lexErr != nil {
		t.Fatalf("Scan(%q) failed: %v", src, lexErr)
	}
	cycles, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return cycles
}

func singleTerm(t *testing.T, src string) *ast.Term {
	t.Helper()
	cycles := mustParse(t, src)
	if len(cycles) != 1 {
		t.Fatalf("expected exactly one cycle, got %d", len(cycles))
	}
	term, ok := cycles[0].(*ast.Term)
	if !ok {
		t.Fatalf("expected a *ast.Term, got %T", cycles[0])
	}
	return term
}

func TestEmptyTerm(t *testing.T) {
	term := singleTerm(t, "")
	if len(term.Factors) != 0 {
		t.Fatalf("expected no factors, got %v", term.Factors)
	}
}

func TestLiteralFactors(t *testing.T) {
	term := singleTerm(t, `1 true "hi"`)
	if len(term.Factors) != 3 {
		t.Fatalf("expected 3 factors, got %d: %v", len(term.Factors), term.Factors)
	}
	intLit, ok := term.Factors[0].(*ast.IntLiteral)
	if !ok || intLit.Value != 1 {
		t.Fatalf("factor 0 = %+v, want IntLiteral(1)", term.Factors[0])
	}
	boolLit, ok := term.Factors[1].(*ast.BoolLiteral)
	if !ok || boolLit.Value != true {
		t.Fatalf("factor 1 = %+v, want BoolLiteral(true)", term.Factors[1])
	}
	strLit, ok := term.Factors[2].(*ast.StringLiteral)
	if !ok || strLit.Value != "hi" {
		t.Fatalf("factor 2 = %+v, want StringLiteral(hi)", term.Factors[2])
	}
}

func TestPrimitiveFactor(t *testing.T) {
	term := singleTerm(t, "dup")
	prim, ok := term.Factors[0].(*ast.Primitive)
	if !ok || prim.Name != "dup" {
		t.Fatalf("factor 0 = %+v, want Primitive(dup)", term.Factors[0])
	}
}

func TestIdentifierFactor(t *testing.T) {
	term := singleTerm(t, "foo")
	ident, ok := term.Factors[0].(*ast.Identifier)
	if !ok || ident.Name != "foo" {
		t.Fatalf("factor 0 = %+v, want Identifier(foo)", term.Factors[0])
	}
}

func TestQuotationNesting(t *testing.T) {
	term := singleTerm(t, "[1 dup dup] call")
	if len(term.Factors) != 2 {
		t.Fatalf("expected 2 factors, got %d: %v", len(term.Factors), term.Factors)
	}
	quote, ok := term.Factors[0].(*ast.Quotation)
	if !ok {
		t.Fatalf("factor 0 = %+v, want Quotation", term.Factors[0])
	}
	if len(quote.Factors) != 3 {
		t.Fatalf("expected 3 inner factors, got %d", len(quote.Factors))
	}
	if _, ok := term.Factors[1].(*ast.Primitive); !ok {
		t.Fatalf("factor 1 = %+v, want Primitive(call)", term.Factors[1])
	}
}

func TestDefinitionParsesIntoTwoCycles(t *testing.T) {
	cycles := mustParse(t, "def a : Int = 1 ; a")
	if len(cycles) != 2 {
		t.Fatalf("expected 2 cycles, got %d: %v", len(cycles), cycles)
	}
	def, ok := cycles[0].(*ast.Definition)
	if !ok {
		t.Fatalf("cycle 0 = %T, want *ast.Definition", cycles[0])
	}
	if def.Name != "a" {
		t.Fatalf("definition name = %q, want a", def.Name)
	}
	named, ok := def.Annotation.(*ast.NamedType)
	if !ok || named.Name != "Int" {
		t.Fatalf("annotation = %+v, want NamedType(Int)", def.Annotation)
	}
	if len(def.Body) != 1 {
		t.Fatalf("expected 1 body factor, got %d", len(def.Body))
	}
	term, ok := cycles[1].(*ast.Term)
	if !ok || len(term.Factors) != 1 {
		t.Fatalf("cycle 1 = %+v, want a one-factor Term", cycles[1])
	}
}

func TestFunctionTypeAnnotation(t *testing.T) {
	cycles := mustParse(t, "def f : (Int, String -> Int, String) = dup ;")
	def := cycles[0].(*ast.Definition)
	fn, ok := def.Annotation.(*ast.FunctionType)
	if !ok {
		t.Fatalf("annotation = %T, want *ast.FunctionType", def.Annotation)
	}
	if len(fn.Inputs) != 2 || len(fn.Outputs) != 2 {
		t.Fatalf("fn = %+v, want 2 inputs and 2 outputs", fn)
	}
}

func TestMissingSemicolonIsUnexpectedEndOfFile(t *testing.T) {
	toks, lexErr := lexer.Scan("def a : Int = 1")
	if lexErr != nil {
		t.Fatalf("Scan failed: %v", lexErr)
	}
	_, err := Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error for a missing semicolon")
	}
	if err.Code != diagnostics.CodeUnexpectedEOF {
		t.Fatalf("error code = %s, want %s", err.Code, diagnostics.CodeUnexpectedEOF)
	}
}

func TestUnterminatedQuotationIsAnError(t *testing.T) {
	toks, lexErr := lexer.Scan("[1 dup")
	if lexErr != nil {
		t.Fatalf("Scan failed: %v", lexErr)
	}
	_, err := Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error for an unterminated quotation")
	}
}
