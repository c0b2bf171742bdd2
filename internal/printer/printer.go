// Package printer renders tokens, factors, and types back to canonical
// source text. It exists to support the round-trip property of
// spec.md §8 ("scan ∘ print-tokens is identity on canonical spacing")
// and to give the CLI driver a single place to format a checked cycle.
package printer

import (
	"strconv"
	"strings"

	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/token"
)

// Tokens renders a token stream using canonical spacing: every token
// separated by exactly one space. Re-scanning this text reproduces the
// same token stream, since the scanner treats punctuation as always its
// own token regardless of surrounding whitespace.
func Tokens(tokens []token.Token) string {
	lexemes := make([]string, len(tokens))
	for i, tok := range tokens {
		lexemes[i] = tok.Lexeme
	}
	return strings.Join(lexemes, " ")
}

// Factors renders a sequence of parsed factors back to canonical
// source text.
func Factors(factors []ast.Factor) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = Factor(f)
	}
	return strings.Join(parts, " ")
}

// Factor renders a single factor.
func Factor(f ast.Factor) string {
	switch v := f.(type) {
	case *ast.Primitive:
		return v.Name
	case *ast.IntLiteral:
		return strconv.FormatInt(v.Value, 10)
	case *ast.BoolLiteral:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.StringLiteral:
		return v.Token.Lexeme
	case *ast.Identifier:
		return v.Name
	case *ast.Quotation:
		if len(v.Factors) == 0 {
			return "[]"
		}
		return "[" + Factors(v.Factors) + "]"
	default:
		return "<?>"
	}
}

// Cycle renders a top-level cycle.
func Cycle(c ast.Cycle) string {
	switch v := c.(type) {
	case *ast.Definition:
		return "def " + v.Name + " : " + TypeAnnotation(v.Annotation) + " = " + Factors(v.Body) + " ;"
	case *ast.Term:
		return Factors(v.Factors)
	default:
		return "<?>"
	}
}

// TypeAnnotation renders a parsed (unresolved) type annotation.
func TypeAnnotation(a ast.TypeAnnotation) string {
	switch v := a.(type) {
	case *ast.NamedType:
		return v.Name
	case *ast.FunctionType:
		ins := make([]string, len(v.Inputs))
		for i, t := range v.Inputs {
			ins[i] = TypeAnnotation(t)
		}
		outs := make([]string, len(v.Outputs))
		for i, t := range v.Outputs {
			outs[i] = TypeAnnotation(t)
		}
		return "(" + strings.Join(ins, ", ") + " -> " + strings.Join(outs, ", ") + ")"
	default:
		return "<?>"
	}
}
