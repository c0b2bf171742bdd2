// Package stacklang is the public facade over the scanner, parser,
// declared-type resolver, and stack-effect inferencer: the four
// programmatic entry points of §6 (scan, parse, check, infer).
package stacklang

import (
	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/inferencer"
	"github.com/mgrue/stacklang/internal/lexer"
	"github.com/mgrue/stacklang/internal/parser"
	"github.com/mgrue/stacklang/internal/pipeline"
	"github.com/mgrue/stacklang/internal/token"
	"github.com/mgrue/stacklang/internal/typesystem"
)

// Scan splits source text into a token stream.
func Scan(source string) ([]token.Token, *diagnostics.Error) {
	return lexer.Scan(source)
}

// Parse turns a token stream into an ordered list of top-level cycles.
func Parse(tokens []token.Token) ([]ast.Cycle, *diagnostics.Error) {
	return parser.Parse(tokens)
}

// NewEnvironment returns an environment seeded with the built-in
// arithmetic and boolean primitives.
func NewEnvironment() *typesystem.Environment {
	env := typesystem.NewEnvironment()
	inferencer.RegisterBuiltins(env)
	return env
}

// Infer runs the stack-effect inferencer over a single term's factors,
// one-shot, against the given environment.
func Infer(env *typesystem.Environment, factors []ast.Factor) (typesystem.Function, *diagnostics.Error) {
	return inferencer.Infer(env, factors)
}

// Check runs scan, parse, and per-cycle inference over a whole source
// file, extending the returned context's environment with each
// definition as it is checked. It never
// halts on a single cycle's type error; it records it and continues to
// subsequent cycles, matching the driver policy of §7.
func Check(source string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	return pipeline.Standard().Run(ctx)
}
