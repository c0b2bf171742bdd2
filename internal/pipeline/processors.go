package pipeline

import (
	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/inferencer"
	"github.com/mgrue/stacklang/internal/lexer"
	"github.com/mgrue/stacklang/internal/parser"
	"github.com/mgrue/stacklang/internal/resolver"
	"github.com/mgrue/stacklang/internal/typesystem"
)

// ScanProcessor runs the scanner over ctx.Source.
type ScanProcessor struct{}

func (ScanProcessor) Process(ctx *PipelineContext) *PipelineContext {
	tokens, err := lexer.Scan(ctx.Source)
	if err != nil {
		ctx.FatalErr = err
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
}

// ParseProcessor runs the parser over ctx.Tokens.
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *PipelineContext) *PipelineContext {
	cycles, err := parser.Parse(ctx.Tokens)
	if err != nil {
		ctx.FatalErr = err
		return ctx
	}
	ctx.Cycles = cycles
	return ctx
}

// CheckProcessor runs inference over every cycle, extending ctx.Env with
// each definition's declared type before checking the next cycle. A
// failed cycle is recorded in ctx.Errors; checking continues with the
// remaining cycles rather than aborting the whole pass.
type CheckProcessor struct{}

func (CheckProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Env == nil {
		ctx.Env = typesystem.NewEnvironment()
	}
	inferencer.RegisterBuiltins(ctx.Env)

	for _, cycle := range ctx.Cycles {
		result, err := checkCycle(ctx.Env, cycle)
		if err != nil {
			ctx.Errors = append(ctx.Errors, err)
			continue
		}
		ctx.Results = append(ctx.Results, result)
	}
	return ctx
}

func checkCycle(env *typesystem.Environment, cycle ast.Cycle) (CycleResult, *diagnostics.Error) {
	switch c := cycle.(type) {
	case *ast.Definition:
		declared, err := resolver.Resolve(c.Annotation)
		if err != nil {
			return CycleResult{}, err
		}
		// Entered before inferring the body so self- and mutual recursion
		// resolve against the declared type.
		env.Define(c.Name, declared)

		inferred, err := inferencer.Infer(env, c.Body)
		if err != nil {
			return CycleResult{}, err
		}
		if !definitionMatches(declared, inferred) {
			return CycleResult{}, diagnostics.DefinitionMismatch(declared.String(), inferred.String(), c.NameToken)
		}
		return CycleResult{Name: c.Name, Type: inferred}, nil

	case *ast.Term:
		inferred, err := inferencer.Infer(env, c.Factors)
		if err != nil {
			return CycleResult{}, err
		}
		return CycleResult{Type: inferred}, nil

	default:
		return CycleResult{}, nil
	}
}

// definitionMatches reports whether a definition's inferred body type
// satisfies its declared type. The inferred side is always a Function
// (the net stack effect of the body), but a declared annotation may be
// a bare ground type: `def a : Int = 1 ;` declares Int, not a Function,
// so that case is satisfied by a body that consumes nothing and
// produces exactly one value equal to the declared ground type.
func definitionMatches(declared typesystem.Type, inferred typesystem.Function) bool {
	if declaredFn, ok := declared.(typesystem.Function); ok {
		return typesystem.EqualModuloParams(declaredFn, inferred)
	}
	return len(inferred.Inputs) == 0 && len(inferred.Outputs) == 1 && typesystem.Equal(declared, inferred.Outputs[0])
}
