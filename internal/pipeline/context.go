// Package pipeline wires the scanner, parser, and inferencer into the
// linear scan -> parse -> check pass described in spec.md §2: source in,
// per-cycle types or diagnostics out.
package pipeline

import (
	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/token"
	"github.com/mgrue/stacklang/internal/typesystem"
)

// CycleResult is the outcome of checking one top-level cycle: its name
// (empty for a bare term) and the type the inferencer assigned it.
type CycleResult struct {
	Name string
	Type typesystem.Function
}

// PipelineContext holds all data passed between pipeline stages. Each
// Processor reads what earlier stages produced and fills in its own
// field; a fatal error on one stage short-circuits the stages after it.
type PipelineContext struct {
	Source string

	Tokens []token.Token
	Cycles []ast.Cycle

	Env     *typesystem.Environment
	Results []CycleResult

	// FatalErr aborts the whole pass (a scan or parse failure). Errors
	// holds one entry per cycle that failed to check; the driver may
	// still continue checking the remaining cycles after one fails.
	FatalErr *diagnostics.Error
	Errors   []*diagnostics.Error
}

// NewPipelineContext creates a context seeded with source and an empty
// environment. CheckProcessor registers the built-in primitives into it
// before checking the first cycle.
func NewPipelineContext(source string) *PipelineContext {
	env := typesystem.NewEnvironment()
	return &PipelineContext{Source: source, Env: env}
}
