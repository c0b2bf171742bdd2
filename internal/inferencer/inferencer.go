// Package inferencer implements the stack-effect type inferencer: the
// core subsystem that abstractly interprets a term against a symbolic
// stack and produces a principal Function type, per spec.md §4.4.
package inferencer

import (
	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/config"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/token"
	"github.com/mgrue/stacklang/internal/typesystem"
)

// Inferencer owns the symbolic stacks and parameter counter of a single
// inference run. A fresh Inferencer is created per term; nested
// quotations get their own child with independent parameter numbering.
type Inferencer struct {
	env       *typesystem.Environment
	inStack   []typesystem.Type
	outStack  []typesystem.Type
	nextParam int
}

// New returns an Inferencer sharing env but owning fresh, empty stacks.
func New(env *typesystem.Environment) *Inferencer {
	return &Inferencer{env: env}
}

// Infer runs a fresh Inferencer over factors and returns the net effect
// as a Function(inStack, outStack).
func Infer(env *typesystem.Environment, factors []ast.Factor) (typesystem.Function, *diagnostics.Error) {
	inf := New(env)
	return inf.infer(factors)
}

func (inf *Inferencer) infer(factors []ast.Factor) (typesystem.Function, *diagnostics.Error) {
	for _, factor := range factors {
		if err := inf.processFactor(factor); err != nil {
			return typesystem.Function{}, err
		}
	}
	return typesystem.Function{Inputs: inf.inStack, Outputs: inf.outStack}, nil
}

// pop removes and returns the top of the abstract stack. When the
// output stack is empty it mints a fresh Param, records it as a newly
// discovered input requirement, and returns that instead. The mint is
// prepended, not appended: the first pop of a run is the shallowest
// requirement and belongs at the end of in_stack (the last element is
// read first), so each subsequent, deeper pop must land before it.
func (inf *Inferencer) pop() typesystem.Type {
	if n := len(inf.outStack); n > 0 {
		t := inf.outStack[n-1]
		inf.outStack = inf.outStack[:n-1]
		return t
	}
	p := inf.freshParam()
	inf.inStack = append([]typesystem.Type{p}, inf.inStack...)
	return p
}

func (inf *Inferencer) push(t typesystem.Type) {
	inf.outStack = append(inf.outStack, t)
}

func (inf *Inferencer) freshParam() typesystem.Param {
	p := typesystem.Param{N: inf.nextParam}
	inf.nextParam++
	return p
}

func (inf *Inferencer) processFactor(factor ast.Factor) *diagnostics.Error {
	switch f := factor.(type) {
	case *ast.IntLiteral:
		inf.push(typesystem.Int)
	case *ast.BoolLiteral:
		inf.push(typesystem.Bool)
	case *ast.StringLiteral:
		inf.push(typesystem.String)

	case *ast.Identifier:
		t, ok := inf.env.Lookup(f.Name)
		if !ok {
			return diagnostics.UnknownIdentifier(f.Name, f.Token)
		}
		inf.push(t)

	case *ast.Quotation:
		child := New(inf.env)
		fn, err := child.infer(f.Factors)
		if err != nil {
			return err
		}
		inf.push(fn)

	case *ast.Primitive:
		return inf.applyPrimitive(f)

	default:
		return diagnostics.New(diagnostics.PhaseInference, diagnostics.CodeUnknownIdentifier, factor.GetToken(), "<unrecognised factor>")
	}
	return nil
}

func (inf *Inferencer) applyPrimitive(p *ast.Primitive) *diagnostics.Error {
	switch p.Name {
	case config.PrimDup:
		a := inf.pop()
		inf.push(a)
		inf.push(a)
	case config.PrimDrop:
		inf.pop()
	case config.PrimQuote:
		a := inf.pop()
		inf.push(typesystem.Function{Inputs: []typesystem.Type{}, Outputs: []typesystem.Type{a}})
	case config.PrimSwap:
		b := inf.pop()
		a := inf.pop()
		inf.push(b)
		inf.push(a)
	case config.PrimCall:
		a := inf.pop()
		return inf.callValue(a, p.Token)
	case config.PrimCat:
		return inf.applyCat(p.Token)
	case config.PrimIfte:
		return inf.applyIfte(p.Token)
	default:
		return diagnostics.New(diagnostics.PhaseInference, diagnostics.CodeUnknownIdentifier, p.Token, p.Name)
	}
	return nil
}

// asFunction returns val as a Function, promoting a bare Param into one
// shaped by wantIns/wantOuts (spec.md §9's function-promotion strategy
// for "call-as-function on a bare Param"). Any other type is a TypeError.
func (inf *Inferencer) asFunction(val typesystem.Type, wantIns, wantOuts []typesystem.Type, tok token.Token) (typesystem.Function, *diagnostics.Error) {
	switch v := val.(type) {
	case typesystem.Function:
		return v, nil
	case typesystem.Param:
		return inf.promoteParam(v, wantIns, wantOuts), nil
	default:
		return typesystem.Function{}, diagnostics.TypeMismatch("a function", v.String(), tok)
	}
}

// promoteParam rewrites every occurrence of p within in_stack into a
// Function shaped by ins/outs, and returns that Function. Occurrences
// living only in in_stack are covered; this is the documented
// simplification for the open "call on a bare Param" design question.
func (inf *Inferencer) promoteParam(p typesystem.Param, ins, outs []typesystem.Type) typesystem.Function {
	fn := typesystem.Function{Inputs: ins, Outputs: outs}
	for i, t := range inf.inStack {
		if q, ok := t.(typesystem.Param); ok && q.N == p.N {
			inf.inStack[i] = fn
		}
	}
	return fn
}

// callValue performs call-as-function on val: it pops val's declared
// inputs in reverse order, binds bare Param inputs into a one-shot
// "learned" mapping, and pushes its outputs with that mapping applied.
func (inf *Inferencer) callValue(val typesystem.Type, tok token.Token) *diagnostics.Error {
	fn, err := inf.asFunction(val, []typesystem.Type{inf.freshParam()}, []typesystem.Type{inf.freshParam()}, tok)
	if err != nil {
		return err
	}
	return inf.applyFunctionCall(fn, tok)
}

func (inf *Inferencer) applyFunctionCall(fn typesystem.Function, tok token.Token) *diagnostics.Error {
	learned := map[int]typesystem.Type{}
	for i := len(fn.Inputs) - 1; i >= 0; i-- {
		expected := fn.Inputs[i]
		actual := inf.pop()
		if p, ok := expected.(typesystem.Param); ok {
			learned[p.N] = actual
			continue
		}
		if !typesystem.Equal(expected, actual) {
			return diagnostics.TypeMismatch(expected.String(), actual.String(), tok)
		}
	}
	for _, out := range fn.Outputs {
		if pushed, ok := substituteLearned(out, learned); ok {
			inf.push(pushed)
		}
	}
	return nil
}

// substituteLearned rewrites t's Params using learned. A Param missing
// from learned causes the element to be dropped by the caller (an
// under-constrained output, per spec.md §9).
func substituteLearned(t typesystem.Type, learned map[int]typesystem.Type) (typesystem.Type, bool) {
	switch v := t.(type) {
	case typesystem.Param:
		sub, ok := learned[v.N]
		return sub, ok
	case typesystem.Function:
		ins := make([]typesystem.Type, 0, len(v.Inputs))
		for _, it := range v.Inputs {
			if sub, ok := substituteLearned(it, learned); ok {
				ins = append(ins, sub)
			}
		}
		outs := make([]typesystem.Type, 0, len(v.Outputs))
		for _, ot := range v.Outputs {
			if sub, ok := substituteLearned(ot, learned); ok {
				outs = append(outs, sub)
			}
		}
		return typesystem.Function{Inputs: ins, Outputs: outs}, true
	default:
		return v, true
	}
}

// applyCat pops two function-typed values g then f and pushes the
// composition f⋅g: running f against an abstract stack, then g against
// whatever f leaves behind.
func (inf *Inferencer) applyCat(tok token.Token) *diagnostics.Error {
	gVal := inf.pop()
	fVal := inf.pop()

	fFn, err := inf.asFunction(fVal, []typesystem.Type{inf.freshParam()}, []typesystem.Type{inf.freshParam()}, tok)
	if err != nil {
		return err
	}
	gFn, err := inf.asFunction(gVal, []typesystem.Type{inf.freshParam()}, []typesystem.Type{inf.freshParam()}, tok)
	if err != nil {
		return err
	}

	composed, err := inf.compose(fFn, gFn, tok)
	if err != nil {
		return err
	}
	inf.push(composed)
	return nil
}

// compose computes the stack-composed effect of running fFn then gFn.
// Both are freshened into this inferencer's parameter space first so
// that their independently-numbered Params cannot collide with one
// another or with params already in scope.
func (inf *Inferencer) compose(fFn, gFn typesystem.Function, tok token.Token) (typesystem.Function, *diagnostics.Error) {
	counter := inf.nextParam
	freshF := freshenFunction(fFn, &counter)
	freshG := freshenFunction(gFn, &counter)
	inf.nextParam = counter

	sub := &Inferencer{
		env:       inf.env,
		inStack:   append([]typesystem.Type{}, freshF.Inputs...),
		outStack:  append([]typesystem.Type{}, freshF.Outputs...),
		nextParam: inf.nextParam,
	}
	if err := sub.applyFunctionCall(freshG, tok); err != nil {
		return typesystem.Function{}, err
	}
	inf.nextParam = sub.nextParam
	return typesystem.Function{Inputs: sub.inStack, Outputs: sub.outStack}, nil
}

// freshenFunction renames every Param inside fn to a new number drawn
// from *counter, consistently within fn, so it can be combined with a
// type from an unrelated parameter space.
func freshenFunction(fn typesystem.Function, counter *int) typesystem.Function {
	mapping := map[int]int{}
	return freshenType(fn, mapping, counter).(typesystem.Function)
}

func freshenType(t typesystem.Type, mapping map[int]int, counter *int) typesystem.Type {
	switch v := t.(type) {
	case typesystem.Param:
		if n, ok := mapping[v.N]; ok {
			return typesystem.Param{N: n}
		}
		n := *counter
		*counter++
		mapping[v.N] = n
		return typesystem.Param{N: n}
	case typesystem.Function:
		ins := make([]typesystem.Type, len(v.Inputs))
		for i, it := range v.Inputs {
			ins[i] = freshenType(it, mapping, counter)
		}
		outs := make([]typesystem.Type, len(v.Outputs))
		for i, ot := range v.Outputs {
			outs[i] = freshenType(ot, mapping, counter)
		}
		return typesystem.Function{Inputs: ins, Outputs: outs}
	default:
		return t
	}
}

// applyIfte pops else, then, and cond function values (in that order,
// since inputs are read top-of-stack first) and pushes the type both
// branches must agree on.
//
// cond_fn must produce exactly Bool. then_fn and else_fn are ordinary
// thunks (their own input arity is unconstrained, matching the usual
// `cond [then] [else] ifte` idiom where the branches don't themselves
// consume the test result) whose single output must agree; when one
// branch's result is still an unbound Param, the other branch's
// concrete result wins.
func (inf *Inferencer) applyIfte(tok token.Token) *diagnostics.Error {
	elseVal := inf.pop()
	thenVal := inf.pop()
	condVal := inf.pop()

	condFn, err := inf.asFunction(condVal, []typesystem.Type{inf.freshParam()}, []typesystem.Type{typesystem.Bool}, tok)
	if err != nil {
		return err
	}
	if len(condFn.Outputs) != 1 || !typesystem.Equal(condFn.Outputs[0], typesystem.Bool) {
		got := "<nothing>"
		if len(condFn.Outputs) == 1 {
			got = condFn.Outputs[0].String()
		}
		return diagnostics.TypeMismatch(typesystem.Bool.String(), got, tok)
	}

	thenFn, err := inf.asFunction(thenVal, []typesystem.Type{}, []typesystem.Type{inf.freshParam()}, tok)
	if err != nil {
		return err
	}
	elseFn, err := inf.asFunction(elseVal, []typesystem.Type{}, []typesystem.Type{inf.freshParam()}, tok)
	if err != nil {
		return err
	}
	if len(thenFn.Outputs) != 1 || len(elseFn.Outputs) != 1 {
		return diagnostics.TypeMismatch("one result", "a different arity", tok)
	}

	var result typesystem.Type
	switch {
	case isParam(thenFn.Outputs[0]):
		result = elseFn.Outputs[0]
	case isParam(elseFn.Outputs[0]):
		result = thenFn.Outputs[0]
	case typesystem.Equal(thenFn.Outputs[0], elseFn.Outputs[0]):
		result = thenFn.Outputs[0]
	default:
		return diagnostics.TypeMismatch(thenFn.Outputs[0].String(), elseFn.Outputs[0].String(), tok)
	}
	inf.push(result)
	return nil
}

func isParam(t typesystem.Type) bool {
	_, ok := t.(typesystem.Param)
	return ok
}
