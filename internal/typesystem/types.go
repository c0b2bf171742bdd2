// Package typesystem defines the internal Type representation produced
// by the resolver and inferencer: ground types, numbered parameters, and
// stack-effect function types.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all types in the stack-effect system.
type Type interface {
	String() string
	typeNode()
}

// Int, Bool, and String are the ground types. They are singletons: any
// two Int values are the same type.
type (
	intType    struct{}
	boolType   struct{}
	stringType struct{}
)

func (intType) typeNode()    {}
func (boolType) typeNode()   {}
func (stringType) typeNode() {}

func (intType) String() string    { return "Int" }
func (boolType) String() string   { return "Bool" }
func (stringType) String() string { return "String" }

var (
	Int    Type = intType{}
	Bool   Type = boolType{}
	String Type = stringType{}
)

// Param is a numbered inference variable (a row/value parameter).
// Equality is nominal on N: two Params denote the same type only when
// minted by the same inference run and assigned the same number.
type Param struct {
	N int
}

func (Param) typeNode() {}

func (p Param) String() string { return fmt.Sprintf("'%d", p.N) }

// Function is a stack-effect: Inputs is read right-to-left when the
// function is applied (the last element is consumed first); Outputs is
// pushed left-to-right.
type Function struct {
	Inputs  []Type
	Outputs []Type
}

func (Function) typeNode() {}

func (f Function) String() string {
	in := make([]string, len(f.Inputs))
	for i, t := range f.Inputs {
		in[i] = t.String()
	}
	out := make([]string, len(f.Outputs))
	for i, t := range f.Outputs {
		out[i] = t.String()
	}
	return fmt.Sprintf("(%s -- %s)", strings.Join(in, " "), strings.Join(out, " "))
}

// Equal reports whether a and b are structurally identical types. Two
// Params are equal only when their N fields match; this is the
// "structural equality" spec.md's call-as-function rule requires when
// an expected input is not itself a Param.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Param:
		b, ok := b.(Param)
		return ok && a.N == b.N
	case Function:
		b, ok := b.(Function)
		if !ok || len(a.Inputs) != len(b.Inputs) || len(a.Outputs) != len(b.Outputs) {
			return false
		}
		for i := range a.Inputs {
			if !Equal(a.Inputs[i], b.Inputs[i]) {
				return false
			}
		}
		for i := range a.Outputs {
			if !Equal(a.Outputs[i], b.Outputs[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// EqualModuloParams reports whether a and b are equal up to a consistent
// renaming of Params: the first distinct Param encountered in a may
// stand for any Param in b, so long as the correspondence is consistent
// throughout both types. Used to compare a definition's declared type
// against its inferred body type (spec.md §9, "Definition coherence").
func EqualModuloParams(a, b Type) bool {
	renaming := map[int]int{}
	reverse := map[int]int{}
	return equalModuloParams(a, b, renaming, reverse)
}

func equalModuloParams(a, b Type, renaming, reverse map[int]int) bool {
	switch a := a.(type) {
	case Param:
		b, ok := b.(Param)
		if !ok {
			return false
		}
		if mapped, seen := renaming[a.N]; seen {
			return mapped == b.N
		}
		if _, taken := reverse[b.N]; taken {
			return false
		}
		renaming[a.N] = b.N
		reverse[b.N] = a.N
		return true
	case Function:
		b, ok := b.(Function)
		if !ok || len(a.Inputs) != len(b.Inputs) || len(a.Outputs) != len(b.Outputs) {
			return false
		}
		for i := range a.Inputs {
			if !equalModuloParams(a.Inputs[i], b.Inputs[i], renaming, reverse) {
				return false
			}
		}
		for i := range a.Outputs {
			if !equalModuloParams(a.Outputs[i], b.Outputs[i], renaming, reverse) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
