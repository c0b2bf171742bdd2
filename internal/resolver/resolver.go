// Package resolver converts the surface type annotations produced by the
// parser into internal typesystem.Type values, per spec.md §4.3.
package resolver

import (
	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/config"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/typesystem"
)

var ground = map[string]typesystem.Type{
	config.TypeInt:    typesystem.Int,
	config.TypeBool:   typesystem.Bool,
	config.TypeString: typesystem.String,
}

// Resolve converts a parsed annotation into an internal Type. A bare name
// other than Int/Bool/String is an unresolved named type and fails with
// CodeUnknownType; a function annotation resolves each of its inputs and
// outputs recursively.
func Resolve(annotation ast.TypeAnnotation) (typesystem.Type, *diagnostics.Error) {
	switch a := annotation.(type) {
	case *ast.NamedType:
		if t, ok := ground[a.Name]; ok {
			return t, nil
		}
		return nil, diagnostics.UnknownType(a.Name, a.Token)

	case *ast.FunctionType:
		inputs, err := resolveList(a.Inputs)
		if err != nil {
			return nil, err
		}
		outputs, err := resolveList(a.Outputs)
		if err != nil {
			return nil, err
		}
		return typesystem.Function{Inputs: inputs, Outputs: outputs}, nil

	default:
		return nil, diagnostics.UnknownType("<unknown>", annotation.GetToken())
	}
}

func resolveList(annotations []ast.TypeAnnotation) ([]typesystem.Type, *diagnostics.Error) {
	types := make([]typesystem.Type, len(annotations))
	for i, a := range annotations {
		t, err := Resolve(a)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}
