package inferencer

import (
	"github.com/mgrue/stacklang/internal/config"
	"github.com/mgrue/stacklang/internal/typesystem"
)

// RegisterBuiltins seeds env with the arithmetic and boolean primitives
// of spec.md §6. Primitive words (dup, drop, quote, call, cat, swap,
// ifte) are handled directly by the inferencer and are not entered here.
func RegisterBuiltins(env *typesystem.Environment) {
	arithmetic := typesystem.Function{
		Inputs:  []typesystem.Type{typesystem.Int, typesystem.Int},
		Outputs: []typesystem.Type{typesystem.Int},
	}
	comparison := typesystem.Function{
		Inputs:  []typesystem.Type{typesystem.Int, typesystem.Int},
		Outputs: []typesystem.Type{typesystem.Bool},
	}
	boolBinary := typesystem.Function{
		Inputs:  []typesystem.Type{typesystem.Bool, typesystem.Bool},
		Outputs: []typesystem.Type{typesystem.Bool},
	}
	boolUnary := typesystem.Function{
		Inputs:  []typesystem.Type{typesystem.Bool},
		Outputs: []typesystem.Type{typesystem.Bool},
	}

	for _, name := range config.Arithmetic {
		env.Define(name, arithmetic)
	}
	for _, name := range config.Comparison {
		env.Define(name, comparison)
	}
	for _, name := range config.BoolUnary {
		env.Define(name, boolUnary)
	}
	for _, name := range config.BoolBinary {
		env.Define(name, boolBinary)
	}
}
