// Package config centralizes the fixed vocabulary of the language: the
// seven primitive words, the ground type names the resolver grounds
// directly, and the built-in arithmetic/boolean environment — a single
// source of truth shared by the parser, resolver, and inferencer.
package config

// DefKeyword introduces a top-level definition cycle. It is reserved and
// can never be used as an identifier.
const DefKeyword = "def"

// AssignOp and ArrowOp are the two operator lexemes that scan as
// ordinary WORD tokens rather than dedicated punctuation.
const (
	AssignOp = "="
	ArrowOp  = "->"
)

// Primitive words, per spec.md §3/§4.2's factor grammar.
const (
	PrimDup   = "dup"
	PrimDrop  = "drop"
	PrimQuote = "quote"
	PrimCall  = "call"
	PrimCat   = "cat"
	PrimSwap  = "swap"
	PrimIfte  = "ifte"
)

// Primitives is the set of reserved primitive-word lexemes.
var Primitives = map[string]bool{
	PrimDup: true, PrimDrop: true, PrimQuote: true, PrimCall: true,
	PrimCat: true, PrimSwap: true, PrimIfte: true,
}

// Ground type names the resolver grounds without a lookup.
const (
	TypeInt    = "Int"
	TypeBool   = "Bool"
	TypeString = "String"
)

// Arithmetic, comparison, and boolean built-in names (spec.md §6's
// built-in environment table).
var (
	Arithmetic = []string{"+", "-", "*", "/"}
	Comparison = []string{"<", ">", "="}
	BoolBinary = []string{"and", "or"}
	BoolUnary  = []string{"not"}
)
