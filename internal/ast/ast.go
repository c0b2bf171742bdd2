// Package ast defines the parse tree produced by the parser: factors,
// the terms they compose into, and the top-level cycles (definitions and
// bare terms) that make up a program.
package ast

import "github.com/mgrue/stacklang/internal/token"

// Factor is a single syntactic unit of a term: a primitive word, a
// literal, an identifier, or a quotation.
type Factor interface {
	factorNode()
	// GetToken returns the token most useful for diagnostics about this
	// factor (its own token, or the opening bracket for a quotation).
	GetToken() token.Token
}

// Primitive is one of the seven built-in stack words: dup, drop, quote,
// call, cat, swap, ifte.
type Primitive struct {
	Token token.Token
	Name  string // "dup", "drop", "quote", "call", "cat", "swap", "ifte"
}

func (p *Primitive) factorNode()           {}
func (p *Primitive) GetToken() token.Token { return p.Token }

// IntLiteral is an integer literal factor.
type IntLiteral struct {
	Token token.Token
	Value int64
}

func (l *IntLiteral) factorNode()           {}
func (l *IntLiteral) GetToken() token.Token { return l.Token }

// BoolLiteral is a boolean literal factor (exactly "true" or "false").
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (l *BoolLiteral) factorNode()           {}
func (l *BoolLiteral) GetToken() token.Token { return l.Token }

// StringLiteral is a string literal factor. Value holds the decoded
// text (quotes stripped, escapes left as the two-character form the
// scanner preserved).
type StringLiteral struct {
	Token token.Token
	Value string
}

func (l *StringLiteral) factorNode()           {}
func (l *StringLiteral) GetToken() token.Token { return l.Token }

// Identifier is an arbitrary name looked up in the environment.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) factorNode()           {}
func (i *Identifier) GetToken() token.Token { return i.Token }

// Quotation is a bracketed term: `[ term ]`. It denotes a first-class
// value whose type is a function type, not the term's own effect.
type Quotation struct {
	Open    token.Token // the "[" token
	Factors []Factor
}

func (q *Quotation) factorNode()           {}
func (q *Quotation) GetToken() token.Token { return q.Open }

// TypeAnnotation is the surface syntax for a declared stack-effect,
// before resolution into an internal typesystem.Type.
type TypeAnnotation interface {
	typeAnnotationNode()
	GetToken() token.Token
}

// NamedType is a bare type name: Int, Bool, String, or an unresolved
// identifier.
type NamedType struct {
	Token token.Token
	Name  string
}

func (n *NamedType) typeAnnotationNode()  {}
func (n *NamedType) GetToken() token.Token { return n.Token }

// FunctionType is a parenthesized stack-effect annotation:
// "(" type { "," type } "->" type { "," type } ")".
type FunctionType struct {
	Open    token.Token
	Close   token.Token
	Inputs  []TypeAnnotation
	Outputs []TypeAnnotation
}

func (f *FunctionType) typeAnnotationNode()  {}
func (f *FunctionType) GetToken() token.Token { return f.Open }

// Cycle is a top-level compilation unit: either a definition or a bare
// term.
type Cycle interface {
	cycleNode()
}

// Definition binds Name to Body, declared to have stack-effect
// Annotation: `def name : annotation = body ;`.
type Definition struct {
	NameToken  token.Token
	Name       string
	Annotation TypeAnnotation
	Body       []Factor
}

func (d *Definition) cycleNode() {}

// Term is a bare top-level term; its type is the type of the whole
// input.
type Term struct {
	Factors []Factor
}

func (t *Term) cycleNode() {}
