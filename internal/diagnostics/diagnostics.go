// Package diagnostics implements the error type shared by every stage of
// the pipeline: scanner, parser, resolver, and inferencer all report
// failures through a single *Error carrying the offending token.
package diagnostics

import (
	"fmt"

	"github.com/mgrue/stacklang/internal/token"
)

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseScanner   Phase = "scanner"
	PhaseParser    Phase = "parser"
	PhaseResolver  Phase = "resolver"
	PhaseInference Phase = "inference"
)

// Code is a stable, documented identifier for an error kind. Codes label
// the abstract kinds spec.md names; they carry no behavior of their own.
type Code string

const (
	// Scanner
	CodeUnterminatedString Code = "L001"

	// Parser
	CodeUnexpectedToken Code = "P001"
	CodeUnexpectedEOF   Code = "P002"

	// Resolver / inferencer
	CodeUnknownIdentifier  Code = "T001"
	CodeUnknownType        Code = "T002"
	CodeTypeMismatch       Code = "T003"
	CodeDefinitionMismatch Code = "T004"
)

var templates = map[Code]string{
	CodeUnterminatedString: "unterminated string",
	CodeUnexpectedToken:    "expected %s but got %s",
	CodeUnexpectedEOF:      "unexpected end of file: %s",
	CodeUnknownIdentifier:  "unknown identifier %s",
	CodeUnknownType:        "unknown type %s",
	CodeTypeMismatch:       "expected %s but got %s",
	CodeDefinitionMismatch: "declared type %s does not match inferred type %s",
}

// Error is the single error type produced anywhere in the pipeline.
type Error struct {
	Code  Code
	Phase Phase
	Token token.Token
	Args  []interface{}
}

func (e *Error) Error() string {
	template, ok := templates[e.Code]
	message := fmt.Sprintf("unknown error code %s", e.Code)
	if ok {
		message = fmt.Sprintf(template, e.Args...)
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, message)
}

// New creates an Error for the given phase, code, token, and template
// arguments.
func New(phase Phase, code Code, tok token.Token, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, Token: tok, Args: args}
}

// ParseError reports scanner-detected malformed input (spec.md's
// ParseError kind — currently only the unterminated-string case).
func ParseError(tok token.Token) *Error {
	return New(PhaseScanner, CodeUnterminatedString, tok)
}

// UnexpectedToken reports that the parser found a token where a
// different lexeme was required.
func UnexpectedToken(expected string, actual token.Token) *Error {
	return New(PhaseParser, CodeUnexpectedToken, actual, expected, fmt.Sprintf("%q", actual.Lexeme))
}

// UnexpectedEndOfFile reports that the token stream ended mid-production.
func UnexpectedEndOfFile(context string) *Error {
	return New(PhaseParser, CodeUnexpectedEOF, token.Unknown(), context)
}

// UnknownIdentifier reports a TypeError for an identifier with no
// binding in the environment.
func UnknownIdentifier(name string, tok token.Token) *Error {
	return New(PhaseInference, CodeUnknownIdentifier, tok, name)
}

// UnknownType reports a TypeError for an annotation naming an unresolved
// type identifier.
func UnknownType(name string, tok token.Token) *Error {
	return New(PhaseResolver, CodeUnknownType, tok, name)
}

// TypeMismatch reports a TypeError where an expected stack-top type did
// not structurally match the actual value popped.
func TypeMismatch(expected, got string, tok token.Token) *Error {
	return New(PhaseInference, CodeTypeMismatch, tok, expected, got)
}

// DefinitionMismatch reports that a definition's declared type disagrees
// with the type inferred for its body.
func DefinitionMismatch(declared, inferred string, tok token.Token) *Error {
	return New(PhaseInference, CodeDefinitionMismatch, tok, declared, inferred)
}
