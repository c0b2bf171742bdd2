// Package parser turns a scanned token stream into the cycles (top-level
// definitions and terms) that make up a program, per spec.md §4.2.
package parser

import (
	"strconv"

	"github.com/mgrue/stacklang/internal/ast"
	"github.com/mgrue/stacklang/internal/config"
	"github.com/mgrue/stacklang/internal/diagnostics"
	"github.com/mgrue/stacklang/internal/token"
)

type parser struct {
	tokens []token.Token
	pos    int
}

// Parse consumes the full token stream and returns the ordered list of
// top-level cycles it describes. An empty token stream is a single empty
// term.
func Parse(tokens []token.Token) ([]ast.Cycle, *diagnostics.Error) {
	if len(tokens) == 0 {
		return []ast.Cycle{&ast.Term{}}, nil
	}
	p := &parser{tokens: tokens}
	var cycles []ast.Cycle
	for !p.atEnd() {
		start := p.pos
		cycle, err := p.parseCycle()
		if err != nil {
			return nil, err
		}
		if p.pos == start {
			tok, _ := p.peek()
			return nil, diagnostics.UnexpectedToken("factor", tok)
		}
		cycles = append(cycles, cycle)
	}
	return cycles, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() token.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) expectType(t token.Type, context string) (token.Token, *diagnostics.Error) {
	tok, ok := p.peek()
	if !ok {
		return token.Token{}, diagnostics.UnexpectedEndOfFile(context)
	}
	if tok.Type != t {
		return token.Token{}, diagnostics.UnexpectedToken(string(t), tok)
	}
	return p.advance(), nil
}

func (p *parser) expectWord(lexeme, context string) (token.Token, *diagnostics.Error) {
	tok, ok := p.peek()
	if !ok {
		return token.Token{}, diagnostics.UnexpectedEndOfFile(context)
	}
	if tok.Type != token.WORD || tok.Lexeme != lexeme {
		return token.Token{}, diagnostics.UnexpectedToken(lexeme, tok)
	}
	return p.advance(), nil
}

func isDefKeyword(tok token.Token) bool {
	return tok.Type == token.WORD && tok.Lexeme == config.DefKeyword
}

func (p *parser) parseCycle() (ast.Cycle, *diagnostics.Error) {
	tok, ok := p.peek()
	if ok && isDefKeyword(tok) {
		return p.parseDefinition()
	}
	factors, err := p.parseFactors()
	if err != nil {
		return nil, err
	}
	return &ast.Term{Factors: factors}, nil
}

func (p *parser) parseDefinition() (*ast.Definition, *diagnostics.Error) {
	if _, err := p.expectWord(config.DefKeyword, "definition"); err != nil {
		return nil, err
	}
	nameTok, err := p.expectType(token.WORD, "definition name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectType(token.COLON, "definition"); err != nil {
		return nil, err
	}
	annotation, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectWord(config.AssignOp, "definition"); err != nil {
		return nil, err
	}
	body, err := p.parseFactors()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectType(token.SEMICOLON, "definition"); err != nil {
		return nil, err
	}
	return &ast.Definition{NameToken: nameTok, Name: nameTok.Lexeme, Annotation: annotation, Body: body}, nil
}

// parseFactors reads factors until it hits a token that cannot start a
// factor, leaving that token for the caller.
func (p *parser) parseFactors() ([]ast.Factor, *diagnostics.Error) {
	var factors []ast.Factor
	for {
		tok, ok := p.peek()
		if !ok || !canStartFactor(tok) {
			return factors, nil
		}
		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, factor)
	}
}

func canStartFactor(tok token.Token) bool {
	switch tok.Type {
	case token.LBRACKET, token.STRING:
		return true
	case token.WORD:
		return !isDefKeyword(tok)
	default:
		return false
	}
}

func (p *parser) parseFactor() (ast.Factor, *diagnostics.Error) {
	tok, _ := p.peek()
	switch tok.Type {
	case token.LBRACKET:
		open := p.advance()
		inner, err := p.parseFactors()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectType(token.RBRACKET, "quotation"); err != nil {
			return nil, err
		}
		return &ast.Quotation{Open: open, Factors: inner}, nil

	case token.STRING:
		tok = p.advance()
		return &ast.StringLiteral{Token: tok, Value: decodeStringLexeme(tok.Lexeme)}, nil

	case token.WORD:
		tok = p.advance()
		switch {
		case config.Primitives[tok.Lexeme]:
			return &ast.Primitive{Token: tok, Name: tok.Lexeme}, nil
		case tok.Lexeme == "true":
			return &ast.BoolLiteral{Token: tok, Value: true}, nil
		case tok.Lexeme == "false":
			return &ast.BoolLiteral{Token: tok, Value: false}, nil
		default:
			if value, ok := parseIntLexeme(tok.Lexeme); ok {
				return &ast.IntLiteral{Token: tok, Value: value}, nil
			}
			return &ast.Identifier{Token: tok, Name: tok.Lexeme}, nil
		}

	default:
		return nil, diagnostics.UnexpectedToken("factor", tok)
	}
}

// decodeStringLexeme strips the surrounding quotes from a scanned string
// token. Escapes are left exactly as the scanner preserved them.
func decodeStringLexeme(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[1 : len(lexeme)-1]
}

func parseIntLexeme(lexeme string) (int64, bool) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseType parses a surface type annotation:
//
//	type ::= "Int" | "Bool" | "String" | ident
//	       | "(" type { "," type } "->" type { "," type } ")"
func (p *parser) parseType() (ast.TypeAnnotation, *diagnostics.Error) {
	tok, ok := p.peek()
	if !ok {
		return nil, diagnostics.UnexpectedEndOfFile("type annotation")
	}
	if tok.Type == token.LPAREN {
		return p.parseFunctionType()
	}
	if tok.Type == token.WORD {
		p.advance()
		return &ast.NamedType{Token: tok, Name: tok.Lexeme}, nil
	}
	return nil, diagnostics.UnexpectedToken("type", tok)
}

func (p *parser) parseFunctionType() (*ast.FunctionType, *diagnostics.Error) {
	open, err := p.expectType(token.LPAREN, "function type")
	if err != nil {
		return nil, err
	}

	inputs, err := p.parseTypeList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectWord(config.ArrowOp, "function type"); err != nil {
		return nil, err
	}
	outputs, err := p.parseTypeList()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expectType(token.RPAREN, "function type")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionType{Open: open, Close: closeTok, Inputs: inputs, Outputs: outputs}, nil
}

func (p *parser) parseTypeList() ([]ast.TypeAnnotation, *diagnostics.Error) {
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	list := []ast.TypeAnnotation{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.Type != token.COMMA {
			return list, nil
		}
		p.advance()
		next, err := p.parseType()
		if err != nil {
			return nil, err
		}
		list = append(list, next)
	}
}
