package bitexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// Grammar, matched against the input with all whitespace removed:
//
//	expression := operand operator operand
//	operand    := '~'? ('0' | '1')*
//	operator   := '&' | '|' | '->' | '='
//
// The whole input must be consumed.

type parser struct {
	src string
	pos int
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseExpression parses text into an Expression.
func ParseExpression(text string) (*Expression, error) {
	p := parser{src: stripSpaces(text)}
	if p.src == "" {
		return nil, ErrEmptyExpression
	}

	lhs := p.operand()
	op, err := p.operator()
	if err != nil {
		return nil, err
	}
	rhs := p.operand()
	if !p.eof() {
		return nil, p.unexpected("end of expression")
	}
	return &Expression{Lhs: lhs, Op: op, Rhs: rhs}, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) unexpected(want string) error {
	if p.eof() {
		return fmt.Errorf("%w: expected %s, found end of input", ErrSyntax, want)
	}
	return fmt.Errorf("%w: expected %s, found %q at offset %d", ErrSyntax, want, p.peek(), p.pos)
}

// operand never fails: an empty literal is valid and whatever follows is
// left to the caller.
func (p *parser) operand() Operand {
	var o Operand
	if !p.eof() && p.peek() == '~' {
		o.Negated = true
		p.pos++
	}
	start := p.pos
	for !p.eof() && (p.peek() == '0' || p.peek() == '1') {
		p.pos++
	}
	o.Literal = p.src[start:p.pos]
	return o
}

func (p *parser) operator() (Operator, error) {
	if p.eof() {
		return 0, p.unexpected("operator")
	}
	switch p.peek() {
	case '&':
		p.pos++
		return OP_AND, nil
	case '|':
		p.pos++
		return OP_OR, nil
	case '=':
		p.pos++
		return OP_EQUIV, nil
	case '-':
		p.pos++
		if p.eof() || p.peek() != '>' {
			return 0, p.unexpected("'>'")
		}
		p.pos++
		return OP_IMPLIES, nil
	}
	return 0, p.unexpected("operator")
}
