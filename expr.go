package bitexpr

import (
	"fmt"
	"strings"
)

type Operator int

const (
	OP_AND     Operator = 1
	OP_OR      Operator = 2
	OP_IMPLIES Operator = 3
	OP_EQUIV   Operator = 4
)

var operatorSymbols = map[Operator]string{
	OP_AND:     "&",
	OP_OR:      "|",
	OP_IMPLIES: "->",
	OP_EQUIV:   "=",
}

func ParseOperator(symbol string) (Operator, error) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOperator, symbol)
}

func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

func (op Operator) String() string {
	switch op {
	case OP_AND:
		return "and"
	case OP_OR:
		return "or"
	case OP_IMPLIES:
		return "implies"
	case OP_EQUIV:
		return "equivalence"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Apply combines lhs and rhs with the vector operation op stands for.
func (op Operator) Apply(lhs, rhs *BitVector) (*BitVector, error) {
	switch op {
	case OP_AND:
		return lhs.And(rhs)
	case OP_OR:
		return lhs.Or(rhs)
	case OP_IMPLIES:
		return lhs.Implies(rhs)
	case OP_EQUIV:
		return lhs.Equivalence(rhs)
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownOperator, int(op))
}

// Operand is one side of an expression: a bit literal, optionally negated.
type Operand struct {
	Negated bool
	Literal string
}

func (o Operand) String() string {
	if o.Negated {
		return "~" + o.Literal
	}
	return o.Literal
}

// Vector builds the operand value, negation applied.
func (o Operand) Vector() (*BitVector, error) {
	bv, err := Parse(o.Literal)
	if err != nil {
		return nil, err
	}
	if o.Negated {
		return bv.Not(), nil
	}
	return bv, nil
}

// Expression is a parsed `[~]operand op [~]operand` line.
type Expression struct {
	Lhs Operand
	Op  Operator
	Rhs Operand
}

func (e *Expression) String() string {
	b := strings.Builder{}
	b.WriteString(e.Lhs.String())
	b.WriteString(fmt.Sprintf(" %s ", e.Op.Symbol()))
	b.WriteString(e.Rhs.String())
	return b.String()
}
