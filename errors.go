package bitexpr

import "errors"

// Construction errors.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidElement   = errors.New("invalid element")
	ErrUnsupportedType  = errors.New("unsupported type")
)

// Operation errors. ErrUnsupportedOperand reports a missing (nil) operand,
// ErrLengthMismatch two vectors of different sizes.
var (
	ErrUnsupportedOperand = errors.New("unsupported operand")
	ErrLengthMismatch     = errors.New("length mismatch")
)

// Expression errors.
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownBackend  = errors.New("unknown backend")
)
