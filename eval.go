package bitexpr

import (
	"fmt"
	"io"
	"log/slog"
)

// Evaluator turns expression text into a BitVector. It keeps no state
// between calls and is safe for concurrent use.
type Evaluator struct {
	logger  *slog.Logger
	backend Backend
}

type Option func(*Evaluator)

func WithLogger(logger *slog.Logger) Option {
	return func(ev *Evaluator) {
		if logger != nil {
			ev.logger = logger
		}
	}
}

func WithBackend(b Backend) Option {
	return func(ev *Evaluator) {
		if b != nil {
			ev.backend = b
		}
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		backend: NativeBackend{},
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

var defaultEvaluator = NewEvaluator()

// Evaluate evaluates text with the native backend and no logging.
func Evaluate(text string) (*BitVector, bool) {
	return defaultEvaluator.Evaluate(text)
}

// Evaluate parses and evaluates text. The second result is false when the
// expression cannot be evaluated: malformed text, invalid literals or
// operands of different lengths.
func (ev *Evaluator) Evaluate(text string) (*BitVector, bool) {
	expr, err := ParseExpression(text)
	if err != nil {
		ev.logger.Debug("expression rejected", slog.String("input", text), slog.String("reason", err.Error()))
		return nil, false
	}

	res, err := ev.Apply(expr)
	if err != nil {
		ev.logger.Debug("expression not evaluable",
			slog.String("expression", expr.String()),
			slog.String("reason", err.Error()))
		return nil, false
	}

	ev.logger.Debug("expression evaluated",
		slog.String("expression", expr.String()),
		slog.String("backend", ev.backend.Name()),
		slog.String("result", res.String()))
	return res, true
}

// EvaluateValue is Evaluate for dynamically typed input; anything other
// than a string has no result.
func (ev *Evaluator) EvaluateValue(v any) (*BitVector, bool) {
	text, ok := v.(string)
	if !ok {
		ev.logger.Debug("expression rejected", slog.String("type", fmt.Sprintf("%T", v)))
		return nil, false
	}
	return ev.Evaluate(text)
}

// Apply evaluates a parsed expression, reporting why it failed.
func (ev *Evaluator) Apply(expr *Expression) (*BitVector, error) {
	lhs, err := expr.Lhs.Vector()
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	rhs, err := expr.Rhs.Vector()
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	if lhs.Len() != rhs.Len() {
		return nil, fmt.Errorf("%w: different sizes %d and %d", ErrLengthMismatch, lhs.Len(), rhs.Len())
	}
	res, err := ev.backend.Apply(expr.Op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("backend %s returned no vector for %s", ev.backend.Name(), expr)
	}
	return res, nil
}
