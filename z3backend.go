//go:build z3

package bitexpr

import (
	"fmt"
	"sync"

	"github.com/aclements/go-z3/z3"
)

func init() {
	RegisterBackend("z3", func() (Backend, error) {
		return NewZ3Backend(), nil
	})
}

// Z3Backend computes operator results by asserting `r == lhs op rhs` over
// Z3 bit-vector terms and reading r back from the model.
type Z3Backend struct {
	lock   sync.Mutex
	ctx    *z3.Context
	cfg    *z3.Config
	solver *z3.Solver
}

func NewZ3Backend() *Z3Backend {
	cfg := z3.NewContextConfig()
	ctx := z3.NewContext(cfg)
	return &Z3Backend{
		ctx:    ctx,
		cfg:    cfg,
		solver: z3.NewSolver(ctx),
	}
}

func (s *Z3Backend) Name() string {
	return "z3"
}

func (s *Z3Backend) Apply(op Operator, lhs, rhs *BitVector) (*BitVector, error) {
	if lhs == nil || rhs == nil {
		return nil, fmt.Errorf("%w: %s requires two bit vectors", ErrUnsupportedOperand, op)
	}
	if lhs.size != rhs.size {
		return nil, fmt.Errorf("%w: different sizes %d and %d", ErrLengthMismatch, lhs.size, rhs.size)
	}
	// Z3 has no zero-width sort
	if lhs.size == 0 {
		return New(nil)
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.solver.Reset()

	l := s.convert(lhs)
	r := s.convert(rhs)

	var term z3.BV
	switch op {
	case OP_AND:
		term = l.And(r)
	case OP_OR:
		term = l.Or(r)
	case OP_IMPLIES:
		term = l.Not().Or(r)
	case OP_EQUIV:
		term = l.Xor(r).Not()
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownOperator, int(op))
	}

	res := s.ctx.BVConst(fmt.Sprintf("r%d", lhs.size), int(lhs.size))
	s.solver.Assert(res.Eq(term))

	sat, err := s.solver.Check()
	if err != nil {
		return nil, fmt.Errorf("z3: %w", err)
	}
	if !sat {
		return nil, fmt.Errorf("z3: result constraint is unsatisfiable")
	}

	m := s.solver.Model()
	if m == nil {
		return nil, fmt.Errorf("z3: no model")
	}
	v, ok := m.Eval(res, true).(z3.BV).AsBigUnsigned()
	if !ok {
		return nil, fmt.Errorf("z3: result is not a constant")
	}
	return fromValue(v, lhs.size), nil
}

func (s *Z3Backend) convert(bv *BitVector) z3.BV {
	return s.ctx.FromBigInt(bv.bits(), s.ctx.BVSort(int(bv.size))).(z3.BV)
}
