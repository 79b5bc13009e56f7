package bitexpr_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borzacchiello/bitexpr"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100101 & 111001", "100001"},
		{"~100101 & ~111001", "000010"},
		{" 1011   |   1101   ", "1111"},
		{"10101 -> 01100", "01110"},
		{"10101 = 01100", "00110"},
		{"1100 = 1010", "1001"},
		// left negation is applied before the implication: ~a -> b is a | b
		{"~1010 -> 0110", "1110"},
		{"1010 -> ~0110", "1101"},
		{"0 -> 0", "1"},
		{"&", ""},
		{"~ = ~", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res, ok := bitexpr.Evaluate(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.String())
		})
	}
}

func TestEvaluateNoResult(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"10 = 101",
		"1 & 1 & 0",
		"101011",
		"1 &",
		"~ | 1",
		"1 & 2",
		"1 => 1",
	} {
		res, ok := bitexpr.Evaluate(in)
		assert.False(t, ok, "%q", in)
		assert.Nil(t, res, "%q", in)
	}
}

func TestEvaluateValue(t *testing.T) {
	ev := bitexpr.NewEvaluator()

	res, ok := ev.EvaluateValue("11 & 01")
	require.True(t, ok)
	assert.Equal(t, "01", res.String())

	for _, v := range []any{nil, 42, []byte("1 & 1"), bitexpr.MustParse("1")} {
		res, ok := ev.EvaluateValue(v)
		assert.False(t, ok, "%#v", v)
		assert.Nil(t, res)
	}
}

func TestApplyReportsErrors(t *testing.T) {
	ev := bitexpr.NewEvaluator()

	expr, err := bitexpr.ParseExpression("10 = 101")
	require.NoError(t, err)
	_, err = ev.Apply(expr)
	assert.ErrorIs(t, err, bitexpr.ErrLengthMismatch)

	bad := &bitexpr.Expression{
		Lhs: bitexpr.Operand{Literal: "1x"},
		Op:  bitexpr.OP_AND,
		Rhs: bitexpr.Operand{Literal: "10"},
	}
	_, err = ev.Apply(bad)
	assert.ErrorIs(t, err, bitexpr.ErrInvalidCharacter)

	_, ok := ev.Evaluate(bad.String())
	assert.False(t, ok)

	unknown := &bitexpr.Expression{Lhs: bitexpr.Operand{Literal: "1"}, Op: bitexpr.Operator(0), Rhs: bitexpr.Operand{Literal: "1"}}
	_, err = ev.Apply(unknown)
	assert.ErrorIs(t, err, bitexpr.ErrUnknownOperator)
}

func TestEvaluatorLogsNoResult(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := bitexpr.NewEvaluator(bitexpr.WithLogger(logger))

	_, ok := ev.Evaluate("10 = 101")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "expression not evaluable")
	assert.Contains(t, buf.String(), "length mismatch")

	buf.Reset()
	_, ok = ev.Evaluate("1 & 1 & 0")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "expression rejected")

	buf.Reset()
	_, ok = ev.Evaluate("1 & 1")
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "backend=native")
}

type failingBackend struct{}

func (failingBackend) Name() string { return "failing" }

func (failingBackend) Apply(bitexpr.Operator, *bitexpr.BitVector, *bitexpr.BitVector) (*bitexpr.BitVector, error) {
	return nil, errors.New("backend down")
}

func TestEvaluatorBackendFailureIsNoResult(t *testing.T) {
	ev := bitexpr.NewEvaluator(bitexpr.WithBackend(failingBackend{}))

	res, ok := ev.Evaluate("1 & 1")
	assert.False(t, ok)
	assert.Nil(t, res)
}

type emptyBackend struct{}

func (emptyBackend) Name() string { return "empty" }

func (emptyBackend) Apply(bitexpr.Operator, *bitexpr.BitVector, *bitexpr.BitVector) (*bitexpr.BitVector, error) {
	return nil, nil
}

func TestEvaluatorBackendWithoutVectorIsNoResult(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := bitexpr.NewEvaluator(bitexpr.WithLogger(logger), bitexpr.WithBackend(emptyBackend{}))

	res, ok := ev.Evaluate("1 & 1")
	assert.False(t, ok)
	assert.Nil(t, res)
	assert.Contains(t, buf.String(), "returned no vector")

	expr, err := bitexpr.ParseExpression("1 & 1")
	require.NoError(t, err)
	_, err = ev.Apply(expr)
	assert.Error(t, err)
}

func TestEvaluatorNilOptions(t *testing.T) {
	ev := bitexpr.NewEvaluator(bitexpr.WithLogger(nil), bitexpr.WithBackend(nil))

	res, ok := ev.Evaluate("1 | 0")
	require.True(t, ok)
	assert.Equal(t, "1", res.String())
}
