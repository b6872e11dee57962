package interpreter

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhmo/snol/internal/config"
	"github.com/podhmo/snol/internal/value"
)

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return New(config.Default().Quiet(), NewLineReader(strings.NewReader(input)), &out), &out
}

func TestResolve(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.Store().Upsert("count", value.Integer(3))
	s.Store().Upsert("ratio", value.Float(0.5))

	tests := []struct {
		name  string
		token string
		want  value.Value
	}{
		{"int literal", "12", value.Integer(12)},
		{"negative float literal", "-1.25", value.Float(-1.25)},
		{"integer variable", "count", value.Integer(3)},
		{"float variable", "ratio", value.Float(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("undefined", func(t *testing.T) {
		_, err := s.Resolve("missing")
		assert.ErrorIs(t, err, ErrUndefinedReference)
		assert.EqualError(t, err, "undefined variable or invalid literal: [missing]")
	})
	t.Run("case sensitive", func(t *testing.T) {
		_, err := s.Resolve("Count")
		assert.ErrorIs(t, err, ErrUndefinedReference)
	})
	t.Run("malformed literal", func(t *testing.T) {
		_, err := s.Resolve("1.2.3")
		assert.ErrorIs(t, err, ErrUndefinedReference)
	})
	t.Run("integer out of range", func(t *testing.T) {
		_, err := s.Resolve("99999999999999999999")
		assert.ErrorIs(t, err, ErrInvalidNumberFormat)
		assert.ErrorIs(t, err, value.ErrOutOfRange)
	})
}

func TestEvaluate_Integers(t *testing.T) {
	s, _ := newTestSession(t, "")
	operands := []int64{-9, -2, -1, 0, 1, 3, 7, 100}

	for _, a := range operands {
		for _, b := range operands {
			left, right := strconv.FormatInt(a, 10), strconv.FormatInt(b, 10)
			want := map[string]int64{"+": a + b, "-": a - b, "*": a * b}
			if b != 0 {
				want["/"] = a / b
				want["%"] = a % b
			}
			for op, expected := range want {
				got, err := s.Evaluate(left, op, right)
				require.NoError(t, err, "%s %s %s", left, op, right)
				assert.Equal(t, value.Integer(expected), got, "%s %s %s", left, op, right)
			}
		}
	}
}

func TestEvaluate_TruncatingDivision(t *testing.T) {
	s, _ := newTestSession(t, "")
	tests := []struct {
		left, op, right string
		want            value.Integer
	}{
		{"10", "/", "3", 3},
		{"-10", "/", "3", -3},
		{"10", "/", "-3", -3},
		{"-10", "%", "3", -1},
		{"10", "%", "-3", 1},
	}
	for _, tt := range tests {
		got, err := s.Evaluate(tt.left, tt.op, tt.right)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s %s", tt.left, tt.op, tt.right)
	}
}

func TestEvaluate_Floats(t *testing.T) {
	s, _ := newTestSession(t, "")
	operands := []float64{-2.5, -1.0, 0.0, 0.25, 3.0, 10.75}

	for _, a := range operands {
		for _, b := range operands {
			left, right := strconv.FormatFloat(a, 'f', -1, 64), strconv.FormatFloat(b, 'f', -1, 64)
			if !strings.Contains(left, ".") {
				left += ".0"
			}
			if !strings.Contains(right, ".") {
				right += ".0"
			}
			want := map[string]float64{"+": a + b, "-": a - b, "*": a * b, "/": a / b}
			for op, expected := range want {
				got, err := s.Evaluate(left, op, right)
				require.NoError(t, err, "%s %s %s", left, op, right)
				f, ok := got.(value.Float)
				require.True(t, ok, "result of %s %s %s is %T", left, op, right, got)
				if math.IsNaN(expected) {
					assert.True(t, math.IsNaN(float64(f)), "%s %s %s", left, op, right)
					continue
				}
				assert.Equal(t, expected, float64(f), "%s %s %s", left, op, right)
			}

			_, err := s.Evaluate(left, "%", right)
			assert.ErrorIs(t, err, ErrInvalidOperator, "%s %% %s", left, right)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.Store().Upsert("i", value.Integer(4))
	s.Store().Upsert("f", value.Float(4))

	tests := []struct {
		name            string
		left, op, right string
		wantErr         error
	}{
		{"mixed literals", "1", "+", "2.5", ErrTypeMismatch},
		{"mixed variables", "i", "*", "f", ErrTypeMismatch},
		{"integer division by zero", "i", "/", "0", ErrDivisionByZero},
		{"integer remainder by zero", "7", "%", "0", ErrDivisionByZero},
		{"float remainder", "f", "%", "2.0", ErrInvalidOperator},
		{"unknown operator", "1", "^", "2", ErrInvalidOperator},
		{"assignment sign as operator", "1", "=", "2", ErrInvalidOperator},
		{"undefined left", "nope", "+", "1", ErrUndefinedReference},
		{"undefined right", "1", "+", "nope", ErrUndefinedReference},
		{"mismatch wins over operator", "1", "^", "2.0", ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Evaluate(tt.left, tt.op, tt.right)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestEvaluate_FloatDivisionByZero(t *testing.T) {
	s, _ := newTestSession(t, "")

	got, err := s.Evaluate("1.0", "/", "0.0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got.(value.Float)), 1))

	got, err = s.Evaluate("0.0", "/", "0.0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got.(value.Float))))
}

func TestEvaluate_IntegerOverflowWraps(t *testing.T) {
	s, _ := newTestSession(t, "")

	got, err := s.Evaluate("9223372036854775807", "+", "1")
	require.NoError(t, err)
	assert.Equal(t, value.Integer(math.MinInt64), got)

	got, err = s.Evaluate("-9223372036854775808", "/", "-1")
	require.NoError(t, err)
	assert.Equal(t, value.Integer(math.MinInt64), got)
}
