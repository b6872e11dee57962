package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"zero", "0", Integer(0)},
		{"positive int", "42", Integer(42)},
		{"negative int", "-17", Integer(-17)},
		{"leading zeros", "007", Integer(7)},
		{"max int64", "9223372036854775807", Integer(math.MaxInt64)},
		{"min int64", "-9223372036854775808", Integer(math.MinInt64)},
		{"float", "3.14", Float(3.14)},
		{"negative float", "-0.5", Float(-0.5)},
		{"float with zero fraction", "5.0", Float(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLiteral(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind(), got.Kind())
		})
	}
}

func TestParseLiteral_Errors(t *testing.T) {
	_, err := ParseLiteral("9223372036854775808")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseLiteral("abc")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = ParseLiteral("1.2.3")
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  string
	}{
		{"integer", Integer(5), "5"},
		{"negative integer", Integer(-120), "-120"},
		{"float whole", Float(5), "5.00"},
		{"float rounds", Float(3.14159), "3.14"},
		{"float rounds up", Float(2.675001), "2.68"},
		{"negative float", Float(-0.5), "-0.50"},
		{"infinity", Float(math.Inf(1)), "+Inf"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "unknown_kind_9", Kind(9).String())
}
