package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime type of a Value.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is a typed SNOL value. The only implementations are Integer and Float.
type Value interface {
	Kind() Kind
	isValue() // Ensures only the types in this package satisfy Value.
}

// Integer is a 64-bit signed integer value.
type Integer int64

func (Integer) Kind() Kind { return KindInteger }
func (Integer) isValue()   {}

// Float is a double-precision floating point value.
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) isValue()   {}

// ErrOutOfRange is returned by ParseLiteral for integer literals that do not fit in 64 bits.
var ErrOutOfRange = errors.New("integer literal out of range")

// ErrNotNumber is returned by ParseLiteral for text that is not a numeric literal.
var ErrNotNumber = errors.New("not a numeric literal")

// ParseLiteral converts a numeric literal into an Integer or a Float.
// A literal containing a dot is a float, anything else an integer.
// Callers are expected to have validated the literal syntax already (see lexer.IsNumber);
// ParseLiteral only guards against what strconv rejects.
func ParseLiteral(lit string) (Value, error) {
	if strings.Contains(lit, ".") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotNumber, lit)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, lit)
		}
		return nil, fmt.Errorf("%w: %q", ErrNotNumber, lit)
	}
	return Integer(n), nil
}

// Format renders v the way PRINT shows it: integers as plain decimals,
// floats with exactly two digits after the decimal point.
func Format(v Value) string {
	switch x := v.(type) {
	case Integer:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return strconv.FormatFloat(float64(x), 'f', 2, 64)
	default:
		return "<nil>"
	}
}
