package interpreter

import (
	"fmt"

	"github.com/podhmo/snol/internal/lexer"
	"github.com/podhmo/snol/internal/utils/stringutils"
	"github.com/podhmo/snol/internal/value"
)

// Resolve turns an operand token into a value: numeric literals are parsed,
// anything else is looked up as a variable.
func (s *Session) Resolve(tok string) (value.Value, error) {
	if lexer.IsNumber(tok) {
		v, err := value.ParseLiteral(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidNumberFormat, err)
		}
		return v, nil
	}
	if v, ok := s.store.Get(tok); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefinedReference, stringutils.Bracket(tok))
}

// Evaluate applies op to the resolved left and right operands.
// Both operands must have the same type; the result has that type too.
func (s *Session) Evaluate(left, op, right string) (value.Value, error) {
	lv, err := s.Resolve(left)
	if err != nil {
		return nil, err
	}
	rv, err := s.Resolve(right)
	if err != nil {
		return nil, err
	}
	if lv.Kind() != rv.Kind() {
		return nil, fmt.Errorf("%w: %s is %s, %s is %s", ErrTypeMismatch,
			stringutils.Bracket(left), lv.Kind(), stringutils.Bracket(right), rv.Kind())
	}
	if !lexer.IsOperator(op) {
		return nil, fmt.Errorf("%w: %s is not an arithmetic operator", ErrInvalidOperator, stringutils.Bracket(op))
	}

	switch l := lv.(type) {
	case value.Integer:
		return evalInteger(l, op, rv.(value.Integer))
	case value.Float:
		return evalFloat(l, op, rv.(value.Float))
	default:
		return nil, fmt.Errorf("%w: unsupported operand %T", ErrInvalidOperator, lv)
	}
}

// evalInteger uses Go's truncating division. Dividing the minimum int64 by -1
// wraps around instead of trapping.
func evalInteger(l value.Integer, op string, r value.Integer) (value.Value, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return nil, fmt.Errorf("%w: %d / %d", ErrDivisionByZero, l, r)
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return nil, fmt.Errorf("%w: %d %% %d", ErrDivisionByZero, l, r)
		}
		return l % r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidOperator, stringutils.Bracket(op))
}

// evalFloat follows IEEE 754; division by zero yields an infinity or NaN.
func evalFloat(l value.Float, op string, r value.Float) (value.Value, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		return l / r, nil
	case "%":
		return nil, fmt.Errorf("%w: %s is only allowed on integer operands", ErrInvalidOperator, stringutils.Bracket(op))
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidOperator, stringutils.Bracket(op))
}
