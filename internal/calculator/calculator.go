package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// Operator selects which arithmetic operation to perform.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

var (
	ErrDivideByZero    = errors.New("cannot divide by zero")
	ErrInvalidOperator = errors.New("invalid operator")
)

// Operators lists the supported symbols in prompt order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOperand parses operand text as a float64. Surrounding whitespace is
// accepted; anything else that is not a number is an error.
func ParseOperand(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// ParseOperator matches operator text against the four known symbols.
// Matching is exact: padded or multi-character input is invalid.
func ParseOperator(text string) (Operator, error) {
	switch Operator(text) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return Operator(text), nil
	}
	return "", ErrInvalidOperator
}

// Compute applies op to the two operands. Division by exactly zero returns
// ErrDivideByZero; an unknown operator returns ErrInvalidOperator.
func Compute(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, ErrInvalidOperator
}

// FormatResult renders a result value as text. A negative precision keeps the
// default shortest representation; otherwise the value is fixed-point with
// that many decimal places.
func FormatResult(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
