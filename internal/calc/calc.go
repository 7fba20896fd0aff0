// Package calc is a four-operation calculator.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDivideByZero    = errors.New("cannot divide by zero")
	ErrUnknownOperator = errors.New("invalid operation")
)

// Evaluate applies op (+, -, *, /) to a and b.
func Evaluate(a, b float64, op string) (float64, error) {
	switch strings.TrimSpace(op) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// ParseOperand parses a user-entered number.
func ParseOperand(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Format renders "a op b = result" with the shortest exact float forms.
func Format(a, b float64, op string, result float64) string {
	return fmt.Sprintf("%s %s %s = %s", fmtNum(a), strings.TrimSpace(op), fmtNum(b), fmtNum(result))
}

func fmtNum(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
