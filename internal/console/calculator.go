package console

import (
	"errors"

	"github.com/robalobadob/numguess/internal/calc"
)

// RunCalculator reads two operands and an operator and prints one result.
// Invalid input is reported on the output, never returned.
func (c *Console) RunCalculator() error {
	a, err := c.readOperand("Enter first number: ")
	if err != nil {
		return c.calcInputError(err)
	}
	b, err := c.readOperand("Enter second number: ")
	if err != nil {
		return c.calcInputError(err)
	}
	op, err := c.readLine("Enter operation (+, -, *, /): ")
	if err != nil {
		return c.calcInputError(err)
	}

	res, err := calc.Evaluate(a, b, op)
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		c.println("Error: Cannot divide by zero!")
	case errors.Is(err, calc.ErrUnknownOperator):
		c.println("Error: Invalid operation!")
	case err != nil:
		return err
	default:
		c.println(calc.Format(a, b, op, res))
	}
	return nil
}

var errBadOperand = errors.New("bad operand")

func (c *Console) readOperand(prompt string) (float64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := calc.ParseOperand(line)
	if err != nil {
		c.recorder.IncInvalidInput("parse")
		return 0, errBadOperand
	}
	return v, nil
}

func (c *Console) calcInputError(err error) error {
	switch {
	case errors.Is(err, errBadOperand):
		c.println("Error: Please enter valid numbers!")
		return nil
	case isEOF(err):
		c.println()
		return nil
	default:
		return err
	}
}
