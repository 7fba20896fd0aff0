package game

import (
	"errors"
	"fmt"
)

// ErrRoundOver is returned when a guess is applied to a finished round.
var ErrRoundOver = errors.New("round finished")

// ParseError reports input that is not an integer where one was expected.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a valid number: %q", e.Input)
}

// RangeError reports a number outside the bounds valid for the current prompt.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d is outside %d-%d", e.Value, e.Min, e.Max)
}

// IsInputError reports whether err is a recoverable ParseError or RangeError.
func IsInputError(err error) bool {
	var pe *ParseError
	var re *RangeError
	return errors.As(err, &pe) || errors.As(err, &re)
}
