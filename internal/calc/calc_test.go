package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		a, b float64
		op   string
		want float64
	}{
		{2, 3, "+", 5},
		{2, 3, "-", -1},
		{2, 3, "*", 6},
		{3, 2, "/", 1.5},
		{0, 5, "/", 0},
		{-4, 2, " * ", -8},
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.a, tc.b, tc.op)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v %s %v", tc.a, tc.op, tc.b)
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate(1, 0, "/")
	require.ErrorIs(t, err, ErrDivideByZero)

	for _, op := range []string{"%", "^", "", "plus"} {
		_, err := Evaluate(1, 2, op)
		require.ErrorIs(t, err, ErrUnknownOperator, op)
	}
}

func TestParseAndFormat(t *testing.T) {
	a, err := ParseOperand(" 7.5 ")
	require.NoError(t, err)
	assert.Equal(t, 7.5, a)

	_, err = ParseOperand("seven")
	require.Error(t, err)

	assert.Equal(t, "7.5 / 2 = 3.75", Format(7.5, 2, "/", 3.75))
}
