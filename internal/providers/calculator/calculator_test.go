package calculator

import (
	"errors"
	gomath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

var fixedTime = time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestCalculator(opts ...Option) *Calculator {
	opts = append([]Option{WithClock(func() time.Time { return fixedTime })}, opts...)
	return New(opts...)
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultPrecision, c.Precision())

	c = New(WithPrecision(0))
	assert.Equal(t, 0, c.Precision())
}

func TestCalculate(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name       string
		op         string
		operands   []float64
		want       float64
		expression string
	}{
		{"add", "add", []float64{1, 2, 3}, 6, "1 + 2 + 3 = 6"},
		{"add decimals", "add", []float64{0.1, 0.2}, 0.3, "0.1 + 0.2 = 0.3"},
		{"add empty", "add", nil, 0, " = 0"},
		{"subtract", "subtract", []float64{5, 7.5}, -2.5, "5 - 7.5 = -2.5"},
		{"multiply", "multiply", []float64{2, 3, 4}, 24, "2 × 3 × 4 = 24"},
		{"multiply empty", "multiply", nil, 1, " = 1"},
		{"divide", "divide", []float64{10, 4}, 2.5, "10 ÷ 4 = 2.5"},
		{"divide rounds", "divide", []float64{10, 3}, 3.33, "10 ÷ 3 = 3.33"},
		{"power", "power", []float64{2, 10}, 1024, "2^10 = 1024"},
		{"power fractional", "power", []float64{9, 0.5}, 3, "9^0.5 = 3"},
		{"sqrt", "sqrt", []float64{16}, 4, "√16 = 4"},
		{"sqrt zero", "sqrt", []float64{0}, 0, "√0 = 0"},
		{"sqrt irrational", "sqrt", []float64{2}, 1.41, "√2 = 1.41"},
		{"percentage", "percentage", []float64{25, 200}, 12.5, "25 is 12.5% of 200"},
		{"average", "average", []float64{1, 2, 3}, 2, "Average of [1, 2, 3] = 2"},
		{"average single", "average", []float64{7.25}, 7.25, "Average of [7.25] = 7.25"},
		{"average rounds once", "average", []float64{1, 2, 2}, 1.67, "Average of [1, 2, 2] = 1.67"},
		{"case insensitive", "ADD", []float64{1, 1}, 2, "1 + 1 = 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Calculate(tt.op, tt.operands...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Result)
			assert.Equal(t, tt.expression, res.Expression)
			assert.Equal(t, tt.op, res.Operation)
			assert.Equal(t, fixedTime, res.Timestamp)
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		op       string
		operands []float64
		want     *evalerr.Error
		message  string
	}{
		{"divide by zero", "divide", []float64{1, 0}, evalerr.ErrDivisionByZero, "Division by zero is not allowed"},
		{"divide zero by zero", "divide", []float64{0, 0}, evalerr.ErrDivisionByZero, "Division by zero is not allowed"},
		{"percentage of zero", "percentage", []float64{5, 0}, evalerr.ErrDivisionByZero, "Total cannot be zero for percentage calculation"},
		{"negative sqrt", "sqrt", []float64{-4}, evalerr.ErrNegativeDomain, "Square root of negative number is not allowed"},
		{"empty average", "average", nil, evalerr.ErrEmptyInput, "Cannot calculate average of empty array"},
		{"subtract arity", "subtract", []float64{1}, evalerr.ErrInvalidArgument, "subtract requires exactly 2 operands, got 1"},
		{"divide arity", "divide", []float64{1, 2, 3}, evalerr.ErrInvalidArgument, "divide requires exactly 2 operands, got 3"},
		{"sqrt arity", "sqrt", nil, evalerr.ErrInvalidArgument, "sqrt requires exactly 1 operand, got 0"},
		{"nan operand", "add", []float64{1, gomath.NaN()}, evalerr.ErrInvalidArgument, "Operand 2 is not a finite number"},
		{"inf operand", "multiply", []float64{gomath.Inf(1)}, evalerr.ErrInvalidArgument, "Operand 1 is not a finite number"},
		{"unknown", "modulo", []float64{1, 2}, evalerr.ErrInvalidOperation, "Unknown operation: modulo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Calculate(tt.op, tt.operands...)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestUnknownOperationsAlwaysRejected(t *testing.T) {
	calc := newTestCalculator()

	for _, op := range []string{"", " add", "add ", "sum", "mod", "sqrt2", "√", "divide!", "titleCase"} {
		_, err := calc.Calculate(op, 1, 2)
		assert.True(t, errors.Is(err, evalerr.ErrInvalidOperation), "operation %q", op)
	}
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	calc := newTestCalculator()

	sets := [][]float64{
		{0.1, 0.2, 0.3},
		{1.25, -3.5, 100, 0.004},
		{-1, -2, -3, 4.75},
	}

	for _, set := range sets {
		forward := calc.Add(set...)

		reversed := make([]float64, len(set))
		for i, v := range set {
			reversed[len(set)-1-i] = v
		}
		assert.Equal(t, forward, calc.Add(reversed...))

		grouped := calc.Add(set[0], calc.Add(set[1:]...))
		assert.InDelta(t, forward, grouped, 0.01)
	}
}

func TestSumsLeftToRight(t *testing.T) {
	calc := newTestCalculator()

	// 1e16 + 1 is absorbed before -1e16 cancels it.
	res, err := calc.Calculate("add", 1e16, 1, -1e16, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Result)

	res, err = calc.Calculate("average", 1e16, 1, -1e16, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, res.Result)
}

func TestRoundingPolicy(t *testing.T) {
	calc := newTestCalculator()

	// 1.005 * 100 is 100.49999999999999 in binary64, so it rounds down.
	res, err := calc.Calculate("add", 1.005, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Result)

	res, err = calc.Calculate("add", 1.125, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.13, res.Result)

	// Precision 0 rounds half away from zero.
	whole := newTestCalculator(WithPrecision(0))
	assert.Equal(t, 3.0, whole.Add(2.5))
	assert.Equal(t, -3.0, whole.Add(-2.5))

	// Negative precision rounds to tens.
	tens := newTestCalculator(WithPrecision(-1))
	assert.Equal(t, 130.0, tens.Add(125))
}

func TestAverageOfSingleIsIdentity(t *testing.T) {
	calc := newTestCalculator()

	for _, x := range []float64{0, 1, -7.5, 123.45, 1e6} {
		got, err := calc.Average(x)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x         float64
		precision int
		want      float64
	}{
		{3.14159, 2, 3.14},
		{3.145, 2, 3.15},
		{-3.145, 2, -3.15},
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{1234.5678, 3, 1234.568},
		{1234.5678, -2, 1200},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.x, tt.precision), "Round(%v, %d)", tt.x, tt.precision)
	}

	assert.True(t, gomath.IsNaN(Round(gomath.NaN(), 2)))
	assert.True(t, gomath.IsInf(Round(gomath.Inf(1), 2), 1))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{gomath.Copysign(0, -1), "0"},
		{2, "2"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{123456789, "123456789"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-8, "1.5e-8"},
		{1e21, "1e+21"},
		{gomath.Inf(1), "Infinity"},
		{gomath.Inf(-1), "-Infinity"},
		{gomath.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.x))
	}
}

func TestOperations(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 8)
	assert.Equal(t, OpAdd, ops[0])
	assert.Equal(t, OpAverage, ops[7])

	ops[0] = "mutated"
	assert.Equal(t, OpAdd, Operations()[0])
}
