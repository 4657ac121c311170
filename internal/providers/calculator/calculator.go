package calculator

import (
	gomath "math"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

// DefaultPrecision is the number of decimal digits kept when no precision is
// configured.
const DefaultPrecision = 2

// Operation names a calculator operation
type Operation string

const (
	OpAdd        Operation = "add"
	OpSubtract   Operation = "subtract"
	OpMultiply   Operation = "multiply"
	OpDivide     Operation = "divide"
	OpPower      Operation = "power"
	OpSqrt       Operation = "sqrt"
	OpPercentage Operation = "percentage"
	OpAverage    Operation = "average"
)

var operations = []Operation{
	OpAdd,
	OpSubtract,
	OpMultiply,
	OpDivide,
	OpPower,
	OpSqrt,
	OpPercentage,
	OpAverage,
}

// Operations returns the supported operations in declaration order
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// CalculationResult is the outcome of a single calculation
type CalculationResult struct {
	Result     float64   `json:"result"`
	Operation  string    `json:"operation"`
	Expression string    `json:"expression"`
	Timestamp  time.Time `json:"timestamp"`
}

// Calculator evaluates arithmetic operations and rounds every result to a
// fixed precision. It holds no state beyond its configuration and is safe
// for concurrent use.
type Calculator struct {
	precision int
	now       func() time.Time
}

// Option configures a Calculator
type Option func(*Calculator)

// WithPrecision sets the number of decimal digits kept after rounding.
func WithPrecision(precision int) Option {
	return func(c *Calculator) {
		c.precision = precision
	}
}

// WithClock replaces the clock used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a calculator
func New(opts ...Option) *Calculator {
	c := &Calculator{
		precision: DefaultPrecision,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Precision returns the configured rounding precision
func (c *Calculator) Precision() int {
	return c.precision
}

// Calculate runs the named operation over operands. The name is matched
// case-insensitively; the result echoes it as given.
func (c *Calculator) Calculate(operation string, operands ...float64) (*CalculationResult, error) {
	op := Operation(strings.ToLower(operation))
	if !isKnown(op) {
		return nil, evalerr.UnknownOperation(operation)
	}

	for i, x := range operands {
		if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
			return nil, evalerr.New(evalerr.CodeInvalidArgument, operation,
				"Operand %d is not a finite number", i+1)
		}
	}

	result, err := c.evaluate(op, operation, operands)
	if err != nil {
		return nil, err
	}

	return &CalculationResult{
		Result:     result,
		Operation:  operation,
		Expression: expression(op, operands, result),
		Timestamp:  c.now(),
	}, nil
}

func (c *Calculator) evaluate(op Operation, name string, operands []float64) (float64, error) {
	switch op {
	case OpAdd:
		return c.Add(operands...), nil
	case OpMultiply:
		return c.Multiply(operands...), nil
	case OpAverage:
		return c.Average(operands...)
	case OpSqrt:
		if err := requireArity(name, operands, 1); err != nil {
			return 0, err
		}
		return c.Sqrt(operands[0])
	}

	if err := requireArity(name, operands, 2); err != nil {
		return 0, err
	}
	a, b := operands[0], operands[1]

	switch op {
	case OpSubtract:
		return c.Subtract(a, b), nil
	case OpDivide:
		return c.Divide(a, b)
	case OpPower:
		return c.Power(a, b), nil
	case OpPercentage:
		return c.Percentage(a, b)
	default:
		return 0, evalerr.UnknownOperation(name)
	}
}

// Add returns the rounded sum of numbers; 0 when empty
func (c *Calculator) Add(numbers ...float64) float64 {
	return c.round(sum(numbers))
}

// Subtract returns the rounded difference a - b
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.round(a - b)
}

// Multiply returns the rounded product of numbers; 1 when empty
func (c *Calculator) Multiply(numbers ...float64) float64 {
	return c.round(floats.Prod(numbers))
}

// Divide returns the rounded quotient a / b
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, evalerr.New(evalerr.CodeDivisionByZero, string(OpDivide),
			"Division by zero is not allowed")
	}
	return c.round(a / b), nil
}

// Power returns the rounded value of base^exponent
func (c *Calculator) Power(base, exponent float64) float64 {
	return c.round(gomath.Pow(base, exponent))
}

// Sqrt returns the rounded square root of x
func (c *Calculator) Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, evalerr.New(evalerr.CodeNegativeDomain, string(OpSqrt),
			"Square root of negative number is not allowed")
	}
	return c.round(gomath.Sqrt(x)), nil
}

// Percentage returns value as a rounded percentage of total
func (c *Calculator) Percentage(value, total float64) (float64, error) {
	if total == 0 {
		return 0, evalerr.New(evalerr.CodeDivisionByZero, string(OpPercentage),
			"Total cannot be zero for percentage calculation")
	}
	return c.round(value / total * 100), nil
}

// Average returns the rounded arithmetic mean of numbers
func (c *Calculator) Average(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, evalerr.New(evalerr.CodeEmptyInput, string(OpAverage),
			"Cannot calculate average of empty array")
	}
	return c.round(sum(numbers) / float64(len(numbers))), nil
}

// sum adds left to right so results agree with the rendered expression.
// floats.Sum reorders additions.
func sum(numbers []float64) float64 {
	total := 0.0
	for _, n := range numbers {
		total += n
	}
	return total
}

func (c *Calculator) round(x float64) float64 {
	return Round(x, c.precision)
}

func requireArity(name string, operands []float64, n int) error {
	if len(operands) == n {
		return nil
	}
	noun := "operands"
	if n == 1 {
		noun = "operand"
	}
	return evalerr.New(evalerr.CodeInvalidArgument, name,
		"%s requires exactly %d %s, got %d", name, n, noun, len(operands))
}

func isKnown(op Operation) bool {
	for _, known := range operations {
		if op == known {
			return true
		}
	}
	return false
}
