// Package calculator implements the arithmetic evaluator.
//
// Supported operations:
//   - add, multiply: variadic, identity 0 and 1 for no operands
//   - subtract, divide, power, percentage: exactly two operands
//   - sqrt: exactly one operand
//   - average: one or more operands
//
// Every result is rounded to the configured precision (default 2) by Round,
// which is applied to the final value only. Results carry a display
// expression using the glyphs shown to users (×, ÷, √).
//
// Errors are *evalerr.Error values: unknown names fail with
// INVALID_OPERATION, wrong arity or non-finite operands with
// INVALID_ARGUMENT, and domain violations with DIVISION_BY_ZERO,
// NEGATIVE_DOMAIN or EMPTY_INPUT.
//
// Sums add operands left to right; products use gonum's floats.Prod.
//
// Example Usage:
//
//	calc := calculator.New(calculator.WithPrecision(3))
//	res, err := calc.Calculate("divide", 10, 3)
//	// res.Result == 3.333, res.Expression == "10 ÷ 3 = 3.333"
package calculator
