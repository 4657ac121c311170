package calculator

import (
	gomath "math"
	"strconv"
	"strings"
)

// FormatNumber renders x the way it is shown to end users: shortest
// round-trip digits, plain notation for 1e-6 <= |x| < 1e21, exponent
// notation outside that range.
func FormatNumber(x float64) string {
	switch {
	case gomath.IsNaN(x):
		return "NaN"
	case gomath.IsInf(x, 1):
		return "Infinity"
	case gomath.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		// covers negative zero
		return "0"
	}

	abs := gomath.Abs(x)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// Go pads the exponent to two digits (1e-07); users see 1e-7.
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

func joinNumbers(numbers []float64, sep string) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = FormatNumber(n)
	}
	return strings.Join(parts, sep)
}

// expression renders the human-readable form of an evaluated operation.
func expression(op Operation, operands []float64, result float64) string {
	r := FormatNumber(result)

	switch op {
	case OpAdd:
		return joinNumbers(operands, " + ") + " = " + r
	case OpSubtract:
		return FormatNumber(operands[0]) + " - " + FormatNumber(operands[1]) + " = " + r
	case OpMultiply:
		return joinNumbers(operands, " × ") + " = " + r
	case OpDivide:
		return FormatNumber(operands[0]) + " ÷ " + FormatNumber(operands[1]) + " = " + r
	case OpPower:
		return FormatNumber(operands[0]) + "^" + FormatNumber(operands[1]) + " = " + r
	case OpSqrt:
		return "√" + FormatNumber(operands[0]) + " = " + r
	case OpPercentage:
		return FormatNumber(operands[0]) + " is " + r + "% of " + FormatNumber(operands[1])
	case OpAverage:
		return "Average of [" + joinNumbers(operands, ", ") + "] = " + r
	default:
		return r
	}
}
