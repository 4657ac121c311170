package calculator

import gomath "math"

// Round rounds x to the given number of decimal digits.
//
// x is scaled by 10^precision, rounded to the nearest integer with halves
// going away from zero, and scaled back. A negative precision rounds to tens,
// hundreds and so on. NaN and Inf pass through unchanged.
//
// Operations apply Round to their final result only, never to intermediate
// terms.
func Round(x float64, precision int) float64 {
	factor := gomath.Pow10(precision)
	return gomath.Round(x*factor) / factor
}
