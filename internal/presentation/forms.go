package presentation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

// Form error messages shown to end users
const (
	MsgInvalidFirstValue  = "Please enter a valid first value"
	MsgInvalidSecondValue = "Please enter a valid second value"
	MsgTooFewValues       = "Please enter at least two values"
	MsgEmptyText          = "Please enter some text to format"
)

// Field is raw form input. JSON clients may send it as a string or a bare
// number; both decode to the literal text.
type Field string

// UnmarshalJSON accepts strings, numbers and null
func (f *Field) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0 || string(data) == "null":
		*f = ""
	case data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
	default:
		*f = Field(data)
	}
	return nil
}

// CalculationForm is the raw input of the calculator form
type CalculationForm struct {
	Operation string `json:"operation" form:"operation" binding:"required"`
	Value1    Field  `json:"value1" form:"value1"`
	Value2    Field  `json:"value2" form:"value2"`
	Multiple  Field  `json:"multiple" form:"multiple"`
}

// FormatForm is the raw input of the formatter form
type FormatForm struct {
	Operation string `json:"operation" form:"operation" binding:"required"`
	Input     Field  `json:"input" form:"input"`
	MaxLength Field  `json:"maxLength" form:"maxLength"`
}

// Calculation is a parsed calculator request
type Calculation struct {
	Operation string
	Operands  []float64
}

// Formatting is a parsed formatter request
type Formatting struct {
	Operation string
	Input     string
	Options   formatter.Options
}

// ParseCalculation turns form input into operands. sqrt takes the first
// value only; subtract, divide, power and percentage need both values; every
// other operation combines the first value, the optional second value and
// the comma-separated extra values, skipping entries that are not numbers.
func ParseCalculation(form CalculationForm) (*Calculation, error) {
	op := form.Operation
	value1, ok := parseNumber(string(form.Value1))
	if !ok {
		return nil, formError(evalerr.CodeInvalidArgument, op, MsgInvalidFirstValue)
	}

	switch calculator.Operation(op) {
	case calculator.OpSqrt:
		return &Calculation{Operation: op, Operands: []float64{value1}}, nil
	case calculator.OpSubtract, calculator.OpDivide, calculator.OpPower, calculator.OpPercentage:
		value2, ok := parseNumber(string(form.Value2))
		if !ok {
			return nil, formError(evalerr.CodeInvalidArgument, op, MsgInvalidSecondValue)
		}
		return &Calculation{Operation: op, Operands: []float64{value1, value2}}, nil
	}

	values := []float64{value1}
	if value2, ok := parseNumber(string(form.Value2)); ok {
		values = append(values, value2)
	}
	for _, part := range strings.Split(string(form.Multiple), ",") {
		if v, ok := parseNumber(part); ok {
			values = append(values, v)
		}
	}

	if len(values) < 2 {
		return nil, formError(evalerr.CodeInvalidArgument, op, MsgTooFewValues)
	}
	return &Calculation{Operation: op, Operands: values}, nil
}

// ParseFormat trims the input and resolves truncate's length. A missing,
// unparseable or zero length falls back to defaultMaxLength.
func ParseFormat(form FormatForm, defaultMaxLength int) (*Formatting, error) {
	input := strings.TrimFunc(string(form.Input), formatter.IsSpace)
	if input == "" {
		return nil, formError(evalerr.CodeEmptyInput, form.Operation, MsgEmptyText)
	}

	f := &Formatting{Operation: form.Operation, Input: input}
	if formatter.Operation(form.Operation) == formatter.OpTruncate {
		n, ok := parseInteger(string(form.MaxLength))
		if !ok || n == 0 {
			n = defaultMaxLength
		}
		f.Options.MaxLength = n
	}
	return f, nil
}

func formError(code evalerr.Code, op, msg string) error {
	return &evalerr.Error{Code: code, Op: op, Message: msg}
}

var (
	// Longest numeric prefix, as browsers read number inputs
	numberPrefix  = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	integerPrefix = regexp.MustCompile(`^[+-]?(?:0[xX][0-9a-fA-F]+|\d+)`)
)

// parseNumber reads the longest numeric prefix after leading whitespace
// ("12px" is 12, "abc" is not a number).
func parseNumber(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimLeftFunc(s, formatter.IsSpace))
	if m == "" {
		return 0, false
	}

	sign := 1.0
	switch m[0] {
	case '-':
		sign, m = -1, m[1:]
	case '+':
		m = m[1:]
	}
	if m == "Infinity" {
		return sign * math.Inf(1), true
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range literals saturate to ±Inf with ErrRange
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	return sign * v, true
}

// parseInteger reads the longest integer prefix, accepting 0x hex
func parseInteger(s string) (int, bool) {
	m := integerPrefix.FindString(strings.TrimLeftFunc(s, formatter.IsSpace))
	if m == "" {
		return 0, false
	}

	neg := false
	switch m[0] {
	case '-':
		neg, m = true, m[1:]
	case '+':
		m = m[1:]
	}

	base := 10
	if len(m) > 2 && (m[1] == 'x' || m[1] == 'X') {
		base, m = 16, m[2:]
	}

	v, err := strconv.ParseInt(m, base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return int(v), true
}
