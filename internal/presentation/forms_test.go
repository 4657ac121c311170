package presentation

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

func TestParseCalculation(t *testing.T) {
	tests := []struct {
		name string
		form CalculationForm
		want []float64
	}{
		{"sqrt ignores others", CalculationForm{Operation: "sqrt", Value1: "16", Value2: "9", Multiple: "1,2"}, []float64{16}},
		{"two values", CalculationForm{Operation: "divide", Value1: "10", Value2: "4"}, []float64{10, 4}},
		{"power", CalculationForm{Operation: "power", Value1: "2", Value2: "0.5"}, []float64{2, 0.5}},
		{"add two", CalculationForm{Operation: "add", Value1: "1", Value2: "2"}, []float64{1, 2}},
		{"add multiple", CalculationForm{Operation: "add", Value1: "1", Multiple: "2, 3 ,x, ,4"}, []float64{1, 2, 3, 4}},
		{"average all", CalculationForm{Operation: "average", Value1: "1", Value2: "2", Multiple: "3"}, []float64{1, 2, 3}},
		{"numeric prefix", CalculationForm{Operation: "subtract", Value1: " 12px", Value2: "-.5e1"}, []float64{12, -5}},
		{"unknown op combines values", CalculationForm{Operation: "modulo", Value1: "7", Value2: "2"}, []float64{7, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := ParseCalculation(tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.form.Operation, calc.Operation)
			assert.Equal(t, tt.want, calc.Operands)
		})
	}
}

func TestParseCalculationErrors(t *testing.T) {
	tests := []struct {
		name string
		form CalculationForm
		msg  string
	}{
		{"missing first", CalculationForm{Operation: "add", Value2: "1", Multiple: "2,3"}, MsgInvalidFirstValue},
		{"invalid first", CalculationForm{Operation: "sqrt", Value1: "abc"}, MsgInvalidFirstValue},
		{"missing second", CalculationForm{Operation: "divide", Value1: "1"}, MsgInvalidSecondValue},
		{"invalid second", CalculationForm{Operation: "percentage", Value1: "1", Value2: "."}, MsgInvalidSecondValue},
		{"single value", CalculationForm{Operation: "average", Value1: "5", Multiple: "a,b"}, MsgTooFewValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCalculation(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
			assert.True(t, errors.Is(err, evalerr.ErrInvalidArgument))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3", 3, true},
		{"  -2.5", -2.5, true},
		{"+7", 7, true},
		{"5.", 5, true},
		{".25", 0.25, true},
		{"1e3", 1000, true},
		{"1e", 1, true},
		{"12abc", 12, true},
		{" 4", 4, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"NaN", 0, false},
		{"0x10", 0, true},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}

	inf, ok := parseNumber("-Infinity")
	assert.True(t, ok)
	assert.True(t, math.IsInf(inf, -1))

	big, ok := parseNumber("1e400")
	assert.True(t, ok)
	assert.True(t, math.IsInf(big, 1))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name      string
		form      FormatForm
		input     string
		maxLength int
	}{
		{"trims input", FormatForm{Operation: "uppercase", Input: "  hi there \n"}, "hi there", 0},
		{"truncate length", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "10"}, "hello", 10},
		{"truncate default", FormatForm{Operation: "truncate", Input: "hello"}, "hello", 50},
		{"truncate invalid", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "abc"}, "hello", 50},
		{"truncate zero", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "0"}, "hello", 50},
		{"truncate integer prefix", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "12.9"}, "hello", 12},
		{"truncate hex", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "0x10"}, "hello", 16},
		{"truncate negative kept", FormatForm{Operation: "truncate", Input: "hello", MaxLength: "-3"}, "hello", -3},
		{"length ignored elsewhere", FormatForm{Operation: "reverse", Input: "abc", MaxLength: "3"}, "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.form, 50)
			require.NoError(t, err)
			assert.Equal(t, tt.input, f.Input)
			assert.Equal(t, tt.maxLength, f.Options.MaxLength)
		})
	}
}

func TestParseFormatEmpty(t *testing.T) {
	for _, input := range []Field{"", "   ", "\t\n　"} {
		_, err := ParseFormat(FormatForm{Operation: "reverse", Input: input}, 50)
		require.Error(t, err)
		assert.Equal(t, MsgEmptyText, err.Error())
		assert.Equal(t, evalerr.CodeEmptyInput, evalerr.CodeOf(err))
	}
}

func TestFieldUnmarshalJSON(t *testing.T) {
	var form CalculationForm
	err := json.Unmarshal([]byte(`{"operation":"add","value1":1.5,"value2":"2","multiple":null}`), &form)
	require.NoError(t, err)

	assert.Equal(t, Field("1.5"), form.Value1)
	assert.Equal(t, Field("2"), form.Value2)
	assert.Equal(t, Field(""), form.Multiple)

	calc, err := ParseCalculation(form)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, calc.Operands)
}
