package evalerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeDivisionByZero, "divide", "Division by zero is not allowed")
	assert.Equal(t, "Division by zero is not allowed", err.Error())
	assert.Equal(t, "divide", err.Op)

	assert.Equal(t, "EMPTY_INPUT", ErrEmptyInput.Error())
}

func TestErrorsIsMatchesCode(t *testing.T) {
	err := New(CodeNegativeDomain, "sqrt", "nope")

	assert.True(t, errors.Is(err, ErrNegativeDomain))
	assert.False(t, errors.Is(err, ErrDivisionByZero))

	wrapped := fmt.Errorf("calculating: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNegativeDomain))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"direct", UnknownOperation("modulo"), CodeInvalidOperation},
		{"wrapped", fmt.Errorf("outer: %w", ErrEmptyInput), CodeEmptyInput},
		{"foreign", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestUnknownOperation(t *testing.T) {
	err := UnknownOperation("modulo")
	assert.Equal(t, "Unknown operation: modulo", err.Error())
	assert.Equal(t, "modulo", err.Op)
}
