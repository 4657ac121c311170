package calculator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GriffinCanCode/utilkit/internal/providers/common"
	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
	"github.com/GriffinCanCode/utilkit/internal/types"
)

// ServiceID is the registry prefix of calculator tools
const ServiceID = "calculator"

// Provider exposes the calculator as a registry service
type Provider struct {
	calc *Calculator
}

// NewProvider wraps a calculator
func NewProvider(calc *Calculator) *Provider {
	if calc == nil {
		calc = New()
	}
	return &Provider{calc: calc}
}

// Calculator returns the wrapped calculator
func (p *Provider) Calculator() *Calculator {
	return p.calc
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "Calculator Service",
		Description: "Arithmetic operations with rounded results (add, subtract, multiply, divide, power, sqrt, percentage, average)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"percentage",
			"average",
			"rounding",
		},
		Tools: p.GetTools(),
	}
}

// GetTools returns calculator tool definitions
func (p *Provider) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calculator.add",
			Name:        "Add",
			Description: "Add zero or more numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to add", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.multiply",
			Name:        "Multiply",
			Description: "Multiply zero or more numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to multiply", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.divide",
			Name:        "Divide",
			Description: "Divide a by b",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.sqrt",
			Name:        "Square Root",
			Description: "Calculate square root of a non-negative number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.percentage",
			Name:        "Percentage",
			Description: "Express value as a percentage of total",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Part", Required: true},
				{Name: "total", Type: "number", Description: "Whole", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calculator.average",
			Name:        "Average",
			Description: "Calculate the arithmetic mean of one or more numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to average", Required: true},
			},
			Returns: "number",
		},
	}
}

// operandKeys lists the param names read for fixed-arity operations
var operandKeys = map[Operation][]string{
	OpSubtract:   {"a", "b"},
	OpDivide:     {"a", "b"},
	OpPower:      {"base", "exponent"},
	OpSqrt:       {"x"},
	OpPercentage: {"value", "total"},
}

// Execute routes a calculator tool to the evaluator
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := strings.CutPrefix(toolID, ServiceID+".")
	op := Operation(strings.ToLower(name))
	if !ok || !isKnown(op) {
		return common.FailureFrom(evalerr.New(evalerr.CodeInvalidOperation, name, "unknown tool: %s", toolID))
	}

	operands, msg := extractOperands(op, params)
	if msg != "" {
		return common.FailureFrom(evalerr.New(evalerr.CodeInvalidArgument, name, "%s", msg))
	}

	res, err := p.calc.Calculate(name, operands...)
	if err != nil {
		return common.FailureFrom(err)
	}

	return common.Success(map[string]interface{}{
		"result":     res.Result,
		"operation":  res.Operation,
		"expression": res.Expression,
		"timestamp":  res.Timestamp.Format(time.RFC3339Nano),
	})
}

func extractOperands(op Operation, params map[string]interface{}) ([]float64, string) {
	keys, fixed := operandKeys[op]
	if !fixed {
		numbers, ok := common.GetNumbers(params, "numbers")
		if !ok {
			return nil, "numbers array required"
		}
		return numbers, ""
	}

	operands := make([]float64, 0, len(keys))
	for _, key := range keys {
		v, ok := common.GetNumber(params, key)
		if !ok {
			return nil, fmt.Sprintf("%s parameter required", key)
		}
		operands = append(operands, v)
	}
	return operands, ""
}
