package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
)

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	ops := make([]string, 0, len(calculator.Operations()))
	for _, op := range calculator.Operations() {
		ops = append(ops, string(op))
	}

	cmd := &cobra.Command{
		Use:   "calc <operation> [operands...]",
		Short: "Evaluate an arithmetic operation",
		Long: fmt.Sprintf(`Evaluate an arithmetic operation over the given operands.

Operations: %s

Operands may be given as separate arguments or comma-separated lists.
Put "--" before negative operands so they are not read as flags.

Example:
  utilkit calc add 1 2 3
  utilkit calc average 1,2,3,4
  utilkit calc sqrt 16 --precision 4
  utilkit calc subtract -- -5 3`, strings.Join(ops, ", ")),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: ops,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, cmd, args[0], args[1:])
		},
	}

	return cmd
}

func runCalc(opts *RootOptions, cmd *cobra.Command, operation string, raw []string) error {
	operands, err := parseOperands(raw)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid operand", err)
	}

	start := time.Now()
	res, err := opts.calculator.Calculate(operation, operands...)
	if err != nil {
		return opts.reject(cmd, err)
	}

	opts.logger.Debug("calculated",
		zap.String("operation", res.Operation),
		zap.Int("operands", len(operands)),
		zap.Duration("took", time.Since(start)),
	)
	return opts.output(cmd).Success(res, res.Expression)
}

// parseOperands reads every argument as a number, splitting comma lists.
// Empty list entries are skipped.
func parseOperands(args []string) ([]float64, error) {
	var operands []float64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			x, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", part)
			}
			operands = append(operands, x)
		}
	}
	return operands, nil
}
