package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/shared/utils"
)

// FormatOptions holds flags for the format command.
type FormatOptions struct {
	*RootOptions
	MaxLength int
}

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormatOptions{RootOptions: rootOpts}

	ops := make([]string, 0, len(formatter.Operations()))
	for _, op := range formatter.Operations() {
		ops = append(ops, string(op))
	}

	cmd := &cobra.Command{
		Use:   "format <operation> <text...>",
		Short: "Apply a text transformation",
		Long: fmt.Sprintf(`Apply a text transformation. Text arguments are joined with single
spaces; a lone "-" reads the text from standard input.

Operations: %s

Example:
  utilkit format kebabCase "Hello World"
  utilkit format truncate --max-length 10 "a rather long sentence"
  echo "some text" | utilkit format uppercase -`, strings.Join(ops, ", ")),
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: ops,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(opts, cmd, args[0], args[1:])
		},
	}

	cmd.Flags().IntVar(&opts.MaxLength, "max-length", 0, "truncate length including suffix (0 uses FORMAT_MAX_LENGTH)")

	return cmd
}

func runFormat(opts *FormatOptions, cmd *cobra.Command, operation string, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), utils.MaxBodySize))
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read standard input", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	if err := utils.ValidateInput(text); err != nil {
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	start := time.Now()
	res, err := opts.formatter.Format(operation, text, formatter.Options{MaxLength: opts.MaxLength})
	if err != nil {
		return opts.reject(cmd, err)
	}

	opts.logger.Debug("formatted",
		zap.String("operation", res.Operation),
		zap.Int("characters", res.Metadata.CharacterCount),
		zap.Duration("took", time.Since(start)),
	)
	return opts.output(cmd).Success(res, res.Formatted)
}
