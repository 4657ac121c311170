package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/utilkit/internal/infrastructure/config"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Precision int
	Suffix    string

	calculator *calculator.Calculator
	formatter  *formatter.Formatter
	logger     *logging.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the utilkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "utilkit",
		Short: "Arithmetic and text formatting utilities",
		Long: `utilkit evaluates arithmetic operations (add, subtract, multiply, divide,
power, sqrt, percentage, average) and text transformations (case conversion,
truncate, reverse, word count, whitespace removal).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", defaults.Calculator.Precision, "decimal places kept in results (overrides CALC_PRECISION)")
	cmd.PersistentFlags().StringVar(&opts.Suffix, "suffix", defaults.Formatter.TruncateSuffix, "suffix appended by truncate (overrides FORMAT_TRUNCATE_SUFFIX)")

	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewToolsCommand(opts))

	return cmd
}

// setup loads configuration, lets explicit flags override it and builds
// the evaluators.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Calculator.Precision = o.Precision
	}
	if flags.Changed("suffix") {
		cfg.Formatter.TruncateSuffix = o.Suffix
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	level := "warn"
	if o.Verbose {
		level = "debug"
	}
	o.logger = logging.NewFromLevel(level, false, "stderr").Named("cli")

	o.calculator = calculator.New(calculator.WithPrecision(cfg.Calculator.Precision))
	o.formatter = formatter.New(
		formatter.WithTruncateSuffix(cfg.Formatter.TruncateSuffix),
		formatter.WithDefaultMaxLength(cfg.Formatter.MaxLength),
	)
	return nil
}

func (o *RootOptions) output(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// reject reports an evaluation error and returns it as an ExitFailure.
func (o *RootOptions) reject(cmd *cobra.Command, err error) error {
	code := string(evalerr.CodeOf(err))
	o.logger.Debug("evaluation rejected", zap.String("code", code), zap.Error(err))
	if outErr := o.output(cmd).Error(code, err.Error()); outErr != nil {
		return outErr
	}
	exitErr := WrapExitError(ExitFailure, "evaluation failed", err)
	exitErr.Reported = true
	return exitErr
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	exitErr, ok := err.(*ExitError)
	if !ok || !exitErr.Reported {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return GetExitCode(err)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
