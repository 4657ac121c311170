package formatter

import (
	"fmt"

	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
)

const (
	// DefaultTruncateSuffix is appended to truncated text
	DefaultTruncateSuffix = "..."

	// DefaultMaxLength applies to truncate when no length is given
	DefaultMaxLength = 50
)

// Operation names a formatter operation
type Operation string

const (
	OpTitleCase    Operation = "titleCase"
	OpCamelCase    Operation = "camelCase"
	OpKebabCase    Operation = "kebabCase"
	OpSnakeCase    Operation = "snakeCase"
	OpUppercase    Operation = "uppercase"
	OpLowercase    Operation = "lowercase"
	OpTruncate     Operation = "truncate"
	OpReverse      Operation = "reverse"
	OpWordCount    Operation = "wordCount"
	OpRemoveSpaces Operation = "removeSpaces"
)

var operations = []Operation{
	OpTitleCase,
	OpCamelCase,
	OpKebabCase,
	OpSnakeCase,
	OpUppercase,
	OpLowercase,
	OpTruncate,
	OpReverse,
	OpWordCount,
	OpRemoveSpaces,
}

// Operations returns the supported operations in declaration order
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// Options tunes a single Format call.
type Options struct {
	// MaxLength bounds truncate output. Zero selects the formatter's default
	// (DefaultMaxLength unless configured otherwise); negative is rejected.
	MaxLength int
}

// Metadata describes the input of a Format call
type Metadata struct {
	WordCount      int   `json:"wordCount"`
	CharacterCount int   `json:"characterCount"`
	Truncated      *bool `json:"truncated,omitempty"`
}

// FormatResult is the outcome of a single format call
type FormatResult struct {
	Original  string    `json:"original"`
	Formatted string    `json:"formatted"`
	Operation string    `json:"operation"`
	Metadata  *Metadata `json:"metadata,omitempty"`
}

// Formatter applies named text transformations. It holds no state beyond
// its configuration and is safe for concurrent use.
type Formatter struct {
	truncateSuffix   string
	defaultMaxLength int
}

// Option configures a Formatter
type Option func(*Formatter)

// WithTruncateSuffix sets the marker appended to truncated text.
func WithTruncateSuffix(suffix string) Option {
	return func(f *Formatter) {
		f.truncateSuffix = suffix
	}
}

// WithDefaultMaxLength sets the truncate length used when a call does not
// give one. Non-positive values are ignored.
func WithDefaultMaxLength(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.defaultMaxLength = n
		}
	}
}

// New creates a formatter
func New(opts ...Option) *Formatter {
	f := &Formatter{
		truncateSuffix:   DefaultTruncateSuffix,
		defaultMaxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TruncateSuffix returns the configured truncate suffix
func (f *Formatter) TruncateSuffix() string {
	return f.truncateSuffix
}

// MaxLength returns the truncate length used when a call gives none
func (f *Formatter) MaxLength() int {
	return f.defaultMaxLength
}

// Format applies the named operation to input. Metadata (character and word
// counts) is always computed from the input; truncate also reports whether
// it shortened the text. Operation names are matched exactly.
func (f *Formatter) Format(operation, input string, opts Options) (*FormatResult, error) {
	if !isKnown(Operation(operation)) {
		return nil, evalerr.UnknownOperation(operation)
	}

	meta := &Metadata{
		CharacterCount: f.CharacterCount(input),
		WordCount:      f.WordCount(input),
	}

	var formatted string
	switch Operation(operation) {
	case OpTitleCase:
		formatted = f.TitleCase(input)
	case OpCamelCase:
		formatted = f.CamelCase(input)
	case OpKebabCase:
		formatted = f.KebabCase(input)
	case OpSnakeCase:
		formatted = f.SnakeCase(input)
	case OpUppercase:
		formatted = f.Uppercase(input)
	case OpLowercase:
		formatted = f.Lowercase(input)
	case OpTruncate:
		maxLength, err := f.maxLength(operation, opts)
		if err != nil {
			return nil, err
		}
		formatted = f.Truncate(input, maxLength)
		truncated := meta.CharacterCount > maxLength
		meta.Truncated = &truncated
	case OpReverse:
		formatted = f.Reverse(input)
	case OpWordCount:
		formatted = fmt.Sprintf("Word Count: %d", meta.WordCount)
	case OpRemoveSpaces:
		formatted = f.RemoveSpaces(input)
	}

	return &FormatResult{
		Original:  input,
		Formatted: formatted,
		Operation: operation,
		Metadata:  meta,
	}, nil
}

func (f *Formatter) maxLength(operation string, opts Options) (int, error) {
	switch {
	case opts.MaxLength < 0:
		return 0, evalerr.New(evalerr.CodeInvalidArgument, operation,
			"Max length cannot be negative: %d", opts.MaxLength)
	case opts.MaxLength == 0:
		return f.defaultMaxLength, nil
	default:
		return opts.MaxLength, nil
	}
}

func isKnown(op Operation) bool {
	for _, known := range operations {
		if op == known {
			return true
		}
	}
	return false
}
