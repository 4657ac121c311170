package formatter

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/utilkit/internal/providers/common"
	"github.com/GriffinCanCode/utilkit/internal/shared/evalerr"
	"github.com/GriffinCanCode/utilkit/internal/types"
)

// ServiceID is the registry prefix of formatter tools
const ServiceID = "formatter"

// Provider exposes the formatter as a registry service
type Provider struct {
	formatter *Formatter
}

// NewProvider wraps a formatter
func NewProvider(f *Formatter) *Provider {
	if f == nil {
		f = New()
	}
	return &Provider{formatter: f}
}

// Formatter returns the wrapped formatter
func (p *Provider) Formatter() *Formatter {
	return p.formatter
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          ServiceID,
		Name:        "Text Formatter Service",
		Description: "Text formatting (title, camel, kebab, snake case, upper, lower, truncate, reverse, word count, remove spaces)",
		Category:    types.CategoryText,
		Capabilities: []string{
			"case_conversion",
			"truncation",
			"word_count",
			"text_cleanup",
		},
		Tools: p.GetTools(),
	}
}

var toolDescriptions = map[Operation][2]string{
	OpTitleCase:    {"Title Case", "Capitalize the first letter of every word"},
	OpCamelCase:    {"Camel Case", "Join words into camelCase"},
	OpKebabCase:    {"Kebab Case", "Join words into kebab-case"},
	OpSnakeCase:    {"Snake Case", "Join words into snake_case"},
	OpUppercase:    {"Uppercase", "Convert text to upper case"},
	OpLowercase:    {"Lowercase", "Convert text to lower case"},
	OpTruncate:     {"Truncate", "Shorten text to a maximum length with a suffix"},
	OpReverse:      {"Reverse", "Reverse the characters of the text"},
	OpWordCount:    {"Word Count", "Count the words in the text"},
	OpRemoveSpaces: {"Remove Spaces", "Delete every whitespace character"},
}

// GetTools returns formatter tool definitions
func (p *Provider) GetTools() []types.Tool {
	tools := make([]types.Tool, 0, len(operations))
	for _, op := range operations {
		desc := toolDescriptions[op]
		params := []types.Parameter{
			{Name: "text", Type: "string", Description: "Text to format", Required: true},
		}
		if op == OpTruncate {
			params = append(params, types.Parameter{
				Name:        "maxLength",
				Type:        "number",
				Description: fmt.Sprintf("Maximum length including suffix (default: %d)", p.formatter.MaxLength()),
				Required:    false,
			})
		}
		tools = append(tools, types.Tool{
			ID:          ServiceID + "." + string(op),
			Name:        desc[0],
			Description: desc[1],
			Parameters:  params,
			Returns:     "string",
		})
	}
	return tools
}

// Execute routes a formatter tool to the evaluator
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := strings.CutPrefix(toolID, ServiceID+".")
	if !ok || !isKnown(Operation(name)) {
		return common.FailureFrom(evalerr.New(evalerr.CodeInvalidOperation, name, "unknown tool: %s", toolID))
	}

	text, ok := common.GetString(params, "text")
	if !ok {
		return common.FailureFrom(evalerr.New(evalerr.CodeInvalidArgument, name, "text parameter required"))
	}

	var opts Options
	if maxLength, ok := common.GetNumber(params, "maxLength"); ok {
		opts.MaxLength = int(maxLength)
	}

	res, err := p.formatter.Format(name, text, opts)
	if err != nil {
		return common.FailureFrom(err)
	}

	meta := map[string]interface{}{
		"characterCount": res.Metadata.CharacterCount,
		"wordCount":      res.Metadata.WordCount,
	}
	if res.Metadata.Truncated != nil {
		meta["truncated"] = *res.Metadata.Truncated
	}

	return common.Success(map[string]interface{}{
		"original":  res.Original,
		"formatted": res.Formatted,
		"operation": res.Operation,
		"metadata":  meta,
	})
}
