package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/service"
)

// NewToolsCommand creates the tools command.
func NewToolsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available services and tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTools(rootOpts, cmd)
		},
	}
}

func listTools(opts *RootOptions, cmd *cobra.Command) error {
	registry := service.NewRegistry()
	if err := registry.Register(calculator.NewProvider(opts.calculator)); err != nil {
		return err
	}
	if err := registry.Register(formatter.NewProvider(opts.formatter)); err != nil {
		return err
	}

	services := registry.List(nil)
	if opts.Format == "json" {
		return opts.output(cmd).Success(services, "")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, svc := range services {
		fmt.Fprintf(w, "%s\t(%s)\t%s\n", svc.Name, svc.Category, svc.Description)
		for _, tool := range svc.Tools {
			params := make([]string, 0, len(tool.Parameters))
			for _, p := range tool.Parameters {
				name := p.Name
				if !p.Required {
					name += "?"
				}
				params = append(params, name)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", tool.ID, strings.Join(params, ", "), tool.Description)
		}
	}
	return w.Flush()
}
