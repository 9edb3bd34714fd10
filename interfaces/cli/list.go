package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TristanLib/autogen/infrastructure/component"
)

// listOptions holds options for the list command.
type listOptions struct {
	verbose bool
}

// newListCmd creates the list command.
func (a *App) newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered condition providers",
		Long: `List every termination condition provider the registry knows about.

Examples:
  # List providers
  termination list

  # Verbose output with parameter details
  termination list -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listProviders(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show parameter details")

	return cmd
}

// listProviders lists the registered providers.
func (a *App) listProviders(opts *listOptions) error {
	registry := component.NewRegistry()

	for _, provider := range registry.Providers() {
		schema, err := component.Schema(provider)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s\n", provider)
		fmt.Fprintf(a.stdout, "  %s\n", schema.Description)

		if !opts.verbose {
			continue
		}
		for name, prop := range schema.Properties {
			required := ""
			for _, r := range schema.Required {
				if r == name {
					required = " (required)"
					break
				}
			}
			fmt.Fprintf(a.stdout, "    %s: %s%s — %s\n", name, prop.Type, required, prop.Description)
		}
		if len(schema.Properties) == 0 {
			fmt.Fprintf(a.stdout, "    no parameters\n")
		}
	}
	return nil
}
