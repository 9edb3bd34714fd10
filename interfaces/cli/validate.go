package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TristanLib/autogen/infrastructure/component"
	"github.com/TristanLib/autogen/infrastructure/logging"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	specPath string
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a condition spec file",
		Long: `Validate a termination condition spec file for correctness.

This command checks:
  - File format (YAML or JSON)
  - That every condition names a registered provider
  - That every condition's parameters construct a valid condition

Examples:
  # Validate a spec file
  termination validate -c conditions.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateSpec(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.specPath, "spec", "c", "", "Path to condition spec file")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}

// validateSpec validates the condition spec file.
func (a *App) validateSpec(opts *validateOptions) error {
	loader := component.NewLoader()
	file, err := loader.LoadFile(opts.specPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	logging.Debug().
		Add(logging.SpecFile(opts.specPath)).
		Add(logging.ConditionCount(len(file.Conditions))).
		Msg("spec file loaded")

	registry := component.NewRegistry()
	conditions, err := registry.LoadAll(file.Conditions)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(a.stdout, "✓ Spec is valid\n")
	if file.Name != "" {
		fmt.Fprintf(a.stdout, "  Name: %s\n", file.Name)
	}
	for i, cond := range conditions {
		logging.Debug().
			Add(logging.Provider(file.Conditions[i].Provider)).
			Add(logging.Condition(cond.Name())).
			Msg("condition constructed")
		fmt.Fprintf(a.stdout, "  %s (%s)\n", cond.Name(), file.Conditions[i].Provider)
	}
	return nil
}
