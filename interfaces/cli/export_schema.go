package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TristanLib/autogen/infrastructure/component"
)

// exportSchemaOptions holds options for the export-schema command.
type exportSchemaOptions struct {
	outputPath string
}

// newExportSchemaCmd creates the export-schema command.
func (a *App) newExportSchemaCmd() *cobra.Command {
	opts := &exportSchemaOptions{}

	cmd := &cobra.Command{
		Use:   "export-schema [provider]",
		Short: "Export condition parameter JSON schemas",
		Long: `Export the JSON Schema for one provider's parameters, or for all
providers when none is given.

The schema follows JSON Schema draft 2020-12.

Examples:
  # Export all schemas to stdout
  termination export-schema

  # Export the schema for one provider
  termination export-schema autogen.termination.MaxMessage

  # Export to a file
  termination export-schema -o schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportSchema(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// exportSchema exports parameter schemas as JSON.
func (a *App) exportSchema(opts *exportSchemaOptions, args []string) error {
	var doc any
	if len(args) == 1 {
		schema, err := component.Schema(args[0])
		if err != nil {
			return err
		}
		doc = schema
	} else {
		doc = component.Schemas()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')

	if opts.outputPath == "" {
		_, err = a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	fmt.Fprintf(a.stdout, "Schema written to %s\n", opts.outputPath)
	return nil
}
