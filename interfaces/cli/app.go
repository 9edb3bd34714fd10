// Package cli provides a command-line interface for working with
// termination condition spec files.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	autogen "github.com/TristanLib/autogen"
	"github.com/TristanLib/autogen/infrastructure/logging"
)

// App represents the CLI application.
type App struct {
	root     *cobra.Command
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "termination",
		Short: "Inspect and validate termination condition specs",
		Long: `termination works with the condition spec files that configure when a
multi-agent conversation stops: message ceilings, token budgets, stop
markers, handoffs, timeouts, and the rest of the built-in providers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLevel(app.logLevel)
		},
	}

	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newValidateCmd(),
		app.newListCmd(),
		app.newExportSchemaCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "termination version %s\n", autogen.Version)
		},
	}
}
