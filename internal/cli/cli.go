// Package cli implements the giftmatch command-line interface.
//
// This package provides commands for checking whether a gift-exchange
// group can be matched, drawing an assignment, inspecting constraint
// pressure, rendering the compatibility graph, revealing assignments
// interactively at a shared terminal, and serving the solver over HTTP.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Decide whether a valid assignment exists, with a reason
//   - assign: Draw one randomized assignment
//   - stats: Show per-participant constraint pressure
//   - graph: Render the compatibility graph as DOT, SVG, or PNG
//   - reveal: Step through assignments privately at a shared terminal
//   - serve: Expose check/assign/stats as an HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "giftmatch"

// Execute runs the giftmatch CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Giftmatch draws valid gift-exchange assignments",
		Long: `Giftmatch is a CLI tool for secret-santa style gift exchanges: it checks
whether a group with exclusion lists can be matched at all, draws a
randomized assignment when it can, and explains which participants make
matching hard when it cannot.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newAssignCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newRevealCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
