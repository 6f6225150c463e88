package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/giftmatch/internal/server"
)

// defaultAddr is the default listen address of the HTTP API.
const defaultAddr = "127.0.0.1:8600"

// newServeCmd creates the serve command exposing the solver over HTTP.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as an HTTP API",
		Long: `Serve check, assign, and stats over HTTP.

Endpoints (all POST, JSON bodies):
  /v1/check    feasibility verdict with reason
  /v1/assign   one randomized assignment
  /v1/stats    per-participant constraint pressure

The server holds no state and stores nothing; group data lives with the
caller. Stop with ctrl-c for a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return server.New(addr, loggerFromContext(ctx)).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
