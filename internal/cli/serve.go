package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staircast/staircast/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the staircast HTTP API",
		Long: `Run the staircast HTTP API.

The server exposes the pipeline over HTTP: POST a spec to /api/v1/compute
for the geometry profile or to /api/v1/render for an artifact, and manage
saved designs under /api/v1/designs. The server shares the CLI's cache
and design library and shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	store, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open design store: %w", err)
	}
	defer store.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Store:  store,
		Logger: c.Logger,
	})

	printInfo("Listening on %s", StyleHighlight.Render(addr))
	printDetail("press ctrl+c to stop")

	return srv.Start(ctx)
}
