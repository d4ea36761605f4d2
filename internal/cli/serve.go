package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbox/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	maxBody int64
	timeout time.Duration
	cache   cacheFlags
}

// serveCommand creates the serve command, which runs the HTTP layout service
// until the process is interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", maxBody: 1 << 20, timeout: 30 * time.Second}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout service",
		Long: `Run the HTTP layout service.

Endpoints:
  GET  /healthz      liveness probe
  POST /v1/check     minimum size of a TOML document
  POST /v1/layout    arranged frames as JSON
  POST /v1/render    a rendered output (?format=svg|json|dot|tree)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, opts.cache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger,
				server.WithMaxBody(opts.maxBody),
				server.WithTimeout(opts.timeout))
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	opts.cache.register(cmd)

	return cmd
}
