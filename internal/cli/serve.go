package cli

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclecheck/internal/api"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve exposes the detector over HTTP:

  GET  /healthz     liveness probe
  GET  /version     build information
  POST /v1/cycles   check an edge list (body format via ?format=, default json)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return c.serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, then "+defaultAddr+")")
	return cmd
}

// serve runs the API on ln until ctx is cancelled, then shuts down gracefully.
func (c *CLI) serve(ctx context.Context, ln net.Listener) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Handler:           api.NewRouter(api.NewHandlers(logger)),
		ReadTimeout:       c.Config.Serve.ReadTimeout.Duration,
		ReadHeaderTimeout: c.Config.Serve.ReadTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	logger.Info("Listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
