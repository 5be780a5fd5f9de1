package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/internal/server"
	"github.com/matzehuels/wayfinder/pkg/observability/otelhooks"
	"github.com/matzehuels/wayfinder/pkg/observability/promhooks"
)

const (
	telemetryPrometheus = "prometheus"
	telemetryOTel       = "otel"
	telemetryNone       = "none"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		telemetry string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Backends and limits come from the config file.

Endpoints:
  POST /v1/solve       {"builtin": "exercise", "options": {"strategy": "ucs"}}
  POST /v1/compare     same body, every strategy
  GET  /v1/runs        recorded runs, newest first
  GET  /v1/runs/{id}   one recorded run
  GET  /healthz
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch telemetry {
			case telemetryPrometheus:
				promhooks.New(nil).Register()
			case telemetryOTel:
				if err := otelhooks.Register(); err != nil {
					return fmt.Errorf("register telemetry: %w", err)
				}
			case telemetryNone:
			default:
				return fmt.Errorf("invalid telemetry: %q (must be prometheus, otel or none)", telemetry)
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			store, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			cfg := c.Config.Server
			if addr == "" {
				addr = cfg.Addr
			}
			srv := server.New(runner, store, server.Config{
				Addr:          addr,
				SolveTimeout:  cfg.SolveTimeout.Duration,
				MaxIterations: cfg.MaxIterations,
				Logger:        c.Logger,
			})
			printInfo("Serving on %s", StyleHighlight.Render(srv.Addr()))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&telemetry, "telemetry", telemetryPrometheus, "metrics backend: prometheus, otel, none")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")

	return cmd
}
