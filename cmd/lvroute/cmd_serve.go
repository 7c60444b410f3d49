package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/lvroute/reload"
	"github.com/katalvlaran/lvroute/server"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve queries over HTTP, reloading the map when it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			gin.SetMode(a.cfg.Server.Mode)
			a.reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// serve runs the HTTP server and, when enabled, the map watcher until ctx
// is done or either fails.
func serve(ctx context.Context, a *app) error {
	srv := server.New(a.svc,
		server.WithAddr(a.cfg.Server.Addr),
		server.WithLogger(a.logger),
		server.WithGatherer(a.reg),
		server.WithShutdownTimeout(a.cfg.Server.ShutdownTimeout),
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return srv.Run(ctx) })

	if a.cfg.Watch.Enabled {
		w, err := reload.New(a.cfg.MapFile, a.svc,
			reload.WithDebounce(a.cfg.Watch.Debounce),
			reload.WithLogger(a.logger),
			reload.WithMetrics(a.metrics),
			reload.WithGraphOptions(graphOptions(a.cfg)...),
		)
		if err != nil {
			return err
		}
		defer w.Close()
		eg.Go(func() error { return w.Run(ctx) })
	}

	return eg.Wait()
}
