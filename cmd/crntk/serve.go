// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
	"github.com/katalvlaran/crntk/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}

			rec := metrics.Nop()
			srvOpts := []server.Option{
				server.WithLogger(a.log),
				server.WithMaxBodyBytes(a.cfg.Server.MaxBodyBytes),
			}
			if a.cfg.Metrics.Enabled {
				prom, err := metrics.NewPrometheus(a.cfg.Metrics.Config)
				if err != nil {
					return err
				}
				rec = prom
				srvOpts = append(srvOpts, server.WithMetrics(prom.Handler()))
			}

			svc, ping := a.service(rec)
			if ping != nil {
				srvOpts = append(srvOpts, server.WithCheck("redis", ping))
			}
			mgr := analysis.NewManager(svc)
			srv := server.New(mgr, srvOpts...)

			a.log.Info("starting",
				logging.String("version", version),
				logging.String("addr", a.cfg.Server.Addr),
				logging.String("cache", a.cfg.Cache.Backend),
				logging.Bool("metrics", a.cfg.Metrics.Enabled))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return srv.ListenAndServe(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout)
			})
			g.Go(func() error {
				<-ctx.Done()
				mgr.Close()
				return nil
			})

			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
