package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agroclim/climate-cli/internal/dataset"
	"github.com/agroclim/climate-cli/internal/observability"
	"github.com/agroclim/climate-cli/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		metrics := observability.NewMetrics()
		provider := dataset.NewProvider(loadOptions(cfg))

		// Fail fast: a missing or unreadable source is terminal, the
		// server never starts with a partial table.
		start := time.Now()
		t, err := provider.Table()
		if err != nil {
			return eris.Wrap(err, "load dataset")
		}
		metrics.LoadSeconds.Observe(time.Since(start).Seconds())
		metrics.RowsLoaded.Set(float64(t.RowsLoaded))
		metrics.RowsDropped.Set(float64(t.RowsDropped))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, port),
			Handler:      server.New(cfg.Server, provider, metrics, cfg.Data.BackgroundImage),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server",
				zap.String("addr", srv.Addr),
				zap.Int("rows", t.RowsLoaded),
			)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
