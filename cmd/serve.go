package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"storefront/internal/api"
	"storefront/internal/api/handler/v1handler"
	"storefront/internal/config"
	"storefront/internal/worker"
	"storefront/pkg/controller"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg); err != nil {
				logger.Fatal(ctx, "storefront stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}

// serve runs the HTTP server and, on postgres, the River workers until ctx
// is canceled, then shuts both down within GracefulShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config) error {
	strg, pgsql, closeStrg := getStorage(ctx, cfg)
	defer closeStrg()

	locker, closeLocker := getLocker(ctx, cfg)
	defer closeLocker()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	meterProvider, err := metrics.NewMeterProvider(registry)
	if err != nil {
		return err
	}

	shop := newCatalog(cfg, strg, locker)

	checks := map[string]controller.Check{}
	if pgsql != nil {
		checks["postgres"] = pgsql.Pool.Ping
	}
	if locker != nil {
		checks["redis"] = locker.Ping
	}

	server, err := api.NewServer(ctx, api.Deps{
		Deps:         v1handler.DepsFromCatalog(shop),
		Registry:     registry,
		HealthChecks: checks,
	}, api.NewOptions(cfg))
	if err != nil {
		return fmt.Errorf("could not create webserver: %w", err)
	}
	server.BaseContext = func(_ net.Listener) context.Context { return ctx }

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start webserver: %w", err)
		}

		return nil
	})

	if pgsql != nil {
		riverClient, err := worker.Start(ctx, pgsql.Pool, worker.Deps{
			Purchases:     shop.Purchases,
			MeterProvider: meterProvider,
		}, worker.NewOptions(cfg))
		if err != nil {
			return err
		}

		group.Go(func() error {
			<-groupCtx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				return fmt.Errorf("could not stop workers: %w", err)
			}

			return nil
		})
	} else {
		logger.Info(ctx, "memory storage: purchase jobs are recorded but not processed")
	}

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
		defer cancel()

		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop webserver: %w", err)
		}

		return nil
	})

	err = group.Wait()

	if shutdownErr := meterProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
		logger.Warn(ctx, "could not shut down meter provider", zap.Error(shutdownErr))
	}

	return err
}
