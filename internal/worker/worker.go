// Package worker runs the background jobs enqueued by the catalog services.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 100

// Options configure the River client.
type Options struct {
	// MaxWorkers bounds the concurrent jobs of the default queue.
	MaxWorkers int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Deps are the services the workers depend on.
type Deps struct {
	Purchases     catalog.PurchaseService
	MeterProvider metric.MeterProvider
}

// Workers registers every storefront worker.
func Workers(deps Deps) (*river.Workers, error) {
	purchaseWorker, err := NewPurchaseRecordedWorker(deps.Purchases, deps.MeterProvider)
	if err != nil {
		return nil, err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, purchaseWorker)

	return workers, nil
}

// Start builds and starts a River client processing the default queue.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	workers, err := Workers(deps)
	if err != nil {
		return nil, err
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
