package worker

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/catalog"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"
	"storefront/pkg/serrors"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// PurchaseRecordedWorker runs after a purchase commits. It confirms the purchase
// still exists and accounts for the sale in the purchase and revenue counters.
// A purchase removed in the meantime (its user was deleted) cancels the job.
type PurchaseRecordedWorker struct {
	river.WorkerDefaults[catalog.PurchaseRecordedArgs]

	purchases catalog.PurchaseService
	sales     metric.Int64Counter
	revenue   metric.Float64Counter
}

// NewPurchaseRecordedWorker creates the worker and its instruments on mp.
func NewPurchaseRecordedWorker(
	purchases catalog.PurchaseService,
	mp metric.MeterProvider,
) (*PurchaseRecordedWorker, error) {
	meter := mp.Meter(metrics.MeterName)

	sales, err := meter.Int64Counter("storefront.purchases",
		metric.WithDescription("Number of recorded purchases."))
	if err != nil {
		return nil, fmt.Errorf("could not create purchases counter: %w", err)
	}
	revenue, err := meter.Float64Counter("storefront.revenue",
		metric.WithDescription("Sum of prices paid for recorded purchases."))
	if err != nil {
		return nil, fmt.Errorf("could not create revenue counter: %w", err)
	}

	return &PurchaseRecordedWorker{
		purchases: purchases,
		sales:     sales,
		revenue:   revenue,
	}, nil
}

// Work accounts for a single purchase.
func (w *PurchaseRecordedWorker) Work(ctx context.Context, job *river.Job[catalog.PurchaseRecordedArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("job_id", job.ID),
		zap.Int64("purchase_id", int64(job.Args.PurchaseID)))

	if _, err := w.purchases.ByID(ctx, job.Args.PurchaseID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "purchase disappeared before it was accounted", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not load purchase: %w", err)
	}

	attrs := metric.WithAttributes(attribute.String("content_type", string(job.Args.ContentType)))
	w.sales.Add(ctx, 1, attrs)
	w.revenue.Add(ctx, job.Args.PricePaid.InexactFloat64(), attrs)

	logger.Info(ctx, "purchase accounted",
		zap.Int64("user_id", int64(job.Args.UserID)),
		zap.Int64("content_id", int64(job.Args.ContentID)),
		zap.String("content_type", string(job.Args.ContentType)),
		zap.String("price_paid", job.Args.PricePaid.StringFixed(2)))

	return nil
}
