// Package metrics holds the instruments shared by the HTTP server and the
// background workers. Prometheus is the only exposition format: OpenTelemetry
// instruments are bridged into the same registry by the otel exporter.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/otlptranslator"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of every storefront meter.
const MeterName = "storefront"

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments are
// exported through reg. Dotted instrument names are escaped to underscores so
// storefront.purchases is scraped as storefront_purchases_total.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(
		otelprom.WithRegisterer(reg),
		otelprom.WithTranslationStrategy(otlptranslator.UnderscoreEscapingWithSuffixes),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// HTTP records request latencies per route.
type HTTP struct {
	duration *prometheus.HistogramVec
}

// NewHTTP registers the HTTP instruments on reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})

	if err := reg.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return &HTTP{duration: duration}, nil
}

// Observe records one finished request.
func (m *HTTP) Observe(method, route string, status int, elapsed time.Duration) {
	m.duration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
