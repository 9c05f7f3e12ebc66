// Package api configures and exposes the HTTP server, routes, metrics,
// health and profiling endpoints of the storefront.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api/handler/v1handler"
	"storefront/internal/config"
	"storefront/pkg/controller"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps

	// Registry receives the HTTP instruments and backs the metrics endpoint.
	Registry *prometheus.Registry
	// HealthChecks are run by /healthz.
	HealthChecks map[string]controller.Check
}

// NewHandler builds the router of the server:
// - Prometheus metrics endpoint (MetricsPath)
// - v1 API routes
// - /healthz liveness and dependency checks
// - pprof endpoints for profiling
// Every route is wrapped with CORS, logging and latency middlewares.
func NewHandler(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	httpMetrics, err := metrics.NewHTTP(deps.Registry)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(controller.WithLogger(logger.Get(ctx)))
	router.Use(controller.WithCORS)
	router.Use(controller.WithMetrics(httpMetrics))

	// prometheus metrics server
	router.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	router.Get("/healthz", controller.Healthz(deps.HealthChecks))

	// v1 api
	router.Mount("/v1", v1handler.New(deps.Deps).Routes())

	// pprof
	router.Mount(controller.PprofPrefix, controller.PprofMux())

	return router, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// Requests run on ctx's logger and are cut off after RequestTimeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, deps, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create router: %w", err)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
