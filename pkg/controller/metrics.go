package controller

import (
	"net/http"
	"time"

	"storefront/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// WithMetrics returns a chi middleware that records the latency of every
// request under its route pattern. Requests no route matched are grouped
// under "unmatched" to keep the label cardinality bounded.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.Observe(r.Method, route, rec.status, time.Since(start))
		})
	}
}
