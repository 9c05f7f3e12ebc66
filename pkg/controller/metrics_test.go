package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/pkg/controller"
	"storefront/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.Get("/v1/games/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, target := range []string{"/v1/games/1", "/v1/games/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	count, err := testutil.GatherAndCount(reg, "storefront_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count, "one series per route, the unmatched request included")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	routes := map[string]uint64{}
	for _, metric := range families[0].GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "route" {
				routes[label.GetValue()] = metric.GetHistogram().GetSampleCount()
			}
		}
	}
	require.Equal(t, map[string]uint64{"/v1/games/{id}": 2, "unmatched": 1}, routes)
}
