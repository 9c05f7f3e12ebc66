package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	mux := controller.PprofMux()
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_NamedProfiles(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"cmdline", "goroutine", "heap"} {
		req := httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/"+path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Result().StatusCode, path)
	}
}
