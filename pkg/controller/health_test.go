package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		checks map[string]controller.Check
		status int
		body   map[string]string
	}{
		{name: "no checks", checks: nil, status: http.StatusOK, body: map[string]string{}},
		{
			name:   "all up",
			checks: map[string]controller.Check{"storage": up},
			status: http.StatusOK,
			body:   map[string]string{"storage": "up"},
		},
		{
			name:   "one down",
			checks: map[string]controller.Check{"storage": up, "redis": down},
			status: http.StatusServiceUnavailable,
			body:   map[string]string{"storage": "up", "redis": "down"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			controller.Healthz(tc.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			require.Equal(t, tc.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.body, body)
		})
	}
}
