package controller

import (
	"context"
	"net/http"

	"storefront/pkg/logger"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Healthz answers with 200 when every check passes and 503 otherwise.
func Healthz(checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.String("check", name), zap.Error(err))
				status = http.StatusServiceUnavailable
				body[name] = "down"

				continue
			}
			body[name] = "up"
		}

		render.Status(r, status)
		render.JSON(w, r, body)
	}
}
