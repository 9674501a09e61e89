package infra

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/s21platform/echo-service/internal/config"
)

const unmatchedRoute = "unmatched"

var routeReplacer = strings.NewReplacer("/", "_", "-", "_", "{", "", "}", "")

// MetricsHTTP puts metrics into the request context and counts every answered
// request by method, route pattern and status.
func MetricsHTTP(next http.Handler, metrics Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.Increment(fmt.Sprintf("http.%s.%s.%d", r.Method, routeName(r), status))
	})
}

// routeName must run after routing, when chi has filled in the pattern.
func routeName(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	name := strings.Trim(routeReplacer.Replace(rctx.RoutePattern()), "_")
	if name == "" {
		return unmatchedRoute
	}
	return name
}
