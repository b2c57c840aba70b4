package middleware

import (
	"net/http"
	"strconv"
	"time"

	"activitysignup/internal/telemetry"
)

// noRoutePath labels requests the mux could not match.
const noRoutePath = "<no-route>"

// Metrics records telemetry.HTTPRequestsTotal and telemetry.HTTPRequestDuration.
// It must wrap the ServeMux directly: the path label comes from r.Pattern, which
// the mux sets on the request while routing.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		path := r.Pattern
		if path == "" {
			path = noRoutePath
		}
		telemetry.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
