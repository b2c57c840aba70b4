package http

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "activitysignup/docs"
	"activitysignup/internal/delivery/http/controllers"
	"activitysignup/internal/delivery/http/middleware"
	"activitysignup/internal/delivery/http/static"
)

// LandingPage is where GET / redirects.
const LandingPage = "/static/index.html"

// NewRouter initializes the HTTP router with all application routes. gatherer
// backs GET /metrics; nil uses the default Prometheus registry.
func NewRouter(activityController *controllers.ActivityController, assets fs.FS, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/{path...}", static.Handler(assets))

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", activityController.Signup)
	mux.HandleFunc("DELETE /activities/{name}/participants/{email}", activityController.Unregister)

	// Ops
	mux.HandleFunc("GET /healthz", controllers.Health)
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps the router with request id, logging, CORS and metrics.
// Metrics wraps the mux directly so it can read the matched pattern.
func WithMiddleware(logger *slog.Logger, allowedOrigins []string, mux *http.ServeMux) http.Handler {
	var h http.Handler = middleware.Metrics(mux)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
