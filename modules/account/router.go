package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is anything that exposes its routes as an http.Handler.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures what the account module mounts.
// Each entry is optional and only mounted if provided.
type RouterOptions struct {
	// API is mounted under /api.
	API Mountable
	// Metrics is served at /metrics.
	Metrics http.Handler
	// Health is served at /health.
	Health http.Handler
}

// Router creates the account module router.
//
//	api := account.NewAPI(svc, log)
//	r := httpserver.NewRouter(log)
//	r.Mount("/", account.Router(account.RouterOptions{
//		API:     api,
//		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
//		Health:  httpserver.HealthCheckHandler(log, probes...),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.API != nil {
		r.Mount("/api", opts.API.Handle())
	}
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.Health != nil {
		r.Method(http.MethodGet, "/health", opts.Health)
	}

	return r
}
