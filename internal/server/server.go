// Package server exposes the enriched table, capability flags, and chart
// specifications over HTTP for the dashboard frontend.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/agroclim/climate-cli/internal/config"
	"github.com/agroclim/climate-cli/internal/dataset"
	"github.com/agroclim/climate-cli/internal/observability"
)

// Server is the dashboard API. All data handlers read through the memoized
// provider, so every request sees the same frozen table.
type Server struct {
	provider   *dataset.Provider
	metrics    *observability.Metrics
	background *backgroundAsset
	router     chi.Router
}

// New builds the router. The background image is read once here; a missing
// image only disables the endpoint, it never blocks the API.
func New(cfg config.ServerConfig, provider *dataset.Provider, metrics *observability.Metrics, backgroundPath string) *Server {
	s := &Server{
		provider:   provider,
		metrics:    metrics,
		background: loadBackground(backgroundPath),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	if cfg.RateLimitRPS > 0 {
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateBurst)))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/pages", s.handlePages)
		r.Get("/pages/{slug}", s.handlePage)
		r.Get("/background", s.handleBackground)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/annual-temperature", s.handleAnnualTemperature)
			r.Get("/annual-precipitation", s.handleAnnualPrecipitation)
			r.Get("/temperature-distribution", s.handleTemperatureDistribution)
			r.Get("/monthly-heatmap", s.handleMonthlyHeatmap)
			r.Get("/monthly-precipitation", s.handleMonthlyPrecipitation)
			r.Get("/annual-profile", s.handleAnnualProfile)
			r.Get("/decadal", s.handleDecadal)
			r.Get("/seasonal", s.handleSeasonal)
		})
	})

	s.router = r
	return s
}

// ServeHTTP makes the server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
