package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"trendlab/internal/config"
	apierrors "trendlab/internal/errors"
	"trendlab/internal/services"
)

// NewRouter wires the full HTTP surface: table queries, seasons, reload,
// health and Prometheus metrics.
func NewRouter(cfg config.ServerConfig, service *services.DataService, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.Default()
	}
	errorHandler := apierrors.NewErrorHandler(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.RateLimitRPS > 0 {
		r.Use(rateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", NewDataHandler(service, logger, errorHandler).Routes())
		r.Mount("/health", NewHealthHandler(service).Routes())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimit applies a process-wide token-bucket limit, as a small local
// stand-in for a fronting proxy.
func rateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
