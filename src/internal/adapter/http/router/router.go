package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/api-sage/mini-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/mini-ledger/src/internal/commons"
	"github.com/api-sage/mini-ledger/src/internal/metrics"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type Options struct {
	AllowedOrigins []string
	Metrics        *metrics.Ledger
	Gatherer       prometheus.Gatherer
}

func New(accountController AccountRouteRegistrar, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		commons.WriteJSON(w, http.StatusNotFound, commons.ErrorResponse("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		commons.WriteJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse("Method not allowed"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	registerSwaggerRoutes(r)

	if accountController != nil {
		accountController.RegisterRoutes(r)
	}

	return r
}
