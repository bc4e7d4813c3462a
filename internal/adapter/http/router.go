package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterConfig struct {
	AllowedOrigins  []string
	MaxBodyBytes    int64
	SubmitPerSecond float64
	SubmitBurst     int
}

// NewRouter registers the API routes on a chi mux and wraps it with tracing.
func NewRouter(h *Handler, cfg RouterConfig, m *metrics.MetricsManager, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(log.Named("http"), m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", RequestIDHeader},
		AllowCredentials: true,
	}))

	r.Get("/", h.HandleRoot)
	r.Get("/api/categories", h.HandleGetCategories)
	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/", h.HandleListProperties)
		r.Get("/{id}", h.HandleGetProperty)
		r.With(MaxBody(cfg.MaxBodyBytes), RateLimit(cfg.SubmitPerSecond, cfg.SubmitBurst)).Post("/", h.HandleCreateProperty)
	})
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	return otelhttp.NewHandler(r, "property-api")
}
