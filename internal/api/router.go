package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/api/handler"
	apimw "github.com/ricirt/producer-consumer/internal/api/middleware"
	"github.com/ricirt/producer-consumer/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route.
func NewRouter(
	svc *service.ItemService,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	// --- handler instances ---
	ih := handler.NewItemHandler(svc, logger)
	hh := handler.NewHealthHandler(func() int {
		depth, _ := svc.QueueDepth()
		return depth
	})

	// --- routes ---
	r.Get("/health", hh.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/items", ih.Submit)
		r.Get("/queue", ih.GetQueue)

		r.Get("/consumptions/stats", ih.Stats)
		r.Get("/consumptions", ih.ListConsumptions)
	})

	return r
}
