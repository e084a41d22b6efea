package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arcadia-data/appraise/internal/authority"
	"github.com/arcadia-data/appraise/internal/config"
	"github.com/arcadia-data/appraise/internal/events"
	"github.com/arcadia-data/appraise/internal/store"
)

func NewRouter(s store.Store, ev events.Client, auth authority.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	datasets := NewDatasetsHandler(s, ev)
	rank := NewRankHandler(s, ev, auth, cfg, logger)
	qual := NewQualityHandler(s, ev)
	matrix := NewMatrixHandler(s, cfg)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/datasets", datasets.Create)
		r.Get("/datasets", datasets.List)
		r.Get("/datasets/{id}", datasets.Get)
		r.Put("/datasets/{id}/columns", datasets.ReplaceColumns)

		r.Post("/rank", rank.Rank)
		r.Get("/datasets/{id}/quality", qual.Report)
		r.Post("/quality/analyze", qual.Analyze)
		r.Post("/matrix", matrix.Build)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
