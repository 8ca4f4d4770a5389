package analysis

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers analysis routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/ideas/{idea_id}/analysis", func(r chi.Router) {
		r.Post("/", h.GenerateAnalysis)
		r.Get("/", h.GetAnalysis)
		r.Get("/export", h.ExportAnalysis)
	})
}
