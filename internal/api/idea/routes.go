package idea

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers idea and dashboard routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/dashboard", h.GetDashboard)

	r.Route("/ideas", func(r chi.Router) {
		r.Post("/", h.CreateIdea)
		r.Get("/", h.ListIdeas)

		r.Route("/draft", func(r chi.Router) {
			r.Put("/", h.UpdateDraft)
			r.Get("/", h.GetDraft)
		})

		r.Route("/{idea_id}", func(r chi.Router) {
			r.Get("/", h.GetIdea)
			r.Delete("/", h.DeleteIdea)
		})
	})
}
