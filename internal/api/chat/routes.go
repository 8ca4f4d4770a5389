package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers agent catalog and chat routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/agents", h.ListAgents)

	r.Route("/ideas/{idea_id}/chat/{agent_id}", func(r chi.Router) {
		r.Get("/", h.GetHistory)
		r.Post("/", h.SendMessage)
	})
}
