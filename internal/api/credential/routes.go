package credential

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers credential routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/credential", func(r chi.Router) {
		r.Put("/", h.SetCredential)
		r.Get("/", h.GetCredentialStatus)
	})
}
