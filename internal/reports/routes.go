package reports

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/projects/{id}/report.pdf", h.Export)
}
