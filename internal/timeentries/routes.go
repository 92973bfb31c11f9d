package timeentries

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/projects/{id}/entries", h.ListByProject)
	r.Post("/projects/{id}/entries", h.CreateManual)
	r.Post("/projects/{id}/entries/start", h.Start)
	r.Post("/projects/{id}/entries/combine", h.Combine)
	r.Post("/entries/{id}/stop", h.Stop)
	r.Patch("/entries/{id}", h.Patch)
	r.Delete("/entries/{id}", h.Delete)
}
