package projects

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.List)
	r.Get("/projects/search", h.Search)
	r.Post("/projects", h.Create)
	r.Delete("/projects/{id}", h.Delete)
}
