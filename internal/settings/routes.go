package settings

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/settings", h.Show)
	r.Post("/settings/locale", h.SetLocale)
}
