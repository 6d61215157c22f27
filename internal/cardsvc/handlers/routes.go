package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/health", h.HealthHandler)
	r.Get("/allcards", h.ListCards)
	r.Post("/addcard", h.AddCard)
	r.Put("/updatecard", h.UpdateCard)
	r.Delete("/deletecard/{id}", h.DeleteCard)

	// wrong method on a known path is reported the same as an unknown path
	r.NotFound(h.NotFoundHandler)
	r.MethodNotAllowed(h.NotFoundHandler)
}
