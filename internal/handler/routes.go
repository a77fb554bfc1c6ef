package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает chi-маршруты сайта
func NewRouter(h *Handler, logger *slog.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(SanitizeForm(logger))

	r.NotFound(h.NotFound)

	r.Get("/", h.Home)
	r.Get("/healthz", h.Health)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.Post("/search", h.SearchVenues)
		r.Get("/create", h.CreateVenueForm)
		r.Post("/create", h.CreateVenue)
		r.Get("/{id}", h.ShowVenue)
		r.Delete("/{id}", h.DeleteVenue)
		r.Get("/{id}/edit", h.EditVenueForm)
		r.Post("/{id}/edit", h.EditVenue)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.Post("/search", h.SearchArtists)
		r.Get("/create", h.CreateArtistForm)
		r.Post("/create", h.CreateArtist)
		r.Get("/{id}", h.ShowArtist)
		r.Delete("/{id}", h.DeleteArtist)
		r.Get("/{id}/edit", h.EditArtistForm)
		r.Post("/{id}/edit", h.EditArtist)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/create", h.CreateShowForm)
		r.Post("/create", h.CreateShow)
	})

	return r
}
