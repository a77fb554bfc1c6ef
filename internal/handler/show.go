package handler

import (
	"net/http"
	"time"
)

const (
	showCreatedFlash = "Show was successfully listed!"
	showFailedFlash  = "There was an error and your show could not be listed"
)

// ListShows — все концерты по возрастанию времени начала.
func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.ListShows(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "shows", "Shows", shows)
}

// CreateShowForm — форма нового концерта, время по умолчанию текущее.
func (h *Handler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	form := ShowForm{StartTime: time.Now().UTC().Format(startTimeLayouts[0])}
	view := h.newFormView(r.Context(), "/shows/create", false, form, nil)
	h.render(w, r, http.StatusOK, "show_form", "New Show", view)
}

// CreateShow — обработка формы нового концерта.
func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	form := showFormFromValues(r.PostForm)

	if errs := validateForm(form); errs != nil {
		h.logger.Warn("show form invalid", "errors", errs)
		view := h.newFormView(r.Context(), "/shows/create", false, form, errs)
		h.render(w, r, http.StatusBadRequest, "show_form", "New Show", view, showFailedFlash)
		return
	}

	in, err := form.Input()
	if err == nil {
		if _, err = h.shows.CreateShow(r.Context(), in); err == nil {
			h.redirect(w, r, "/", showCreatedFlash)
			return
		}
	}

	status := writeStatus(err)
	if status == http.StatusNotFound {
		status = http.StatusUnprocessableEntity
	}
	h.logger.Warn("show not created",
		"artist_id", form.ArtistID,
		"venue_id", form.VenueID,
		"status", status,
		"error", err,
	)
	view := h.newFormView(r.Context(), "/shows/create", false, form, writeErrors(err))
	h.render(w, r, status, "show_form", "New Show", view, showFailedFlash)
}
