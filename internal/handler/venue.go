package handler

import (
	"fmt"
	"net/http"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// ListVenues — площадки, сгруппированные по городу и штату.
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.venues.ListVenuesByArea(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "venues", "Venues", areas)
}

// SearchVenues — поиск площадок по search_term.
func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")

	result, err := h.venues.SearchVenues(r.Context(), term)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.logger.Info("venues search", "term", term, "count", result.Count)
	h.render(w, r, http.StatusOK, "search", "Venue Search",
		searchView{Kind: "venues", Term: term, Result: result})
}

// ShowVenue — страница площадки с прошедшими и предстоящими концертами.
func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	detail, err := h.venues.GetVenueDetail(r.Context(), id)
	if err != nil {
		h.readError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_venue", detail.Name, detail)
}

// CreateVenueForm — пустая форма новой площадки.
func (h *Handler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	view := h.newFormView(r.Context(), "/venues/create", false, VenueForm{}, nil)
	h.render(w, r, http.StatusOK, "venue_form", "New Venue", view)
}

// CreateVenue — обработка формы новой площадки.
func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	form := venueFormFromValues(r.PostForm)
	failed := fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name)

	imageLink := form.ImageLink
	key, status, errs, err := h.prepareVenue(r, &form)
	if err == nil {
		var venue *domain.Venue
		venue, err = h.venues.CreateVenue(r.Context(), form.Input())
		if err == nil {
			h.redirect(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
			return
		}
		h.discardImage(r.Context(), key)
		form.ImageLink = imageLink
		status, errs = writeStatus(err), writeErrors(err)
	}

	h.logger.Warn("venue not created", "name", form.Name, "status", status, "error", err)
	view := h.newFormView(r.Context(), "/venues/create", false, form, errs)
	h.render(w, r, status, "venue_form", "New Venue", view, failed)
}

// EditVenueForm — форма редактирования, заполненная текущими данными.
func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	venue, err := h.venues.GetVenue(r.Context(), id)
	if err != nil {
		h.readError(w, r, err)
		return
	}

	view := h.newFormView(r.Context(), fmt.Sprintf("/venues/%d/edit", id), true, venueFormFromEntity(venue), nil)
	h.render(w, r, http.StatusOK, "venue_form", "Edit Venue", view)
}

// EditVenue — обработка формы редактирования площадки.
func (h *Handler) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	form := venueFormFromValues(r.PostForm)
	failed := fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name)

	imageLink := form.ImageLink
	key, status, errs, err := h.prepareVenue(r, &form)
	if err == nil {
		var venue *domain.Venue
		venue, err = h.venues.UpdateVenue(r.Context(), id, form.Input())
		if err == nil {
			h.redirect(w, r, fmt.Sprintf("/venues/%d", id),
				fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
			return
		}
		h.discardImage(r.Context(), key)
		form.ImageLink = imageLink
		if status = writeStatus(err); status == http.StatusNotFound {
			h.NotFound(w, r)
			return
		}
		errs = writeErrors(err)
	}

	h.logger.Warn("venue not updated", "venue_id", id, "status", status, "error", err)
	view := h.newFormView(r.Context(), fmt.Sprintf("/venues/%d/edit", id), true, form, errs)
	h.render(w, r, status, "venue_form", "Edit Venue", view, failed)
}

// DeleteVenue — удаление площадки вместе с её концертами, ответ {"success": bool}.
func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithJSON(w, http.StatusNotFound, map[string]bool{"success": false}, h.logger)
		return
	}

	venue, err := h.venues.DeleteVenue(r.Context(), id)
	if err != nil {
		status := writeStatus(err)
		h.logger.Warn("venue not deleted", "venue_id", id, "status", status, "error", err)
		if status != http.StatusNotFound {
			h.flashes.Add(w, r, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		}
		respondWithJSON(w, status, map[string]bool{"success": false}, h.logger)
		return
	}

	h.flashes.Add(w, r, fmt.Sprintf("Venue %s was successfully deleted!", venue.Name))
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}

// prepareVenue валидирует форму и загружает изображение, если оно передано.
// Возвращает ключ загруженного объекта, чтобы удалить его при неудачной записи.
func (h *Handler) prepareVenue(r *http.Request, form *VenueForm) (string, int, map[string]string, error) {
	if errs := validateForm(*form); errs != nil {
		return "", http.StatusBadRequest, errs, errValidation
	}

	link, key, err := h.uploadImage(r, "venues")
	if err != nil {
		if isImageValidationError(err) {
			return "", http.StatusBadRequest, map[string]string{"image_file": err.Error()}, err
		}
		return "", http.StatusInternalServerError, nil, err
	}
	if link != "" {
		form.ImageLink = link
	}
	return key, 0, nil, nil
}
