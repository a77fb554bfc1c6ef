package handler

import (
	"fmt"
	"net/http"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// ListArtists — список всех исполнителей.
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.ListArtists(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "artists", "Artists", artists)
}

// SearchArtists — поиск исполнителей по search_term.
func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")

	result, err := h.artists.SearchArtists(r.Context(), term)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.logger.Info("artists search", "term", term, "count", result.Count)
	h.render(w, r, http.StatusOK, "search", "Artist Search",
		searchView{Kind: "artists", Term: term, Result: result})
}

// ShowArtist — страница исполнителя с прошедшими и предстоящими концертами.
func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	detail, err := h.artists.GetArtistDetail(r.Context(), id)
	if err != nil {
		h.readError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_artist", detail.Name, detail)
}

func (h *Handler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	view := h.newFormView(r.Context(), "/artists/create", false, ArtistForm{}, nil)
	h.render(w, r, http.StatusOK, "artist_form", "New Artist", view)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	form := artistFormFromValues(r.PostForm)
	failed := fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name)

	imageLink := form.ImageLink
	key, status, errs, err := h.prepareArtist(r, &form)
	if err == nil {
		var artist *domain.Artist
		artist, err = h.artists.CreateArtist(r.Context(), form.Input())
		if err == nil {
			h.redirect(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
			return
		}
		h.discardImage(r.Context(), key)
		form.ImageLink = imageLink
		status, errs = writeStatus(err), writeErrors(err)
	}

	h.logger.Warn("artist not created", "name", form.Name, "status", status, "error", err)
	view := h.newFormView(r.Context(), "/artists/create", false, form, errs)
	h.render(w, r, status, "artist_form", "New Artist", view, failed)
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	artist, err := h.artists.GetArtist(r.Context(), id)
	if err != nil {
		h.readError(w, r, err)
		return
	}

	view := h.newFormView(r.Context(), fmt.Sprintf("/artists/%d/edit", id), true, artistFormFromEntity(artist), nil)
	h.render(w, r, http.StatusOK, "artist_form", "Edit Artist", view)
}

func (h *Handler) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	form := artistFormFromValues(r.PostForm)
	failed := fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name)

	imageLink := form.ImageLink
	key, status, errs, err := h.prepareArtist(r, &form)
	if err == nil {
		var artist *domain.Artist
		artist, err = h.artists.UpdateArtist(r.Context(), id, form.Input())
		if err == nil {
			h.redirect(w, r, fmt.Sprintf("/artists/%d", id),
				fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
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

	h.logger.Warn("artist not updated", "artist_id", id, "status", status, "error", err)
	view := h.newFormView(r.Context(), fmt.Sprintf("/artists/%d/edit", id), true, form, errs)
	h.render(w, r, status, "artist_form", "Edit Artist", view, failed)
}

// DeleteArtist — удаление исполнителя вместе с его концертами.
func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithJSON(w, http.StatusNotFound, map[string]bool{"success": false}, h.logger)
		return
	}

	artist, err := h.artists.DeleteArtist(r.Context(), id)
	if err != nil {
		status := writeStatus(err)
		h.logger.Warn("artist not deleted", "artist_id", id, "status", status, "error", err)
		if status != http.StatusNotFound {
			h.flashes.Add(w, r, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id))
		}
		respondWithJSON(w, status, map[string]bool{"success": false}, h.logger)
		return
	}

	h.flashes.Add(w, r, fmt.Sprintf("Artist %s was successfully deleted!", artist.Name))
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}

func (h *Handler) prepareArtist(r *http.Request, form *ArtistForm) (string, int, map[string]string, error) {
	if errs := validateForm(*form); errs != nil {
		return "", http.StatusBadRequest, errs, errValidation
	}

	link, key, err := h.uploadImage(r, "artists")
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
