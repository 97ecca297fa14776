package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	notes, err := h.services.Study.Notes(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, notes)
}

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var note models.Note
	if !decodeJSON(w, r, &note) {
		return
	}

	saved, err := h.services.Study.SaveNote(r.Context(), id, note)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, saved)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.services.Study.DeleteNote(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
