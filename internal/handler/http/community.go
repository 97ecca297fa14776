package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) listCommunity(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Community.List(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) publishCommunity(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	author, err := h.services.Auth.GetUser(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	var item models.CommunityItem
	if !decodeJSON(w, r, &item) {
		return
	}

	published, err := h.services.Community.Publish(r.Context(), author, item)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, published)
}

func (h *Handler) incrementDownload(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Community.IncrementDownload(r.Context(), chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
