package http

import (
	"net/http"

	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	chats, err := h.services.Study.Chats(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, chats)
}

func (h *Handler) saveChat(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var chat models.ChatSession
	if !decodeJSON(w, r, &chat) {
		return
	}

	saved, err := h.services.Study.SaveChat(r.Context(), id, chat)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, saved)
}
