package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	decks, err := h.services.Study.Decks(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, decks)
}

// saveDeck serves both POST /decks and PUT /decks/{id}. On the PUT form the
// path id wins over whatever id the body carries.
func (h *Handler) saveDeck(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var deck models.Deck
	if !decodeJSON(w, r, &deck) {
		return
	}
	if pathID := chi.URLParam(r, "id"); pathID != "" {
		deck.ID = pathID
	}

	saved, err := h.services.Study.SaveDeck(r.Context(), id, deck)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, saved)
}

func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.services.Study.DeleteDeck(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
