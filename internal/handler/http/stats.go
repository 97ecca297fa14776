package http

import (
	"net/http"

	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	stats, err := h.services.Study.Stats(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

// mergeStats accepts a partial stats record and merges it into the stored
// one; it never replaces the record wholesale.
func (h *Handler) mergeStats(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var partial models.UserStats
	if !decodeJSON(w, r, &partial) {
		return
	}

	merged, err := h.services.Study.MergeStats(r.Context(), id, partial)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, merged)
}
