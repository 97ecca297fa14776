package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarimov/study-keeper/models"
)

// Exam endpoints live under /tests, matching the resource name the clients
// were shipped with.

func (h *Handler) listExams(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	exams, err := h.services.Study.Exams(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, exams)
}

func (h *Handler) saveExam(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var exam models.Exam
	if !decodeJSON(w, r, &exam) {
		return
	}

	saved, err := h.services.Study.SaveExam(r.Context(), id, exam)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, saved)
}

func (h *Handler) deleteExam(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.services.Study.DeleteExam(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
