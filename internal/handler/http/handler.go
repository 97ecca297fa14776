// Package http implements the HTTP transport layer of the API server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication and request logging are handled at this
// layer before requests are forwarded to the service layer.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeJSON serializes v as the response body. Encoding failures at this
// point can only be logged; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response body")
	}
}

// decodeJSON parses the request body into v. On failure it writes the 400
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}
