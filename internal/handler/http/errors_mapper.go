package http

import (
	"errors"
	"net/http"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/service"
)

// serviceError maps a service-layer error onto an HTTP response. Sentinel
// errors carry their message to the client; anything else is an opaque 500.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrValidation):
		log.Err(err).Msg("request rejected by validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrEmailTaken):
		log.Err(err).Msg("email already registered")
		http.Error(w, service.ErrEmailTaken.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Err(err).Msg("invalid credentials")
		http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound):
		log.Err(err).Msg("user not found")
		http.Error(w, service.ErrUserNotFound.Error(), http.StatusNotFound)
	default:
		log.Err(err).Msg("unexpected service error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
