package http

import (
	"net/http"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.Auth.RegisterUser(ctx, req)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	writeJSON(w, r, http.StatusOK, models.AuthResponse{
		Token: token.String(),
		User:  user.Public(),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	user, err := h.services.Auth.Login(ctx, creds)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user logged in")
	writeJSON(w, r, http.StatusOK, models.AuthResponse{
		Token: token.String(),
		User:  user.Public(),
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.services.Auth.GetUser(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user.Public())
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var prefs models.Preferences
	if !decodeJSON(w, r, &prefs) {
		return
	}

	user, err := h.services.Auth.UpdatePreferences(r.Context(), id, prefs)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user.Public())
}
