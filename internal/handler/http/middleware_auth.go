package http

import (
	"context"
	"net/http"

	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via the auth service, and on success stores the authenticated user's
// id in the request context under [utils.UserIDCtxKey] before delegating to
// the next handler. Any failure rejects the request with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("rejected request without valid bearer token")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.Auth.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Err(err).Msg("token validation failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// downstream handlers read the user id from the context instead of
		// re-parsing the token
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID pulls the authenticated user's id set by the auth middleware. A
// missing id on an authed route means a routing bug, answered with 401
// rather than a panic.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in context on authenticated route")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return id, ok
}
