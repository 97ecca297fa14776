package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/internal/service"
	"github.com/akarimov/study-keeper/internal/store"
	"github.com/akarimov/study-keeper/models"
)

// newTestServer spins up the full router over real services and an
// in-memory document store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	docs, err := store.NewFileDocumentStore("", logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(&store.Storages{Documents: docs}, config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "study-keeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

// doRequest performs one JSON API call. token may be empty for public
// routes; out may be nil when the body is irrelevant.
func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body, out any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// registerUser registers a fresh account and returns its token and profile.
func registerUser(t *testing.T, srv *httptest.Server, email, name string) models.AuthResponse {
	t.Helper()

	var auth models.AuthResponse
	resp := doRequest(t, srv, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Email:    email,
		Password: "correct horse",
		Name:     name,
	}, &auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, auth.Token)
	return auth
}
