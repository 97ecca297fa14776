package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/akarimov/study-keeper/internal/config"
	"github.com/akarimov/study-keeper/internal/logger"
	"github.com/akarimov/study-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) UpdatePreferences(ctx context.Context, prefs models.Preferences) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(prefs).
		Put("/api/user/preferences")
	if err != nil {
		return fmt.Errorf("update preferences request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListDecks(ctx context.Context) ([]models.Deck, error) {
	return listResource[models.Deck](ctx, h, "/api/decks")
}

func (h *httpServerAdapter) CreateDeck(ctx context.Context, deck models.Deck) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/decks", deck)
}

func (h *httpServerAdapter) UpdateDeck(ctx context.Context, deck models.Deck) error {
	return h.writeResource(ctx, resty.MethodPut, "/api/decks/"+url.PathEscape(deck.ID), deck)
}

func (h *httpServerAdapter) DeleteDeck(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/decks/"+url.PathEscape(id))
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	return listResource[models.Note](ctx, h, "/api/notes")
}

func (h *httpServerAdapter) UpsertNote(ctx context.Context, note models.Note) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/notes", note)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/notes/"+url.PathEscape(id))
}

func (h *httpServerAdapter) ListExams(ctx context.Context) ([]models.Exam, error) {
	return listResource[models.Exam](ctx, h, "/api/tests")
}

func (h *httpServerAdapter) CreateExam(ctx context.Context, exam models.Exam) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/tests", exam)
}

func (h *httpServerAdapter) DeleteExam(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/tests/"+url.PathEscape(id))
}

func (h *httpServerAdapter) GetStats(ctx context.Context) (models.UserStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/stats")
	if err != nil {
		return models.UserStats{}, fmt.Errorf("get stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserStats{}, err
	}

	var stats models.UserStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("decode stats response: %w", err)
	}
	return stats, nil
}

func (h *httpServerAdapter) SaveStats(ctx context.Context, stats models.UserStats) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/stats", stats)
}

func (h *httpServerAdapter) ListChats(ctx context.Context) ([]models.ChatSession, error) {
	return listResource[models.ChatSession](ctx, h, "/api/chats")
}

func (h *httpServerAdapter) UpsertChat(ctx context.Context, chat models.ChatSession) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/chats", chat)
}

func (h *httpServerAdapter) ListCommunity(ctx context.Context) ([]models.CommunityItem, error) {
	// public endpoint, but sending the token is harmless
	return listResource[models.CommunityItem](ctx, h, "/api/community")
}

func (h *httpServerAdapter) PublishCommunity(ctx context.Context, item models.CommunityItem) error {
	return h.writeResource(ctx, resty.MethodPost, "/api/community", item)
}

func (h *httpServerAdapter) IncrementDownload(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Post("/api/community/" + url.PathEscape(id) + "/download")
	if err != nil {
		return fmt.Errorf("increment download request: %w", err)
	}

	return mapHTTPError(resp)
}

func listResource[T any](ctx context.Context, h *httpServerAdapter, path string) ([]T, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return items, nil
}

func (h *httpServerAdapter) writeResource(ctx context.Context, method, path string, body any) error {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case resty.MethodPut:
		resp, err = req.Put(path)
	default:
		resp, err = req.Post(path)
	}
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) deleteResource(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
