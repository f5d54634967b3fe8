package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress (a missing scheme defaults to http)
// and applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating http server adapter")
	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts credentials and keeps the issued token. The token is
// taken from the body, falling back to the Authorization header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		auth.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.doJSON(ctx, resty.MethodGet, "/api/auth/me", nil, &user)
	return user, err
}

func (h *httpServerAdapter) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders := make([]models.Folder, 0)
	err := h.doJSON(ctx, resty.MethodGet, "/api/folders", nil, &folders)
	return folders, err
}

func (h *httpServerAdapter) CreateFolder(ctx context.Context, req models.FolderCreateRequest) (models.Folder, error) {
	var folder models.Folder
	err := h.doJSON(ctx, resty.MethodPost, "/api/folders", req, &folder)
	return folder, err
}

func (h *httpServerAdapter) DeleteFolder(ctx context.Context, folderID int64) error {
	return h.doJSON(ctx, resty.MethodDelete, "/api/folders/"+id(folderID), nil, nil)
}

func (h *httpServerAdapter) ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error) {
	decks := make([]models.Deck, 0)
	err := h.doJSON(ctx, resty.MethodGet, "/api/folders/"+id(folderID)+"/decks", nil, &decks)
	return decks, err
}

func (h *httpServerAdapter) ListDecks(ctx context.Context) ([]models.Deck, error) {
	decks := make([]models.Deck, 0)
	err := h.doJSON(ctx, resty.MethodGet, "/api/decks", nil, &decks)
	return decks, err
}

// CreateDeck goes through the folder route when a folder is given, so the
// server checks that the folder belongs to the caller.
func (h *httpServerAdapter) CreateDeck(ctx context.Context, req models.DeckCreateRequest) (models.Deck, error) {
	path := "/api/decks"
	if req.FolderID != nil {
		path = "/api/folders/" + id(*req.FolderID) + "/decks"
	}

	var deck models.Deck
	err := h.doJSON(ctx, resty.MethodPost, path, req, &deck)
	return deck, err
}

func (h *httpServerAdapter) DeleteDeck(ctx context.Context, deckID int64) error {
	return h.doJSON(ctx, resty.MethodDelete, "/api/decks/"+id(deckID), nil, nil)
}

func (h *httpServerAdapter) ListCards(ctx context.Context, deckID int64) ([]models.Card, error) {
	cards := make([]models.Card, 0)
	err := h.doJSON(ctx, resty.MethodGet, "/api/decks/"+id(deckID)+"/cards", nil, &cards)
	return cards, err
}

func (h *httpServerAdapter) CreateCard(ctx context.Context, deckID int64, req models.CardCreateRequest) (models.Card, error) {
	var card models.Card
	err := h.doJSON(ctx, resty.MethodPost, "/api/decks/"+id(deckID)+"/cards", req, &card)
	return card, err
}

func (h *httpServerAdapter) DeleteCard(ctx context.Context, deckID, cardID int64) error {
	return h.doJSON(ctx, resty.MethodDelete, "/api/decks/"+id(deckID)+"/cards/"+id(cardID), nil, nil)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// doJSON sends an authenticated request with an optional JSON body and
// decodes a successful response into result when it is not nil.
func (h *httpServerAdapter) doJSON(ctx context.Context, method, path string, body, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
