package networking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/api.go -package=networkingmock -source=client.go

// API is everything the screens need from the backend
type API interface {
	ListCharacters(ctx context.Context) ([]Character, error)
	CreateCharacter(ctx context.Context, character NewCharacter) (Character, error)
	ListInventory(ctx context.Context, characterID int) ([]Pokemon, error)
	Gather(ctx context.Context, characterID int) (GatherResult, error)
	ListDecks(ctx context.Context, characterID int) ([]Deck, error)
	ListDeckDetails(ctx context.Context, characterID int) ([]DeckDetail, error)
	CreateDeck(ctx context.Context, characterID int, deck NewDeck) error
}

const requestIDHeader = "X-Request-Id"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Used for tests where the server is an httptest.Server
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListCharacters(ctx context.Context) ([]Character, error) {
	return getJSON[[]Character](ctx, c, "fetch characters", "/character")
}

func (c *Client) CreateCharacter(ctx context.Context, character NewCharacter) (Character, error) {
	return postJSON[NewCharacter, Character](ctx, c, "create character", "/character", character)
}

func (c *Client) ListInventory(ctx context.Context, characterID int) ([]Pokemon, error) {
	return getJSON[[]Pokemon](ctx, c, "fetch pokemon", fmt.Sprintf("/character/%d", characterID))
}

func (c *Client) Gather(ctx context.Context, characterID int) (GatherResult, error) {
	op := "gather pokemon"
	body, err := c.do(ctx, op, http.MethodPost, fmt.Sprintf("/character/%d/pokemon", characterID), nil)
	if err != nil {
		return GatherResult{}, err
	}

	return decodeJSON[GatherResult](op, body)
}

func (c *Client) ListDecks(ctx context.Context, characterID int) ([]Deck, error) {
	return getJSON[[]Deck](ctx, c, "fetch decks", fmt.Sprintf("/deck/%d", characterID))
}

func (c *Client) ListDeckDetails(ctx context.Context, characterID int) ([]DeckDetail, error) {
	op := "fetch decks"
	body, err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("/character/%d/decks", characterID), nil)
	if err != nil {
		return nil, err
	}

	decks, err := decodeDeckDetails(body)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	return decks, nil
}

// The backend doesn't promise a body for deck creation so nothing is decoded
func (c *Client) CreateDeck(ctx context.Context, characterID int, deck NewDeck) error {
	payload, err := json.Marshal(deck)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, "create deck", http.MethodPost, fmt.Sprintf("/deck/%d", characterID), payload)
	return err
}

func getJSON[T any](ctx context.Context, c *Client, op string, path string) (T, error) {
	body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		var result T
		return result, err
	}

	return decodeJSON[T](op, body)
}

func postJSON[Req any, Res any](ctx context.Context, c *Client, op string, path string, reqBody Req) (Res, error) {
	var result Res

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return result, err
	}

	body, err := c.do(ctx, op, http.MethodPost, path, payload)
	if err != nil {
		return result, err
	}

	return decodeJSON[Res](op, body)
}

func decodeJSON[T any](op string, body []byte) (T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to %s: %w", op, err)
	}

	return result, nil
}

// Sends the request and returns the body of a 2xx response. Anything else becomes an *HTTPError.
func (c *Client) do(ctx context.Context, op string, method string, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := internalLogger.WithValues("requestId", requestID, "method", method, "path", path)
	logger.V(1).Info("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(err, "request failed")
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := newHTTPError(op, resp.StatusCode, body)
		logger.Error(httpErr, "non 2xx response", "status", resp.StatusCode)
		return nil, httpErr
	}

	logger.V(1).Info("got response", "status", resp.StatusCode, "bytes", len(body))
	return body, nil
}
