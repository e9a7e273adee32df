package itad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
)

// Client defines the interface for fetching game price data from the deals API.
// This interface enables dependency injection and testing with mock implementations.
type Client interface {
	GetPriceHistory(ctx context.Context, params HistoryParams) ([]model.PriceEntry, error)
	SearchGames(ctx context.Context, title string) ([]SearchResult, error)
}

// DealsClient provides methods for querying the IsThereAnyDeal API. It wraps two
// HTTP clients because history and search calls carry different timeouts, and
// authenticates via an API key passed as a query parameter.
type DealsClient struct {
	historyClient *http.Client
	searchClient  *http.Client
	baseURL       string
	apiKey        string
}

// NewDealsClient creates a deals API client.
//
// Parameters:
//   - baseURL: API root, e.g. "https://api.isthereanydeal.com"
//   - apiKey: key sent as the "key" query parameter on every call
//   - historyTimeout: per-call timeout for price-history requests
//   - searchTimeout: per-call timeout for title-search requests
func NewDealsClient(baseURL, apiKey string, historyTimeout, searchTimeout time.Duration) *DealsClient {
	return &DealsClient{
		historyClient: &http.Client{Timeout: historyTimeout},
		searchClient:  &http.Client{Timeout: searchTimeout},
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
	}
}

// GetPriceHistory fetches price-history entries for the given query. Entries come
// back in upstream order. A payload that is not a JSON array yields a nil slice,
// not an error; the caller decides whether an empty result is a failure.
//
// Transport failures, timeouts, and non-2xx statuses are returned wrapped in
// apperrors.ErrUpstreamUnavailable.
func (c *DealsClient) GetPriceHistory(ctx context.Context, params HistoryParams) ([]model.PriceEntry, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("since", params.Since)
	if params.GameID != "" {
		query.Set("id", params.GameID)
	}
	if len(params.ShopIDs) > 0 {
		query.Set("shops", strings.Join(params.ShopIDs, ","))
	}

	body, err := c.get(ctx, c.historyClient, "/games/history/v2", query)
	if err != nil {
		return nil, err
	}

	if !startsWithArray(body) {
		return nil, nil
	}

	var entries []model.PriceEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding price history: %w", err)
	}

	return entries, nil
}

// SearchGames searches the deals API for games matching a human-readable title.
// Results keep upstream relevance order; the first entry is the best match.
func (c *DealsClient) SearchGames(ctx context.Context, title string) ([]SearchResult, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("title", title)

	body, err := c.get(ctx, c.searchClient, "/games/search/v1", query)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding search results: %w", err)
	}

	return results, nil
}

// get executes a GET request against the deals API and returns the raw body.
// Any transport error or non-success status is wrapped in ErrUpstreamUnavailable
// so callers can distinguish provider outages from empty results.
func (c *DealsClient) get(ctx context.Context, client *http.Client, path string, query url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrUpstreamUnavailable, path, resp.StatusCode)
	}

	return body, nil
}

// startsWithArray reports whether a JSON payload is array-shaped.
func startsWithArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
