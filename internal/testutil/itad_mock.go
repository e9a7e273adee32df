package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/itad"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
)

// MockDealsClient is a mock implementation of itad.Client for testing.
// It returns predefined test data instead of making actual API calls.
// SearchGames is safe for concurrent use, matching the fan-out in
// GameService.ResolveTitleIDs.
type MockDealsClient struct {
	// HistoryEntries is returned from GetPriceHistory
	HistoryEntries []model.PriceEntry
	// HistoryError is the error to return from GetPriceHistory
	HistoryError error
	// SearchResults maps a title to its search results
	SearchResults map[string][]itad.SearchResult
	// SearchError is the error to return from SearchGames
	SearchError error
	// SearchDelays simulates per-title network latency so tests can force
	// out-of-order completion
	SearchDelays map[string]time.Duration

	// LastHistoryParams records the params of the most recent history call
	LastHistoryParams itad.HistoryParams
	// HistoryCalls tracks how many times GetPriceHistory was called
	HistoryCalls int

	mu sync.Mutex
	// SearchedTitles records every title passed to SearchGames, in call order
	SearchedTitles []string
}

// NewMockDealsClient creates a new mock deals client with default test data:
// five days of price history and no search results.
func NewMockDealsClient() *MockDealsClient {
	return &MockDealsClient{
		HistoryEntries: CreateMockPriceHistory(5),
		SearchResults:  map[string][]itad.SearchResult{},
	}
}

// GetPriceHistory returns the configured entries or error.
func (m *MockDealsClient) GetPriceHistory(_ context.Context, params itad.HistoryParams) ([]model.PriceEntry, error) {
	m.HistoryCalls++
	m.LastHistoryParams = params
	if m.HistoryError != nil {
		return nil, m.HistoryError
	}
	return m.HistoryEntries, nil
}

// SearchGames returns the configured results for a title, sleeping first when a
// delay is configured for it.
func (m *MockDealsClient) SearchGames(_ context.Context, title string) ([]itad.SearchResult, error) {
	if delay, ok := m.SearchDelays[title]; ok {
		time.Sleep(delay)
	}

	m.mu.Lock()
	m.SearchedTitles = append(m.SearchedTitles, title)
	m.mu.Unlock()

	if m.SearchError != nil {
		return nil, m.SearchError
	}
	return m.SearchResults[title], nil
}

// WithHistoryError configures the mock to return the specified error from
// GetPriceHistory.
func (m *MockDealsClient) WithHistoryError(err error) *MockDealsClient {
	m.HistoryError = err
	return m
}

// WithHistoryEntries configures the mock to return the specified entries.
func (m *MockDealsClient) WithHistoryEntries(entries []model.PriceEntry) *MockDealsClient {
	m.HistoryEntries = entries
	return m
}

// WithEmptyHistory configures the mock to return no entries.
func (m *MockDealsClient) WithEmptyHistory() *MockDealsClient {
	m.HistoryEntries = nil
	return m
}

// WithSearchResult configures the first search result for a title.
func (m *MockDealsClient) WithSearchResult(title, id string) *MockDealsClient {
	m.SearchResults[title] = []itad.SearchResult{{ID: id, Title: title}}
	return m
}

// WithSearchError configures the mock to return the specified error from
// SearchGames.
func (m *MockDealsClient) WithSearchError(err error) *MockDealsClient {
	m.SearchError = err
	return m
}

// CreateMockPriceHistory creates `days` price-history entries with daily
// timestamps starting at 2024-01-01T00:00:00Z, in upstream (ascending) order.
func CreateMockPriceHistory(days int) []model.PriceEntry {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	entries := make([]model.PriceEntry, days)
	for i := 0; i < days; i++ {
		entries[i] = MakePriceEntry(
			start.AddDate(0, 0, i).Format(time.RFC3339),
			19.99-float64(i),
		)
	}
	return entries
}

// MakePriceEntry creates a single pass-through price entry with realistic shop
// and deal payloads.
func MakePriceEntry(timestamp string, price float64) model.PriceEntry {
	return model.PriceEntry{
		Timestamp: timestamp,
		Shop: map[string]any{
			"id":   float64(61),
			"name": "Steam",
		},
		Deal: map[string]any{
			"price": map[string]any{
				"amount":   price,
				"currency": "USD",
			},
			"regular": map[string]any{
				"amount":   59.99,
				"currency": "USD",
			},
			"cut": float64(20),
		},
	}
}
