package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/testutil"
)

func TestGameHandler_Prices(t *testing.T) {
	setupHandler := func(mock *testutil.MockDealsClient) *GameHandler {
		return NewGameHandler(service.NewGameService(mock, nil))
	}

	t.Run("returns price history successfully", func(t *testing.T) {
		handler := setupHandler(testutil.NewMockDealsClient())

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/prices", map[string]string{
			"game_id": "123",
		})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.GameHistoryResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.GameID != "123" {
			t.Errorf("Expected game_id '123', got '%s'", response.GameID)
		}
		if len(response.Prices) != 5 {
			t.Errorf("Expected 5 prices, got %d", len(response.Prices))
		}
		if response.EndDate != nil {
			t.Errorf("Expected null end_date, got %v", *response.EndDate)
		}
	})

	t.Run("returns 400 on malformed dates", func(t *testing.T) {
		handler := setupHandler(testutil.NewMockDealsClient())

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/prices", map[string]string{
			"start_date": "01/06/2023",
		})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 when no history matches", func(t *testing.T) {
		handler := setupHandler(testutil.NewMockDealsClient().WithEmptyHistory())

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/prices", map[string]string{
			"game_id": "999",
		})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]string
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response["error"] != apperrors.ErrPriceHistoryNotFound.Error() {
			t.Errorf("Expected '%s' error, got '%s'", apperrors.ErrPriceHistoryNotFound.Error(), response["error"])
		}
	})

	t.Run("returns 503 when the deals API is unreachable", func(t *testing.T) {
		handler := setupHandler(testutil.NewMockDealsClient().WithHistoryError(apperrors.ErrUpstreamUnavailable))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/prices", map[string]string{
			"game_id": "123",
		})
		w := httptest.NewRecorder()

		handler.Prices(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestGameHandler_GamesList(t *testing.T) {
	t.Run("returns resolved titles in configured order", func(t *testing.T) {
		titles := []string{"Elden Ring", "Half Life 2"}
		mock := testutil.NewMockDealsClient().
			WithSearchResult("Elden Ring", testutil.MakeGameID()).
			WithSearchResult("Half Life 2", testutil.MakeGameID())
		handler := NewGameHandler(service.NewGameService(mock, titles))

		req := httptest.NewRequest(http.MethodGet, "/api/games_list", nil)
		w := httptest.NewRecorder()

		handler.GamesList(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.GameIDEntry
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(response))
		}
		if response[0].Name != "Elden Ring" || response[1].Name != "Half Life 2" {
			t.Errorf("Expected configured title order, got %+v", response)
		}
	})

	t.Run("returns 503 when search is unreachable", func(t *testing.T) {
		mock := testutil.NewMockDealsClient().WithSearchError(apperrors.ErrUpstreamUnavailable)
		handler := NewGameHandler(service.NewGameService(mock, []string{"Elden Ring"}))

		req := httptest.NewRequest(http.MethodGet, "/api/games_list", nil)
		w := httptest.NewRecorder()

		handler.GamesList(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})
}
