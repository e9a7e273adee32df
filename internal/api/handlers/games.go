package handlers

import (
	"errors"
	"net/http"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/request"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/response"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

// GameHandler handles HTTP requests for game price endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the gameService.
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new GameHandler with the provided service dependency.
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// Prices handles GET requests for game price history.
//
// Endpoint: GET /api/prices?game_id&shop_ids&start_date&end_date
// Response: 200 OK with GameHistoryResponse
// Error: 400 Bad Request on malformed dates
// Error: 404 Not Found when no price history matches
// Error: 503 Service Unavailable when the deals API cannot be reached
func (h *GameHandler) Prices(w http.ResponseWriter, r *http.Request) {

	query, err := request.ParseGameHistoryQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	history, err := h.gameService.GetGameHistory(r.Context(), query.GameID, query.ShopIDs, query.StartDate, query.EndDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrPriceHistoryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceHistoryNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrUpstreamUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// GamesList handles GET requests to resolve the configured game titles to
// upstream ids. Titles without a search result are omitted from the list.
//
// Endpoint: GET /api/games_list
// Response: 200 OK with array of GameIDEntry
// Error: 503 Service Unavailable when the deals API cannot be reached
func (h *GameHandler) GamesList(w http.ResponseWriter, r *http.Request) {

	entries, err := h.gameService.ResolveTitleIDs(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrUpstreamUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGamesList.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}
