package handlers

import (
	"errors"
	"net/http"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/request"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/response"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

// IndicatorHandler handles HTTP requests for economic indicator endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the indicatorService.
type IndicatorHandler struct {
	indicatorService *service.IndicatorService
}

// NewIndicatorHandler creates a new IndicatorHandler with the provided service dependency.
func NewIndicatorHandler(indicatorService *service.IndicatorService) *IndicatorHandler {
	return &IndicatorHandler{
		indicatorService: indicatorService,
	}
}

// EconomicIndicators handles GET requests for pivoted economic indicator data.
//
// Endpoint: GET /api/economic-indicators?indicators&countries&start_year&end_year
// Response: 200 OK with EconomicIndicatorsResponse
// Error: 400 Bad Request on non-integer years
// Error: 404 Not Found when filtering leaves no data
// Error: 500 Internal Server Error on upstream schema drift (missing columns)
// Error: 503 Service Unavailable when the IMF service cannot be reached
func (h *IndicatorHandler) EconomicIndicators(w http.ResponseWriter, r *http.Request) {

	query, err := request.ParseIndicatorsQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidYear.Error(), err.Error())
		return
	}

	indicators, err := h.indicatorService.GetIndicators(r.Context(), query.Indicators, query.Countries, query.StartYear, query.EndYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoIndicatorData) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrNoIndicatorData.Error(), err.Error())
			return
		}
		var missingErr *apperrors.MissingColumnsError
		if errors.As(err, &missingErr) {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrMissingColumns.Error(), map[string]any{
				"missing":   missingErr.Missing,
				"available": missingErr.Available,
			})
			return
		}
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrUpstreamUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveIndicators.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, indicators)
}

// IndicatorsList handles GET requests for the static indicator catalog.
//
// Endpoint: GET /api/indicators_list
// Response: 200 OK with array of CatalogEntry, sorted by code
func (h *IndicatorHandler) IndicatorsList(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.indicatorService.ListIndicatorCatalog())
}

// CountriesList handles GET requests for the dataset's country codelist.
//
// Endpoint: GET /api/countries_list
// Response: 200 OK with array of {input_code, description} rows
// Error: 503 Service Unavailable when the IMF service cannot be reached
func (h *IndicatorHandler) CountriesList(w http.ResponseWriter, r *http.Request) {

	countries, err := h.indicatorService.GetCountries(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrUpstreamUnavailable.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCountries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, countries)
}
