package service

import (
	"context"
	"sort"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/imf"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
)

// DefaultStartYear bounds indicator queries when no start year is given.
const DefaultStartYear = 2021

// IndicatorService fetches economic observations from the IMF data service and
// reshapes them into the nested indicators contract. The indicator catalog is
// injected so new indicator sets can be supplied without code changes.
type IndicatorService struct {
	imfClient imf.Client
	database  string
	catalog   map[string]string
}

// NewIndicatorService creates a new IndicatorService.
//
// Parameters:
//   - imfClient: client for the IMF data service
//   - database: dataset identifier, e.g. "WEO"
//   - catalog: read-only mapping of indicator code to human description
func NewIndicatorService(imfClient imf.Client, database string, catalog map[string]string) *IndicatorService {
	return &IndicatorService{
		imfClient: imfClient,
		database:  database,
		catalog:   catalog,
	}
}

// GetIndicators fetches observations for the requested indicators and countries,
// normalizes the provider's loose column names into the canonical schema,
// filters by year bounds, and pivots the result into per-country time series.
//
// An empty indicators list queries the full configured catalog. An empty
// countries list leaves the country dimension unfiltered.
//
// Errors: apperrors.ErrNoIndicatorData when nothing survives filtering,
// apperrors.ErrMissingColumns on upstream schema drift, and
// apperrors.ErrUpstreamUnavailable on transport failure.
func (s *IndicatorService) GetIndicators(ctx context.Context, indicators, countries []string, startYear int, endYear *int) (model.EconomicIndicatorsResponse, error) {
	if len(indicators) == 0 {
		indicators = s.catalogCodes()
	}

	rows, err := s.imfClient.FetchDataset(ctx, imf.DatasetQuery{
		Database:   s.database,
		Indicators: indicators,
		Countries:  countries,
	})
	if err != nil {
		return model.EconomicIndicatorsResponse{}, err
	}

	return buildIndicatorsResponse(normalizeColumns(rows), startYear, endYear, s.catalog)
}

// ListIndicatorCatalog returns the configured indicator catalog sorted by code.
// No upstream call is made.
func (s *IndicatorService) ListIndicatorCatalog() []model.CatalogEntry {
	entries := make([]model.CatalogEntry, 0, len(s.catalog))
	for _, code := range s.catalogCodes() {
		entries = append(entries, model.CatalogEntry{
			InputCode:   code,
			Description: s.catalog[code],
		})
	}
	return entries
}

// GetCountries returns the dataset's country codelist as upstream-sourced rows
// with every value stringified.
func (s *IndicatorService) GetCountries(ctx context.Context) ([]imf.Row, error) {
	return s.imfClient.FetchCountries(ctx, s.database)
}

func (s *IndicatorService) catalogCodes() []string {
	codes := make([]string, 0, len(s.catalog))
	for code := range s.catalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
