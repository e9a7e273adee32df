package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

// IndicatorsQuery holds validated /economic-indicators query parameters.
// StartYear defaults when absent; EndYear is nil when no upper bound was given.
type IndicatorsQuery struct {
	Indicators []string
	Countries  []string
	StartYear  int
	EndYear    *int
}

// ParseIndicatorsQuery extracts and validates indicator filters from query
// parameters. indicators and countries accept repeated parameters and
// comma-separated values. start_year defaults to service.DefaultStartYear.
//
// Returns an error wrapping apperrors.ErrInvalidYear if start_year or end_year
// is present but not an integer.
func ParseIndicatorsQuery(values url.Values) (*IndicatorsQuery, error) {
	query := &IndicatorsQuery{
		Indicators: splitListParam(values["indicators"]),
		Countries:  splitListParam(values["countries"]),
		StartYear:  service.DefaultStartYear,
	}

	if raw := values.Get("start_year"); raw != "" {
		startYear, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: start_year %q", apperrors.ErrInvalidYear, raw)
		}
		query.StartYear = startYear
	}

	if raw := values.Get("end_year"); raw != "" {
		endYear, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: end_year %q", apperrors.ErrInvalidYear, raw)
		}
		query.EndYear = &endYear
	}

	return query, nil
}

// splitListParam flattens repeated query parameters, splitting each on commas
// and dropping empty segments.
func splitListParam(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
