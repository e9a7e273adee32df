package request

import (
	"fmt"
	"net/url"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
)

// GameHistoryQuery holds validated /prices query parameters. Dates stay in
// their raw YYYY-MM-DD form; the service owns the ISO-8601 conversion.
type GameHistoryQuery struct {
	GameID    string
	ShopIDs   []string
	StartDate string
	EndDate   string
}

// ParseGameHistoryQuery extracts and validates price-history filters from query
// parameters. All parameters are optional. shop_ids accepts repeated parameters
// and comma-separated values.
//
// Returns an error wrapping apperrors.ErrInvalidDate if start_date or end_date
// is present but not a valid YYYY-MM-DD date.
func ParseGameHistoryQuery(values url.Values) (*GameHistoryQuery, error) {
	query := &GameHistoryQuery{
		GameID:    values.Get("game_id"),
		ShopIDs:   splitListParam(values["shop_ids"]),
		StartDate: values.Get("start_date"),
		EndDate:   values.Get("end_date"),
	}

	if err := validateDate("start_date", query.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate("end_date", query.EndDate); err != nil {
		return nil, err
	}

	return query, nil
}

func validateDate(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s %q", apperrors.ErrInvalidDate, name, value)
	}
	return nil
}
