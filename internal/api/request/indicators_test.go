package request

import (
	"errors"
	"net/url"
	"testing"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

func TestParseIndicatorsQuery(t *testing.T) {
	t.Run("applies defaults when parameters are absent", func(t *testing.T) {
		query, err := ParseIndicatorsQuery(url.Values{})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if query.StartYear != service.DefaultStartYear {
			t.Errorf("Expected default start year %d, got %d", service.DefaultStartYear, query.StartYear)
		}
		if query.EndYear != nil {
			t.Errorf("Expected nil end year, got %v", *query.EndYear)
		}
		if len(query.Indicators) != 0 || len(query.Countries) != 0 {
			t.Errorf("Expected empty lists, got %v / %v", query.Indicators, query.Countries)
		}
	})

	t.Run("accepts repeated and comma-separated list values", func(t *testing.T) {
		values := url.Values{}
		values.Add("indicators", "LUR,PCPIPCH")
		values.Add("indicators", "NGDPDPC")
		values.Add("countries", " USA , BRA ")

		query, err := ParseIndicatorsQuery(values)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(query.Indicators) != 3 {
			t.Errorf("Expected 3 indicators, got %v", query.Indicators)
		}
		if len(query.Countries) != 2 || query.Countries[0] != "USA" {
			t.Errorf("Expected trimmed countries [USA BRA], got %v", query.Countries)
		}
	})

	t.Run("parses explicit year bounds", func(t *testing.T) {
		values := url.Values{}
		values.Set("start_year", "2019")
		values.Set("end_year", "2022")

		query, err := ParseIndicatorsQuery(values)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if query.StartYear != 2019 {
			t.Errorf("Expected start year 2019, got %d", query.StartYear)
		}
		if query.EndYear == nil || *query.EndYear != 2022 {
			t.Errorf("Expected end year 2022, got %v", query.EndYear)
		}
	})

	t.Run("rejects non-integer years", func(t *testing.T) {
		values := url.Values{}
		values.Set("end_year", "next year")

		_, err := ParseIndicatorsQuery(values)
		if !errors.Is(err, apperrors.ErrInvalidYear) {
			t.Errorf("Expected ErrInvalidYear, got %v", err)
		}
	})
}

func TestParseGameHistoryQuery(t *testing.T) {
	t.Run("passes through optional filters", func(t *testing.T) {
		values := url.Values{}
		values.Set("game_id", "abc")
		values.Set("shop_ids", "61,35")
		values.Set("start_date", "2023-01-01")
		values.Set("end_date", "2023-12-31")

		query, err := ParseGameHistoryQuery(values)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if query.GameID != "abc" {
			t.Errorf("Expected game id 'abc', got '%s'", query.GameID)
		}
		if len(query.ShopIDs) != 2 {
			t.Errorf("Expected 2 shop ids, got %v", query.ShopIDs)
		}
		if query.StartDate != "2023-01-01" || query.EndDate != "2023-12-31" {
			t.Errorf("Expected raw dates preserved, got %s / %s", query.StartDate, query.EndDate)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		values := url.Values{}
		values.Set("start_date", "2023-13-45")

		_, err := ParseGameHistoryQuery(values)
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}
	})
}
