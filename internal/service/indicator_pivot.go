package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/imf"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
)

// renameRules maps provider column names to the canonical schema. Matching is
// case-insensitive: columns are lowercased and stripped of "@" before lookup.
var renameRules = map[string]string{
	"time_period": "year",
	"ref_area":    "country",
	"obs_value":   "value",
}

// requiredColumns is the canonical schema every downstream step depends on.
var requiredColumns = []string{"country", "year", "indicator", "value"}

// normalizeColumns rewrites each row's column names: lowercase, strip "@", and
// apply the rename rules for columns that are present. Values are untouched.
func normalizeColumns(rows []imf.Row) []imf.Row {
	normalized := make([]imf.Row, 0, len(rows))
	for _, row := range rows {
		out := imf.Row{}
		for name, value := range row {
			canonical := strings.ReplaceAll(strings.ToLower(name), "@", "")
			if renamed, ok := renameRules[canonical]; ok {
				canonical = renamed
			}
			out[canonical] = value
		}
		normalized = append(normalized, out)
	}
	return normalized
}

// filterByYear keeps rows with startYear <= year <= endYear (upper bound only
// when given). Rows whose year does not parse as an integer are dropped, the
// same fate coercion would hand them later.
func filterByYear(rows []imf.Row, startYear int, endYear *int) []imf.Row {
	filtered := make([]imf.Row, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row["year"]))
		if err != nil {
			continue
		}
		if year < startYear {
			continue
		}
		if endYear != nil && year > *endYear {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// validateColumns checks that the canonical column set survived renaming,
// looking across all rows. Returns a MissingColumnsError listing what is
// missing and what the provider actually sent.
func validateColumns(rows []imf.Row) error {
	available := map[string]bool{}
	for _, row := range rows {
		for name := range row {
			available[name] = true
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if !available[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	availableList := make([]string, 0, len(available))
	for name := range available {
		availableList = append(availableList, name)
	}
	sort.Strings(availableList)

	return &apperrors.MissingColumnsError{Missing: missing, Available: availableList}
}

// coerceRecords converts rows into typed Records, dropping any row whose year
// or value is not numeric.
func coerceRecords(rows []imf.Row) []model.Record {
	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(strings.TrimSpace(row["year"]))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row["value"]), 64)
		if err != nil {
			continue
		}
		records = append(records, model.Record{
			Country:   row["country"],
			Year:      year,
			Indicator: row["indicator"],
			Value:     value,
		})
	}
	return records
}

type pivotKey struct {
	country string
	year    int
}

// pivotRecords reshapes records into one row per (country, year) carrying every
// indicator observed for that key. Duplicate (country, year, indicator) triples
// keep the first encountered value. Returned rows preserve first-appearance
// order of their keys.
func pivotRecords(records []model.Record) []model.PivotedRow {
	index := map[pivotKey]int{}
	var rows []model.PivotedRow

	for _, record := range records {
		key := pivotKey{country: record.Country, year: record.Year}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, model.PivotedRow{
				Country: record.Country,
				Year:    record.Year,
				Values:  map[string]float64{},
			})
		}
		if _, exists := rows[i].Values[record.Indicator]; !exists {
			rows[i].Values[record.Indicator] = record.Value
		}
	}

	return rows
}

// buildIndicatorsResponse assembles the full response contract from renamed
// rows: validate the canonical column set, filter by year bounds, coerce,
// pivot, and emit. An empty input or an empty post-filter set yields
// ErrNoIndicatorData rather than an empty response; the caller translates that
// into a not-found failure.
func buildIndicatorsResponse(rows []imf.Row, startYear int, endYear *int, catalog map[string]string) (model.EconomicIndicatorsResponse, error) {
	if len(rows) == 0 {
		return model.EconomicIndicatorsResponse{}, apperrors.ErrNoIndicatorData
	}

	if err := validateColumns(rows); err != nil {
		return model.EconomicIndicatorsResponse{}, err
	}

	records := coerceRecords(filterByYear(rows, startYear, endYear))
	if len(records) == 0 {
		return model.EconomicIndicatorsResponse{}, apperrors.ErrNoIndicatorData
	}

	pivoted := pivotRecords(records)

	data := buildDataPoints(pivoted)

	return model.EconomicIndicatorsResponse{
		Metadata: buildMetadata(records, len(pivoted), catalog),
		Data:     data,
	}, nil
}

// buildMetadata summarizes the surviving records: indicator catalog restricted
// to codes present (unknown codes fall back to the code itself), sorted distinct
// countries, and the true min/max year range.
func buildMetadata(records []model.Record, totalRecords int, catalog map[string]string) model.IndicatorsMetadata {
	indicators := map[string]string{}
	countrySet := map[string]bool{}
	minYear, maxYear := records[0].Year, records[0].Year

	for _, record := range records {
		if _, ok := indicators[record.Indicator]; !ok {
			description, known := catalog[record.Indicator]
			if !known {
				description = record.Indicator
			}
			indicators[record.Indicator] = description
		}
		countrySet[record.Country] = true
		if record.Year < minYear {
			minYear = record.Year
		}
		if record.Year > maxYear {
			maxYear = record.Year
		}
	}

	countries := make([]string, 0, len(countrySet))
	for country := range countrySet {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	return model.IndicatorsMetadata{
		Source:       "IMF (International Monetary Fund)",
		Database:     "World Economic Outlook",
		Indicators:   indicators,
		Countries:    countries,
		YearRange:    model.YearRange{Start: minYear, End: maxYear},
		TotalRecords: totalRecords,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// buildDataPoints orders pivoted rows into the response sequence: grouped by
// country in first-appearance order, ascending by year within each group, with
// indicator codes sorted for deterministic output.
func buildDataPoints(pivoted []model.PivotedRow) []model.DataPoint {
	var countryOrder []string
	byCountry := map[string][]model.PivotedRow{}
	for _, row := range pivoted {
		if _, seen := byCountry[row.Country]; !seen {
			countryOrder = append(countryOrder, row.Country)
		}
		byCountry[row.Country] = append(byCountry[row.Country], row)
	}

	data := make([]model.DataPoint, 0, len(pivoted))
	for _, country := range countryOrder {
		rows := byCountry[country]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })

		for _, row := range rows {
			codes := make([]string, 0, len(row.Values))
			for code := range row.Values {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			values := make([]model.IndicatorValue, 0, len(codes))
			for _, code := range codes {
				values = append(values, model.IndicatorValue{Code: code, Value: row.Values[code]})
			}

			data = append(data, model.DataPoint{
				Period:     row.Year,
				PeriodType: "year",
				Country:    row.Country,
				Indicators: values,
			})
		}
	}

	return data
}
