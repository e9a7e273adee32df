package model

// Record is one economic observation after normalization: canonical field names,
// coerced types. Rows that fail year or value coercion never become Records.
type Record struct {
	Country   string
	Year      int
	Indicator string
	Value     float64
}

// PivotedRow holds every indicator value observed for one (country, year) key.
// When duplicate raw rows collide on the same key and indicator, the first
// encountered value wins.
type PivotedRow struct {
	Country string
	Year    int
	Values  map[string]float64
}

// IndicatorValue is one indicator observation within a data point.
type IndicatorValue struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// DataPoint is one country-year entry in the indicators response. PeriodType is
// always "year" for the WEO dataset.
type DataPoint struct {
	Period     int              `json:"period"`
	PeriodType string           `json:"period_type"`
	Country    string           `json:"country"`
	Indicators []IndicatorValue `json:"indicators"`
}

// YearRange is the min/max year over all surviving rows.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IndicatorsMetadata describes the dataset behind an indicators response.
type IndicatorsMetadata struct {
	Source       string            `json:"source"`
	Database     string            `json:"database"`
	Indicators   map[string]string `json:"indicators"`
	Countries    []string          `json:"countries"`
	YearRange    YearRange         `json:"year_range"`
	TotalRecords int               `json:"total_records"`
	GeneratedAt  string            `json:"generated_at"`
}

// EconomicIndicatorsResponse is the contract for the /economic-indicators endpoint.
// Data is grouped by country in first-appearance order and sorted ascending by
// year within each country.
type EconomicIndicatorsResponse struct {
	Metadata IndicatorsMetadata `json:"metadata"`
	Data     []DataPoint        `json:"data"`
}

// CatalogEntry is one row of the static indicator catalog exposed by
// /indicators_list.
type CatalogEntry struct {
	InputCode   string `json:"input_code"`
	Description string `json:"description"`
}
