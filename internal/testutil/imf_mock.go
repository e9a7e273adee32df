package testutil

import (
	"context"
	"strconv"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/imf"
)

// MockIMFClient is a mock implementation of imf.Client for testing.
// It returns predefined rows instead of querying the IMF data service.
type MockIMFClient struct {
	// Rows is returned from FetchDataset
	Rows []imf.Row
	// DatasetError is the error to return from FetchDataset
	DatasetError error
	// CountryRows is returned from FetchCountries
	CountryRows []imf.Row
	// CountriesError is the error to return from FetchCountries
	CountriesError error

	// LastQuery records the most recent dataset query
	LastQuery imf.DatasetQuery
	// DatasetCalls tracks how many times FetchDataset was called
	DatasetCalls int
}

// NewMockIMFClient creates a new mock IMF client with no data configured.
func NewMockIMFClient() *MockIMFClient {
	return &MockIMFClient{}
}

// FetchDataset returns the configured rows or error.
func (m *MockIMFClient) FetchDataset(_ context.Context, query imf.DatasetQuery) ([]imf.Row, error) {
	m.DatasetCalls++
	m.LastQuery = query
	if m.DatasetError != nil {
		return nil, m.DatasetError
	}
	return m.Rows, nil
}

// FetchCountries returns the configured country rows or error.
func (m *MockIMFClient) FetchCountries(_ context.Context, _ string) ([]imf.Row, error) {
	if m.CountriesError != nil {
		return nil, m.CountriesError
	}
	return m.CountryRows, nil
}

// WithRows configures the dataset rows to return.
func (m *MockIMFClient) WithRows(rows []imf.Row) *MockIMFClient {
	m.Rows = rows
	return m
}

// WithDatasetError configures the mock to return the specified error from
// FetchDataset.
func (m *MockIMFClient) WithDatasetError(err error) *MockIMFClient {
	m.DatasetError = err
	return m
}

// WithCountryRows configures the country codelist rows to return.
func (m *MockIMFClient) WithCountryRows(rows []imf.Row) *MockIMFClient {
	m.CountryRows = rows
	return m
}

// MakeIndicatorRow creates a raw dataset row using the provider's column names,
// the shape FetchDataset produces before any normalization.
func MakeIndicatorRow(country string, year int, indicator string, value float64) imf.Row {
	return imf.Row{
		"@FREQ":        "A",
		"@REF_AREA":    country,
		"@INDICATOR":   indicator,
		"@UNIT_MULT":   "0",
		"@TIME_PERIOD": strconv.Itoa(year),
		"@OBS_VALUE":   strconv.FormatFloat(value, 'f', -1, 64),
	}
}
