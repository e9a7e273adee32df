package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain entity errors represent missing or empty result sets.
// These errors indicate that a query matched no data upstream.
var (
	// ErrPriceHistoryNotFound indicates that a price-history query returned no entries.
	ErrPriceHistoryNotFound = errors.New("no price history found")

	// ErrNoIndicatorData indicates that an indicator query yielded nothing after filtering.
	ErrNoIndicatorData = errors.New("no data available")

	// ErrMissingColumns indicates that the upstream dataset is missing required columns
	// after normalization. See MissingColumnsError for the column details.
	ErrMissingColumns = errors.New("required columns missing")
)

// Upstream errors represent transport-level failures against the external providers.
var (
	// ErrUpstreamUnavailable indicates a connection error, timeout, or non-success
	// status from an upstream provider.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// Validation errors represent malformed request parameters.
var (
	// ErrInvalidDate indicates a date parameter not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidYear indicates a year parameter that is not an integer.
	ErrInvalidYear = errors.New("invalid year, expected an integer")
)

// Operation failure errors provide stable messages for handler error responses.
var (
	ErrFailedToRetrievePrices     = errors.New("failed to retrieve price history")
	ErrFailedToRetrieveGamesList  = errors.New("failed to retrieve games list")
	ErrFailedToRetrieveIndicators = errors.New("failed to retrieve economic indicators")
	ErrFailedToRetrieveCountries  = errors.New("failed to retrieve countries list")
)

// MissingColumnsError reports which canonical columns were absent from the upstream
// dataset after renaming, together with the columns that were actually present.
// It unwraps to ErrMissingColumns so callers can match it with errors.Is.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%v: %s (available: %s)",
		ErrMissingColumns,
		strings.Join(e.Missing, ", "),
		strings.Join(e.Available, ", "),
	)
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
