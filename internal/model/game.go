package model

// PriceEntry is a single price-history observation as returned by the upstream
// deals API. Shop and Deal are passed through untouched; only the timestamp is
// interpreted, for end-date filtering.
type PriceEntry struct {
	Timestamp string         `json:"timestamp"`
	Shop      map[string]any `json:"shop"`
	Deal      map[string]any `json:"deal"`
}

// GameHistoryResponse is the contract for the /prices endpoint. Prices keep the
// upstream-provided order. EndDate echoes the raw request bound and is null when
// no end date was given.
type GameHistoryResponse struct {
	GameID      string       `json:"game_id"`
	LastUpdated string       `json:"last_updated"`
	StartDate   string       `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	Prices      []PriceEntry `json:"prices"`
}

// GameIDEntry pairs a configured title with its resolved upstream id.
type GameIDEntry struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}
