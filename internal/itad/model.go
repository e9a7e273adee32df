package itad

// HistoryParams describes one price-history query. Since is an ISO-8601 UTC
// instant with a trailing Z. GameID and ShopIDs are optional upstream filters.
type HistoryParams struct {
	GameID  string
	Since   string
	ShopIDs []string
}

// SearchResult is one entry from the games search endpoint.
type SearchResult struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Type  string `json:"type"`
}
