package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/apperrors"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/itad"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/model"
)

// defaultSince bounds price-history queries when no start date is given.
var defaultSince = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02T15:04:05Z"
)

// GameService assembles price-history responses from the deals API and resolves
// the configured title list to upstream game ids.
type GameService struct {
	itadClient itad.Client
	titles     []string
}

// NewGameService creates a new GameService. Titles is the fixed list resolved
// by ResolveTitleIDs.
func NewGameService(itadClient itad.Client, titles []string) *GameService {
	return &GameService{
		itadClient: itadClient,
		titles:     titles,
	}
}

// GetGameHistory fetches price-history entries and wraps them with request
// metadata. Dates are YYYY-MM-DD; startDate defaults to 2015-01-01 and becomes
// the upstream "since" bound, endDate (when given) filters returned entries to
// timestamps at or before its midnight UTC instant. Entries keep upstream order.
//
// Errors: apperrors.ErrPriceHistoryNotFound (carrying gameID) when the result
// is empty or not list-shaped, apperrors.ErrUpstreamUnavailable on transport
// failure, apperrors.ErrInvalidDate on malformed dates.
func (s *GameService) GetGameHistory(ctx context.Context, gameID string, shopIDs []string, startDate, endDate string) (model.GameHistoryResponse, error) {
	since := defaultSince
	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return model.GameHistoryResponse{}, fmt.Errorf("%w: start_date %q", apperrors.ErrInvalidDate, startDate)
		}
		since = parsed
	}
	sinceISO := since.UTC().Format(instantLayout)

	entries, err := s.itadClient.GetPriceHistory(ctx, itad.HistoryParams{
		GameID:  gameID,
		Since:   sinceISO,
		ShopIDs: shopIDs,
	})
	if err != nil {
		return model.GameHistoryResponse{}, err
	}

	var endEcho *string
	if endDate != "" {
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return model.GameHistoryResponse{}, fmt.Errorf("%w: end_date %q", apperrors.ErrInvalidDate, endDate)
		}
		entries = filterByEndDate(entries, end.UTC())
		endEcho = &endDate
	}

	if len(entries) == 0 {
		return model.GameHistoryResponse{}, fmt.Errorf("%w: game ID %s", apperrors.ErrPriceHistoryNotFound, gameID)
	}

	return model.GameHistoryResponse{
		GameID:      gameID,
		LastUpdated: time.Now().UTC().Format(instantLayout),
		StartDate:   sinceISO,
		EndDate:     endEcho,
		Prices:      entries,
	}, nil
}

// filterByEndDate keeps entries whose timestamp is at or before the end instant,
// preserving order. Entries with unparseable timestamps are dropped.
func filterByEndDate(entries []model.PriceEntry, end time.Time) []model.PriceEntry {
	filtered := make([]model.PriceEntry, 0, len(entries))
	for _, entry := range entries {
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			continue
		}
		if !ts.After(end) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ResolveTitleIDs resolves every configured title to its upstream game id,
// issuing one search per title concurrently. Output order matches the
// configured title order regardless of completion order. A title with no
// search results is silently omitted; any transport failure aborts the whole
// call with apperrors.ErrUpstreamUnavailable.
func (s *GameService) ResolveTitleIDs(ctx context.Context) ([]model.GameIDEntry, error) {
	resolved := make([]*model.GameIDEntry, len(s.titles))

	g, gctx := errgroup.WithContext(ctx)
	for i, title := range s.titles {
		i, title := i, title
		g.Go(func() error {
			results, err := s.itadClient.SearchGames(gctx, title)
			if err != nil {
				return err
			}
			if len(results) > 0 {
				resolved[i] = &model.GameIDEntry{Name: title, ID: results[0].ID}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]model.GameIDEntry, 0, len(s.titles))
	for _, entry := range resolved {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}
