package services

import (
	"context"

	"investtrack/internal/market"
	"investtrack/internal/models"
	"investtrack/internal/pagination"
)

// MarketServicer is the market data surface used by handlers and jobs.
// *market.Service satisfies it.
type MarketServicer interface {
	GetQuote(ctx context.Context, symbol string) market.QuoteOutcome
	GetChartRange(ctx context.Context, symbol, r string) market.ChartOutcome
	Search(ctx context.Context, query string) []models.SearchResult
	CacheEntries() int
}

// QuoteGetter is the subset of MarketServicer needed to value positions.
type QuoteGetter interface {
	GetQuote(ctx context.Context, symbol string) market.QuoteOutcome
}

// NewsFetcher returns recent headlines for a symbol. It never fails.
type NewsFetcher interface {
	Fetch(ctx context.Context, symbol string) []models.NewsItem
}

// PortfolioServicer defines the contract for the position store.
type PortfolioServicer interface {
	UpdateShares(symbol string, shares float64) (*models.PortfolioPosition, error)
	GetShares(symbol string) (float64, error)
	GetPosition(symbol string) (*models.PortfolioPosition, error)
	ListPositions(page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioPosition], error)
	HeldSymbols() ([]string, error)
	DeletePosition(symbol string) error
	Valuate(ctx context.Context) (*PortfolioSummary, error)
	Subscribe(fn func(models.PositionEvent)) (unsubscribe func())
}

var _ MarketServicer = (*market.Service)(nil)
