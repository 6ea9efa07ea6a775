// Package provider adapts upstream market data sources to the normalized
// records in package models. Adapters never return errors: every transport
// failure, non-2xx response, malformed payload or sentinel value is logged
// and reported as a non-OK Status.
package provider

import (
	"context"

	"investtrack/internal/models"
)

// Status is the outcome of a single adapter call.
type Status int

const (
	// StatusOK means the result carries usable data.
	StatusOK Status = iota
	// StatusNoData means the provider answered but had nothing usable
	// (unknown symbol, empty series, sentinel zero price).
	StatusNoData
	// StatusUnavailable means the provider could not be reached or its
	// answer could not be decoded (timeout, non-2xx, malformed payload,
	// missing credentials).
	StatusUnavailable
)

// String returns the status name used in logs.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no_data"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// QuoteResult is either a usable quote or the reason there is none.
type QuoteResult struct {
	Quote  models.Quote
	Status Status
}

// OK reports whether the result carries a quote.
func (r QuoteResult) OK() bool { return r.Status == StatusOK }

// ChartResult is either a non-empty point series or the reason there is none.
type ChartResult struct {
	Points []models.CandlePoint
	Status Status
}

// OK reports whether the result carries at least one point.
func (r ChartResult) OK() bool { return r.Status == StatusOK && len(r.Points) > 0 }

// SearchResult is the provider-ranked list of instruments matching a query.
type SearchResult struct {
	Results []models.SearchResult
	Status  Status
}

// OK reports whether the result carries at least one match.
func (r SearchResult) OK() bool { return r.Status == StatusOK && len(r.Results) > 0 }

// QuoteProvider fetches the latest quote of a symbol.
type QuoteProvider interface {
	// Name returns the provider's display name (e.g., "Yahoo Finance", "Finnhub").
	Name() string
	FetchQuote(ctx context.Context, symbol string) QuoteResult
}

// ChartProvider fetches historical close prices.
type ChartProvider interface {
	Name() string
	FetchChart(ctx context.Context, symbol string, window models.ChartWindow) ChartResult
}

// SearchProvider resolves free text to instruments.
type SearchProvider interface {
	Name() string
	FetchSearch(ctx context.Context, query string) SearchResult
}

// FastProvider is a quote and candle source without search.
//
//go:generate mockgen -package=market_test -destination=../market/mock_provider_test.go investtrack/internal/provider FastProvider,RichProvider
type FastProvider interface {
	QuoteProvider
	ChartProvider
}

// RichProvider covers quotes, charts and search with full metadata.
type RichProvider interface {
	FastProvider
	SearchProvider
}

func quoteStatus(s Status) QuoteResult { return QuoteResult{Status: s} }

func chartStatus(s Status) ChartResult { return ChartResult{Status: s} }

func searchStatus(s Status) SearchResult { return SearchResult{Status: s} }
