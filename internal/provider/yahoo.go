package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"investtrack/internal/logger"
	"investtrack/internal/models"
)

const (
	yahooQuoteURL  = "https://query1.finance.yahoo.com/v7/finance/quote"
	yahooChartURL  = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooSearchURL = "https://query1.finance.yahoo.com/v1/finance/search"

	// SearchLimit caps how many instruments a search returns.
	SearchLimit = 8
)

// yahooQuoteResponse is the v7 quote envelope.
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []yahooQuote `json:"result"`
		Error  *yahooError  `json:"error"`
	} `json:"quoteResponse"`
}

// yahooQuote uses pointers so that absent numeric fields are detectable.
type yahooQuote struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
	Currency                   string   `json:"currency"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketChange        *float64 `json:"regularMarketChange"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	RegularMarketDayHigh       *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow        *float64 `json:"regularMarketDayLow"`
	MarketCap                  *float64 `json:"marketCap"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yahooChartResponse is the v8 chart envelope.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// YahooProvider is the rich provider: quotes with full metadata, charts
// and free-text search.
type YahooProvider struct {
	httpClient *http.Client
	loc        *time.Location

	// overridable for tests
	quoteURL  string
	chartURL  string
	searchURL string
}

// YahooOption customizes a YahooProvider.
type YahooOption func(*YahooProvider)

// WithYahooURLs overrides the quote, chart and search endpoints. Empty
// values keep the defaults.
func WithYahooURLs(quote, chart, search string) YahooOption {
	return func(p *YahooProvider) {
		if quote != "" {
			p.quoteURL = quote
		}
		if chart != "" {
			p.chartURL = chart
		}
		if search != "" {
			p.searchURL = search
		}
	}
}

// WithYahooLocation sets the location used to label chart points.
func WithYahooLocation(loc *time.Location) YahooOption {
	return func(p *YahooProvider) { p.loc = loc }
}

// NewYahooProvider creates the rich provider.
func NewYahooProvider(httpClient *http.Client, opts ...YahooOption) *YahooProvider {
	p := &YahooProvider{
		httpClient: httpClient,
		loc:        time.UTC,
		quoteURL:   yahooQuoteURL,
		chartURL:   yahooChartURL,
		searchURL:  yahooSearchURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// FetchQuote fetches the latest quote with name, market cap and currency.
// A quote with any missing or non-finite price field is NoData.
func (p *YahooProvider) FetchQuote(ctx context.Context, symbol string) QuoteResult {
	log := logger.Get()

	var resp yahooQuoteResponse
	u := p.quoteURL + "?symbols=" + url.QueryEscape(symbol)
	if err := getJSON(ctx, p.httpClient, u, &resp); err != nil {
		log.Warnw("Quote request failed", "provider", p.Name(), "symbol", symbol, "error", err)
		return quoteStatus(classify(err))
	}
	if resp.QuoteResponse.Error != nil {
		log.Warnw("Quote error payload", "provider", p.Name(), "symbol", symbol, "code", resp.QuoteResponse.Error.Code)
		return quoteStatus(StatusUnavailable)
	}

	var raw *yahooQuote
	for i := range resp.QuoteResponse.Result {
		if strings.EqualFold(resp.QuoteResponse.Result[i].Symbol, symbol) {
			raw = &resp.QuoteResponse.Result[i]
			break
		}
	}
	if raw == nil {
		log.Debugw("Symbol missing from quote response", "provider", p.Name(), "symbol", symbol)
		return quoteStatus(StatusNoData)
	}

	if !finite(raw.RegularMarketPrice, raw.RegularMarketChange, raw.RegularMarketChangePercent,
		raw.RegularMarketDayHigh, raw.RegularMarketDayLow) {
		log.Debugw("Incomplete quote", "provider", p.Name(), "symbol", symbol)
		return quoteStatus(StatusNoData)
	}
	if !plausiblePrice(*raw.RegularMarketPrice) {
		log.Warnw("Implausible price", "provider", p.Name(), "symbol", symbol, "price", *raw.RegularMarketPrice)
		return quoteStatus(StatusNoData)
	}

	name := raw.LongName
	if name == "" {
		name = raw.ShortName
	}
	if name == "" {
		name = symbol
	}

	return QuoteResult{
		Status: StatusOK,
		Quote: models.Quote{
			Symbol:        strings.ToUpper(symbol),
			Name:          name,
			Price:         *raw.RegularMarketPrice,
			Change:        *raw.RegularMarketChange,
			ChangePercent: *raw.RegularMarketChangePercent,
			DayHigh:       *raw.RegularMarketDayHigh,
			DayLow:        *raw.RegularMarketDayLow,
			MarketCap:     FormatMarketCap(raw.MarketCap),
			Currency:      normalizeCurrency(raw.Currency),
		},
	}
}

// FetchChart fetches close prices in the window. Null closes are dropped.
func (p *YahooProvider) FetchChart(ctx context.Context, symbol string, window models.ChartWindow) ChartResult {
	log := logger.Get()

	q := url.Values{}
	q.Set("period1", strconv.FormatInt(window.From.Unix(), 10))
	q.Set("period2", strconv.FormatInt(window.To.Unix(), 10))
	q.Set("interval", string(window.Interval))
	u := p.chartURL + "/" + url.PathEscape(symbol) + "?" + q.Encode()

	var resp yahooChartResponse
	if err := getJSON(ctx, p.httpClient, u, &resp); err != nil {
		log.Warnw("Chart request failed", "provider", p.Name(), "symbol", symbol, "error", err)
		return chartStatus(classify(err))
	}
	if e := resp.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			log.Debugw("Chart not found", "provider", p.Name(), "symbol", symbol)
			return chartStatus(StatusNoData)
		}
		log.Warnw("Chart error payload", "provider", p.Name(), "symbol", symbol, "code", e.Code, "description", e.Description)
		return chartStatus(StatusUnavailable)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return chartStatus(StatusNoData)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		log.Warnw("Chart series length mismatch", "provider", p.Name(), "symbol", symbol,
			"timestamps", len(result.Timestamp), "closes", len(closes))
		return chartStatus(StatusUnavailable)
	}

	points := make([]models.CandlePoint, 0, len(closes))
	for i, c := range closes {
		if !finite(c) {
			continue
		}
		points = append(points, models.NewCandlePoint(time.Unix(result.Timestamp[i], 0), *c, window.Interval, p.loc))
	}
	if len(points) == 0 {
		return chartStatus(StatusNoData)
	}
	return ChartResult{Points: points, Status: StatusOK}
}

// FetchSearch resolves free text to at most SearchLimit instruments in
// provider order.
func (p *YahooProvider) FetchSearch(ctx context.Context, query string) SearchResult {
	log := logger.Get()

	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(SearchLimit))
	q.Set("newsCount", "0")

	var resp yahooSearchResponse
	if err := getJSON(ctx, p.httpClient, p.searchURL+"?"+q.Encode(), &resp); err != nil {
		log.Warnw("Search request failed", "provider", p.Name(), "query", query, "error", err)
		return searchStatus(classify(err))
	}

	results := make([]models.SearchResult, 0, min(len(resp.Quotes), SearchLimit))
	for _, r := range resp.Quotes {
		if r.Symbol == "" {
			continue
		}
		name := r.LongName
		if name == "" {
			name = r.ShortName
		}
		if name == "" {
			name = r.Symbol
		}
		results = append(results, models.SearchResult{
			Symbol:   r.Symbol,
			Name:     name,
			Exchange: r.Exchange,
			Type:     instrumentType(r.QuoteType),
		})
		if len(results) == SearchLimit {
			break
		}
	}
	if len(results) == 0 {
		return searchStatus(StatusNoData)
	}
	return SearchResult{Results: results, Status: StatusOK}
}

func instrumentType(quoteType string) models.InstrumentType {
	switch strings.ToUpper(quoteType) {
	case "EQUITY":
		return models.InstrumentEquity
	case "ETF":
		return models.InstrumentETF
	case "CRYPTOCURRENCY":
		return models.InstrumentCrypto
	case "INDEX":
		return models.InstrumentIndex
	case "MUTUALFUND":
		return models.InstrumentFund
	default:
		return models.InstrumentOther
	}
}
