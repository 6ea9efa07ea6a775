package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"investtrack/internal/logger"
	"investtrack/internal/models"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

// finnhubResolutions translates chart intervals into candle resolution codes.
var finnhubResolutions = map[models.Interval]string{
	models.Interval5Minute: "5",
	models.IntervalHour:    "60",
	models.IntervalDay:     "D",
	models.IntervalWeek:    "W",
}

// finnhubQuote is the /quote payload. A zero or absent current price means
// the symbol is unknown to the provider.
type finnhubQuote struct {
	Current       *float64 `json:"c"`
	Change        *float64 `json:"d"`
	ChangePercent *float64 `json:"dp"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
}

type finnhubCandles struct {
	Close     []*float64 `json:"c"`
	Timestamp []int64    `json:"t"`
	Status    string     `json:"s"`
}

// FinnhubProvider is the fast provider: quotes and candles without metadata.
type FinnhubProvider struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
	loc        *time.Location
	baseURL    string // overridable for tests
}

// FinnhubOption customizes a FinnhubProvider.
type FinnhubOption func(*FinnhubProvider)

// WithFinnhubBaseURL overrides the API root.
func WithFinnhubBaseURL(u string) FinnhubOption {
	return func(p *FinnhubProvider) {
		if u != "" {
			p.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithFinnhubRate limits outgoing requests to perMinute. Zero disables the limit.
func WithFinnhubRate(perMinute int) FinnhubOption {
	return func(p *FinnhubProvider) {
		if perMinute <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		p.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), max(1, perMinute/10))
	}
}

// WithFinnhubLocation sets the location used to label chart points.
func WithFinnhubLocation(loc *time.Location) FinnhubOption {
	return func(p *FinnhubProvider) { p.loc = loc }
}

// NewFinnhubProvider creates the fast provider. With an empty apiKey every
// call reports StatusUnavailable without touching the network.
func NewFinnhubProvider(httpClient *http.Client, apiKey string, opts ...FinnhubOption) *FinnhubProvider {
	p := &FinnhubProvider{
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(apiKey),
		limiter:    rate.NewLimiter(rate.Every(time.Second), 6),
		loc:        time.UTC,
		baseURL:    finnhubBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider's display name.
func (p *FinnhubProvider) Name() string { return "Finnhub" }

// Configured reports whether an API key is present.
func (p *FinnhubProvider) Configured() bool { return p.apiKey != "" }

// FetchQuote fetches the latest price. The result carries no market cap and
// uses the symbol as its name; callers enrich it from a rich provider.
func (p *FinnhubProvider) FetchQuote(ctx context.Context, symbol string) QuoteResult {
	log := logger.Get()
	if !p.Configured() {
		return quoteStatus(StatusUnavailable)
	}
	if err := p.limiter.Wait(ctx); err != nil {
		log.Warnw("Rate limiter wait aborted", "provider", p.Name(), "symbol", symbol, "error", err)
		return quoteStatus(StatusUnavailable)
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", p.apiKey)

	var raw finnhubQuote
	if err := getJSON(ctx, p.httpClient, p.baseURL+"/quote?"+q.Encode(), &raw); err != nil {
		log.Warnw("Quote request failed", "provider", p.Name(), "symbol", symbol, "error", err)
		return quoteStatus(StatusUnavailable)
	}

	// c == 0 is the provider's "no data" sentinel, never a real price.
	if raw.Current == nil || !plausiblePrice(*raw.Current) {
		log.Debugw("Sentinel price", "provider", p.Name(), "symbol", symbol)
		return quoteStatus(StatusUnavailable)
	}
	if !finite(raw.Current, raw.Change, raw.ChangePercent, raw.High, raw.Low) {
		log.Debugw("Incomplete quote", "provider", p.Name(), "symbol", symbol)
		return quoteStatus(StatusNoData)
	}

	upper := strings.ToUpper(symbol)
	return QuoteResult{
		Status: StatusOK,
		Quote: models.Quote{
			Symbol:        upper,
			Name:          upper,
			Price:         *raw.Current,
			Change:        *raw.Change,
			ChangePercent: *raw.ChangePercent,
			DayHigh:       *raw.High,
			DayLow:        *raw.Low,
			MarketCap:     models.MarketCapUnavailable,
			Currency:      models.DefaultCurrency,
		},
	}
}

// FetchChart fetches candle closes in the window.
func (p *FinnhubProvider) FetchChart(ctx context.Context, symbol string, window models.ChartWindow) ChartResult {
	log := logger.Get()
	if !p.Configured() {
		return chartStatus(StatusUnavailable)
	}
	resolution, ok := finnhubResolutions[window.Interval]
	if !ok {
		log.Warnw("Unsupported interval", "provider", p.Name(), "interval", window.Interval)
		return chartStatus(StatusNoData)
	}
	if err := p.limiter.Wait(ctx); err != nil {
		log.Warnw("Rate limiter wait aborted", "provider", p.Name(), "symbol", symbol, "error", err)
		return chartStatus(StatusUnavailable)
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("resolution", resolution)
	q.Set("from", strconv.FormatInt(window.From.Unix(), 10))
	q.Set("to", strconv.FormatInt(window.To.Unix(), 10))
	q.Set("token", p.apiKey)

	var raw finnhubCandles
	if err := getJSON(ctx, p.httpClient, p.baseURL+"/stock/candle?"+q.Encode(), &raw); err != nil {
		log.Warnw("Candle request failed", "provider", p.Name(), "symbol", symbol, "error", err)
		return chartStatus(StatusUnavailable)
	}
	if raw.Status != "ok" {
		log.Debugw("No candles", "provider", p.Name(), "symbol", symbol, "status", raw.Status)
		return chartStatus(StatusNoData)
	}
	if len(raw.Close) != len(raw.Timestamp) {
		log.Warnw("Candle series length mismatch", "provider", p.Name(), "symbol", symbol,
			"timestamps", len(raw.Timestamp), "closes", len(raw.Close))
		return chartStatus(StatusUnavailable)
	}

	points := make([]models.CandlePoint, 0, len(raw.Close))
	for i, c := range raw.Close {
		if !finite(c) {
			continue
		}
		points = append(points, models.NewCandlePoint(time.Unix(raw.Timestamp[i], 0), *c, window.Interval, p.loc))
	}
	if len(points) == 0 {
		return chartStatus(StatusNoData)
	}
	return ChartResult{Points: points, Status: StatusOK}
}
