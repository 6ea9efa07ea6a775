// Package market reconciles quote, chart and search data from a fast and a
// rich provider into one consistent view. Public operations never fail:
// they return an outcome that is either data or an explicit absence.
package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"investtrack/internal/logger"
	"investtrack/internal/models"
	"investtrack/internal/provider"
)

// Default tuning used when Options leaves a field zero.
const (
	DefaultTimeout   = 8 * time.Second
	DefaultQuoteTTL  = 2 * time.Minute
	DefaultChartTTL  = 5 * time.Minute
	DefaultSearchTTL = 24 * time.Hour
)

// Status is the outcome of a public operation.
type Status int

const (
	// Found means data was obtained.
	Found Status = iota
	// NotFound means at least one provider answered but none had data.
	NotFound
	// UpstreamFailure means every provider attempt was unavailable.
	UpstreamFailure
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case UpstreamFailure:
		return "upstream_failure"
	default:
		return "unknown"
	}
}

// QuoteOutcome is a quote or the reason there is none.
type QuoteOutcome struct {
	Quote  models.Quote
	Status Status
}

// Found reports whether the outcome carries a quote.
func (o QuoteOutcome) Found() bool { return o.Status == Found }

// ChartOutcome is a non-empty point series or the reason there is none.
type ChartOutcome struct {
	Points []models.CandlePoint
	Status Status
}

// Found reports whether the outcome carries points.
func (o ChartOutcome) Found() bool { return o.Status == Found }

// Options tunes a Service. Zero fields take the package defaults.
type Options struct {
	Timeout    time.Duration
	QuoteTTL   time.Duration
	ChartTTL   time.Duration
	SearchTTL  time.Duration
	Classifier Classifier
	Symbols    *SymbolTable
	Cache      *Cache
	Now        func() time.Time
}

// Service is the fallback orchestrator.
type Service struct {
	fast       provider.FastProvider
	rich       provider.RichProvider
	classifier Classifier
	symbols    *SymbolTable
	cache      *Cache
	group      singleflight.Group
	now        func() time.Time

	timeout   time.Duration
	quoteTTL  time.Duration
	chartTTL  time.Duration
	searchTTL time.Duration
}

// NewService creates an orchestrator over the fast and rich providers.
// fast may be nil, in which case every plan step using it is unavailable.
func NewService(fast provider.FastProvider, rich provider.RichProvider, opts Options) *Service {
	s := &Service{
		fast:       fast,
		rich:       rich,
		classifier: opts.Classifier,
		symbols:    opts.Symbols,
		cache:      opts.Cache,
		now:        opts.Now,
		timeout:    orDefault(opts.Timeout, DefaultTimeout),
		quoteTTL:   orDefault(opts.QuoteTTL, DefaultQuoteTTL),
		chartTTL:   orDefault(opts.ChartTTL, DefaultChartTTL),
		searchTTL:  orDefault(opts.SearchTTL, DefaultSearchTTL),
	}
	if s.symbols == nil {
		s.symbols = DefaultSymbolTable()
	}
	if s.cache == nil {
		s.cache = NewCache()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// CacheEntries returns the number of cached values.
func (s *Service) CacheEntries() int { return s.cache.Len() }

// GetQuote returns the latest quote of symbol, from cache when fresh.
func (s *Service) GetQuote(ctx context.Context, symbol string) QuoteOutcome {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return QuoteOutcome{Status: NotFound}
	}

	key := "quote:" + sym
	if q, ok := lookup[models.Quote](s.cache, key, s.quoteTTL); ok {
		return QuoteOutcome{Quote: q, Status: Found}
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.fetchQuote(context.WithoutCancel(ctx), sym, key), nil
	})
	return v.(QuoteOutcome)
}

func (s *Service) fetchQuote(ctx context.Context, sym, key string) QuoteOutcome {
	log := logger.Get()
	market := s.classifier.Classify(sym)

	allUnavailable := true
	for _, src := range planFor(market) {
		res := s.quoteFrom(ctx, src, sym)
		if res.OK() {
			q := res.Quote
			if src == sourceFast {
				q = s.enrich(ctx, q)
			}
			s.cache.Put(key, q)
			return QuoteOutcome{Quote: q, Status: Found}
		}
		if res.Status != provider.StatusUnavailable {
			allUnavailable = false
		}
		log.Debugw("Quote attempt yielded no data",
			"symbol", sym, "market", market, "source", src, "status", res.Status)
	}

	log.Warnw("No quote from any provider", "symbol", sym, "market", market, "all_unavailable", allUnavailable)
	return QuoteOutcome{Status: missStatus(allUnavailable)}
}

// enrich copies the rich provider's descriptive fields onto a price-only
// quote. A failed lookup leaves q unchanged.
func (s *Service) enrich(ctx context.Context, q models.Quote) models.Quote {
	res := s.quoteFrom(ctx, sourceRich, q.Symbol)
	if !res.OK() {
		logger.Get().Debugw("Quote metadata unavailable", "symbol", q.Symbol, "status", res.Status)
		return q
	}
	return q.WithMetadata(res.Quote.Metadata())
}

func (s *Service) quoteFrom(ctx context.Context, src source, sym string) provider.QuoteResult {
	p := s.quoteProvider(src)
	if p == nil {
		return provider.QuoteResult{Status: provider.StatusUnavailable}
	}
	return bounded(ctx, s.timeout, p.Name(), provider.QuoteResult{Status: provider.StatusUnavailable},
		func(ctx context.Context) provider.QuoteResult { return p.FetchQuote(ctx, sym) })
}

func (s *Service) quoteProvider(src source) provider.QuoteProvider {
	if src == sourceFast {
		if s.fast == nil {
			return nil
		}
		return s.fast
	}
	if s.rich == nil {
		return nil
	}
	return s.rich
}

// GetChartRange resolves a coarse range against the current time and
// returns the chart for it.
func (s *Service) GetChartRange(ctx context.Context, symbol, r string) ChartOutcome {
	return s.GetChart(ctx, symbol, Resolve(r, s.now()))
}

// GetChart returns close prices of symbol in window, from cache when fresh.
func (s *Service) GetChart(ctx context.Context, symbol string, window models.ChartWindow) ChartOutcome {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return ChartOutcome{Status: NotFound}
	}

	key := chartKey(sym, window)
	if pts, ok := lookup[[]models.CandlePoint](s.cache, key, s.chartTTL); ok {
		return ChartOutcome{Points: pts, Status: Found}
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.fetchChart(context.WithoutCancel(ctx), sym, key, window), nil
	})
	return v.(ChartOutcome)
}

func (s *Service) fetchChart(ctx context.Context, sym, key string, window models.ChartWindow) ChartOutcome {
	log := logger.Get()
	market := s.classifier.Classify(sym)

	allUnavailable := true
	for _, src := range planFor(market) {
		p := s.chartProvider(src)
		if p == nil {
			continue
		}
		res := bounded(ctx, s.timeout, p.Name(), provider.ChartResult{Status: provider.StatusUnavailable},
			func(ctx context.Context) provider.ChartResult { return p.FetchChart(ctx, sym, window) })
		if res.OK() {
			s.cache.Put(key, res.Points)
			return ChartOutcome{Points: res.Points, Status: Found}
		}
		if res.Status != provider.StatusUnavailable {
			allUnavailable = false
		}
		log.Debugw("Chart attempt yielded no points",
			"symbol", sym, "market", market, "source", src, "interval", window.Interval, "status", res.Status)
	}

	log.Warnw("No chart from any provider", "symbol", sym, "interval", window.Interval, "all_unavailable", allUnavailable)
	return ChartOutcome{Status: missStatus(allUnavailable)}
}

func (s *Service) chartProvider(src source) provider.ChartProvider {
	if src == sourceFast {
		if s.fast == nil {
			return nil
		}
		return s.fast
	}
	if s.rich == nil {
		return nil
	}
	return s.rich
}

// Search resolves free text to at most provider.SearchLimit instruments.
// Live results are cached; when the live search is empty or fails, matches
// from the local symbol table are returned without caching.
func (s *Service) Search(ctx context.Context, query string) []models.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.SearchResult{}
	}

	key := "search:" + strings.ToLower(q)
	if res, ok := lookup[[]models.SearchResult](s.cache, key, s.searchTTL); ok {
		return res
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.fetchSearch(context.WithoutCancel(ctx), q, key), nil
	})
	return v.([]models.SearchResult)
}

func (s *Service) fetchSearch(ctx context.Context, q, key string) []models.SearchResult {
	log := logger.Get()

	if s.rich != nil {
		res := bounded(ctx, s.timeout, s.rich.Name(), provider.SearchResult{Status: provider.StatusUnavailable},
			func(ctx context.Context) provider.SearchResult { return s.rich.FetchSearch(ctx, q) })
		if res.OK() {
			results := res.Results
			if len(results) > provider.SearchLimit {
				results = results[:provider.SearchLimit:provider.SearchLimit]
			}
			s.cache.Put(key, results)
			return results
		}
		log.Debugw("Live search empty, using local table", "query", q, "status", res.Status)
	}

	return s.symbols.Match(q, provider.SearchLimit)
}

// bounded runs fn with a deadline and returns unavailable if fn does not
// finish in time or panics.
func bounded[T any](ctx context.Context, timeout time.Duration, name string, unavailable T, fn func(context.Context) T) T {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan T, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Errorw("Provider panicked", "provider", name, "panic", r)
				done <- unavailable
			}
		}()
		done <- fn(ctx)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		logger.Get().Warnw("Provider call timed out", "provider", name, "timeout", timeout)
		return unavailable
	}
}

func missStatus(allUnavailable bool) Status {
	if allUnavailable {
		return UpstreamFailure
	}
	return NotFound
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// chartKey buckets the window bounds to the minute.
func chartKey(sym string, w models.ChartWindow) string {
	return fmt.Sprintf("chart:%s:%s:%d:%d", sym, w.Interval,
		w.From.Truncate(time.Minute).Unix(), w.To.Truncate(time.Minute).Unix())
}
