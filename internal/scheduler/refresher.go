// Package scheduler keeps quotes of held positions warm in the market cache.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"investtrack/internal/logger"
	"investtrack/internal/models"
	"investtrack/internal/services"
)

const refreshConcurrency = 4

// HoldingsLister lists the symbols currently held.
type HoldingsLister interface {
	HeldSymbols() ([]string, error)
}

// Refresher periodically requests quotes for every held symbol so that
// portfolio views are served from cache.
type Refresher struct {
	cron     *cron.Cron
	quotes   services.QuoteGetter
	holdings HoldingsLister
	ctx      context.Context
	wg       sync.WaitGroup
}

// NewRefresher creates a refresher. ctx bounds every refresh it runs.
func NewRefresher(ctx context.Context, quotes services.QuoteGetter, holdings HoldingsLister) *Refresher {
	cl := cronLogger{logger.Get()}
	return &Refresher{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		quotes:   quotes,
		holdings: holdings,
		ctx:      ctx,
	}
}

// Register schedules RefreshAll on spec, a six-field cron expression or a
// descriptor such as "@every 1m".
func (r *Refresher) Register(spec string) error {
	if _, err := r.cron.AddFunc(spec, func() { r.RefreshAll() }); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.cron.Start()
	logger.Get().Info("Quote refresher started")
}

// Stop waits for running jobs and event-triggered refreshes to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.wg.Wait()
	logger.Get().Info("Quote refresher stopped")
}

// RefreshAll requests a quote for every held symbol and returns how many
// were found.
func (r *Refresher) RefreshAll() int {
	log := logger.Get()
	symbols, err := r.holdings.HeldSymbols()
	if err != nil {
		log.Errorw("Listing held symbols failed", "error", err)
		return 0
	}

	var (
		mu    sync.Mutex
		found int
	)
	g, ctx := errgroup.WithContext(r.ctx)
	g.SetLimit(refreshConcurrency)
	for _, sym := range symbols {
		g.Go(func() error {
			if r.quotes.GetQuote(ctx, sym).Found() {
				mu.Lock()
				found++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Debugw("Refreshed held quotes", "symbols", len(symbols), "found", found)
	return found
}

// OnPositionEvent refreshes a newly created or updated position in the
// background. Register it with PortfolioServicer.Subscribe.
func (r *Refresher) OnPositionEvent(ev models.PositionEvent) {
	if ev.Kind == models.PositionRemoved {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		out := r.quotes.GetQuote(r.ctx, ev.Symbol)
		logger.Get().Debugw("Refreshed quote after position change",
			"symbol", ev.Symbol, "kind", ev.Kind, "status", out.Status)
	}()
}

// Wait blocks until event-triggered refreshes have finished.
func (r *Refresher) Wait() { r.wg.Wait() }

// cronLogger routes cron's own logging through zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
