package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/logger"
	"investtrack/internal/models"
	"investtrack/internal/pagination"
)

// valuationConcurrency bounds parallel quote lookups during Valuate.
const valuationConcurrency = 4

// PositionValue is one position priced at the latest quote.
type PositionValue struct {
	Symbol      string  `json:"symbol"`
	Shares      float64 `json:"shares"`
	Available   bool    `json:"available"`
	Name        string  `json:"name,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	MarketValue string  `json:"market_value,omitempty"`
}

// CurrencyTotal is the summed market value of positions quoted in one currency.
type CurrencyTotal struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Display  string `json:"display"`
}

// PortfolioSummary values every held position.
type PortfolioSummary struct {
	Positions   []PositionValue `json:"positions"`
	Totals      []CurrencyTotal `json:"totals"`
	Unavailable int             `json:"unavailable"`
}

// portfolioService stores share counts per symbol and notifies observers
// of every change.
type portfolioService struct {
	db     *gorm.DB
	quotes QuoteGetter

	mu        sync.RWMutex
	observers map[int]func(models.PositionEvent)
	nextID    int
}

// NewPortfolioService creates a new PortfolioServicer. quotes may be nil if
// Valuate is never called.
func NewPortfolioService(db *gorm.DB, quotes QuoteGetter) PortfolioServicer {
	return &portfolioService{db: db, quotes: quotes, observers: make(map[int]func(models.PositionEvent))}
}

func normalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if len(s) > 32 {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is too long")
	}
	return s, nil
}

// UpdateShares sets the share count of symbol. A positive count creates or
// updates the position; zero or less removes it. The returned position is
// nil when nothing is held afterwards.
func (s *portfolioService) UpdateShares(symbol string, shares float64) (*models.PortfolioPosition, error) {
	sym, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(shares) || math.IsInf(shares, 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must be a finite number")
	}

	var (
		result *models.PortfolioPosition
		event  *models.PositionEvent
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var pos models.PortfolioPosition
		err := tx.Where("symbol = ?", sym).First(&pos).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch {
		case shares <= 0 && !found:
			return nil
		case shares <= 0:
			if err := tx.Delete(&pos).Error; err != nil {
				return err
			}
			event = &models.PositionEvent{Kind: models.PositionRemoved, Symbol: sym}
		case !found:
			pos = models.PortfolioPosition{Symbol: sym, Shares: shares}
			if err := tx.Create(&pos).Error; err != nil {
				return err
			}
			result = &pos
			event = &models.PositionEvent{Kind: models.PositionCreated, Symbol: sym, Shares: shares}
		default:
			pos.Shares = shares
			if err := tx.Save(&pos).Error; err != nil {
				return err
			}
			result = &pos
			event = &models.PositionEvent{Kind: models.PositionUpdated, Symbol: sym, Shares: shares}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if event != nil {
		s.notify(*event)
	}
	return result, nil
}

// GetShares returns the share count of symbol, or 0 when none are held.
func (s *portfolioService) GetShares(symbol string) (float64, error) {
	pos, err := s.GetPosition(symbol)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrPositionNotFound.Code {
			return 0, nil
		}
		return 0, err
	}
	return pos.Shares, nil
}

// GetPosition returns the position for symbol.
func (s *portfolioService) GetPosition(symbol string) (*models.PortfolioPosition, error) {
	sym, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	var pos models.PortfolioPosition
	if err := s.db.Where("symbol = ?", sym).First(&pos).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pos, nil
}

// ListPositions returns a page of positions ordered by symbol.
func (s *portfolioService) ListPositions(page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioPosition], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.PortfolioPosition{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var positions []models.PortfolioPosition
	if err := s.db.Order("symbol ASC").Scopes(pagination.Paginate(page)).Find(&positions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(positions, page, totalItems)
	return &result, nil
}

// HeldSymbols returns every symbol with a position, sorted.
func (s *portfolioService) HeldSymbols() ([]string, error) {
	var symbols []string
	if err := s.db.Model(&models.PortfolioPosition{}).Order("symbol ASC").Pluck("symbol", &symbols).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return symbols, nil
}

// DeletePosition removes the position for symbol.
func (s *portfolioService) DeletePosition(symbol string) error {
	if _, err := s.GetPosition(symbol); err != nil {
		return err
	}
	_, err := s.UpdateShares(symbol, 0)
	return err
}

// Valuate prices every position at its latest quote. Positions whose quote
// cannot be obtained are reported as unavailable and excluded from totals.
func (s *portfolioService) Valuate(ctx context.Context) (*PortfolioSummary, error) {
	var positions []models.PortfolioPosition
	if err := s.db.Order("symbol ASC").Find(&positions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	values := make([]PositionValue, len(positions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(valuationConcurrency)
	for i, pos := range positions {
		values[i] = PositionValue{Symbol: pos.Symbol, Shares: pos.Shares}
		if s.quotes == nil {
			continue
		}
		g.Go(func() error {
			out := s.quotes.GetQuote(gctx, pos.Symbol)
			if !out.Found() {
				return nil
			}
			q := out.Quote
			mv := decimal.NewFromFloat(pos.Shares).Mul(decimal.NewFromFloat(q.Price)).Round(2)
			values[i] = PositionValue{
				Symbol:      pos.Symbol,
				Shares:      pos.Shares,
				Available:   true,
				Name:        q.Name,
				Price:       q.Price,
				Currency:    q.Currency,
				MarketValue: mv.StringFixed(2),
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := &PortfolioSummary{Positions: values, Totals: []CurrencyTotal{}}
	totals := make(map[string]decimal.Decimal)
	for _, v := range values {
		if !v.Available {
			summary.Unavailable++
			continue
		}
		mv, err := decimal.NewFromString(v.MarketValue)
		if err != nil {
			logger.Get().Warnw("Unparseable market value", "symbol", v.Symbol, "value", v.MarketValue)
			continue
		}
		totals[v.Currency] = totals[v.Currency].Add(mv)
	}
	for cur, amount := range totals {
		summary.Totals = append(summary.Totals, CurrencyTotal{
			Currency: cur,
			Amount:   amount.StringFixed(2),
			Display:  displayAmount(amount, cur),
		})
	}
	sort.Slice(summary.Totals, func(i, j int) bool { return summary.Totals[i].Currency < summary.Totals[j].Currency })

	return summary, nil
}

// displayAmount formats an amount with the currency's symbol and grouping.
func displayAmount(amount decimal.Decimal, code string) string {
	c := money.GetCurrency(code)
	if c == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

// Subscribe registers fn to be called after every persisted change.
func (s *portfolioService) Subscribe(fn func(models.PositionEvent)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *portfolioService) notify(ev models.PositionEvent) {
	s.mu.RLock()
	fns := make([]func(models.PositionEvent), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
