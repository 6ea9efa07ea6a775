package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/market"
	"investtrack/internal/models"
	"investtrack/internal/services"
)

// StockHandler serves quotes, charts, search and the stock page.
type StockHandler struct {
	marketService services.MarketServicer
	newsFetcher   services.NewsFetcher
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(marketService services.MarketServicer, newsFetcher services.NewsFetcher) *StockHandler {
	return &StockHandler{marketService: marketService, newsFetcher: newsFetcher}
}

// ChartQuery represents the query parameters of a chart request.
type ChartQuery struct {
	Symbol string `form:"symbol" binding:"required"`
	Range  string `form:"range"`
}

// QuoteQuery represents the query parameters of a quote request.
type QuoteQuery struct {
	Symbol string `form:"symbol" binding:"required,ticker"`
}

// StockPageResponse is a quote together with recent headlines.
type StockPageResponse struct {
	models.Quote
	News []models.NewsItem `json:"news"`
}

// Search handles symbol search.
// @Summary     Search symbols
// @Description Resolve free text to at most 8 instruments. Falls back to a built-in symbol table when live search has no results.
// @Tags        stock
// @Produce     json
// @Param       q query string false "Search text"
// @Success     200 {array}  models.SearchResult "Matches"
// @Failure     500 {object} MessageResponse     "Server error"
// @Router      /stock/search [get]
func (h *StockHandler) Search(c *gin.Context) {
	defer recoverWithMessage(c, "Failed to search stocks")

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, []models.SearchResult{})
		return
	}

	c.JSON(http.StatusOK, h.marketService.Search(c.Request.Context(), q))
}

// Chart handles chart requests.
// @Summary     Get chart
// @Description Close prices for a symbol over a range (1D, 1W, 1M, 3M, 1Y). Unknown ranges are treated as 1M.
// @Tags        stock
// @Produce     json
// @Param       symbol query string true  "Ticker symbol"
// @Param       range  query string false "Range" default(1M)
// @Success     200 {array}  models.CandlePoint "Chart points"
// @Failure     400 {object} MessageResponse    "Missing or invalid symbol"
// @Failure     500 {object} MessageResponse    "No chart data"
// @Router      /stock/chart [get]
func (h *StockHandler) Chart(c *gin.Context) {
	defer recoverWithMessage(c, apperrors.ErrChartUnavailable.Message)

	if strings.TrimSpace(c.Query("symbol")) == "" {
		respondWithMessage(c, http.StatusBadRequest, "Symbol is required")
		return
	}
	var q ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithMessage(c, http.StatusBadRequest, "Invalid symbol")
		return
	}

	out := h.marketService.GetChartRange(c.Request.Context(), q.Symbol, q.Range)
	if !out.Found() {
		respondWithMessage(c, apperrors.ErrChartUnavailable.StatusCode, apperrors.ErrChartUnavailable.Message)
		return
	}

	c.JSON(http.StatusOK, out.Points)
}

// Quote handles quote requests.
// @Summary     Get quote
// @Description Latest quote for a symbol, using the fast provider first for foreign listings.
// @Tags        stock
// @Produce     json
// @Param       symbol query string true "Ticker symbol"
// @Success     200 {object} models.Quote  "Quote"
// @Failure     400 {object} ErrorResponse "Missing or invalid symbol"
// @Failure     404 {object} ErrorResponse "Symbol not found"
// @Failure     503 {object} ErrorResponse "All providers unavailable"
// @Router      /stock/quote [get]
func (h *StockHandler) Quote(c *gin.Context) {
	var q QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "A valid symbol is required"))
		return
	}

	out := h.marketService.GetQuote(c.Request.Context(), q.Symbol)
	if !out.Found() {
		respondWithError(c, outcomeError(out.Status))
		return
	}

	c.JSON(http.StatusOK, out.Quote)
}

// Page handles the stock page: the quote and headlines, fetched concurrently.
// @Summary     Get stock page
// @Description Quote and recent headlines for a symbol. Headlines are empty when the news feed fails.
// @Tags        stock
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} StockPageResponse "Quote with news"
// @Failure     400 {object} ErrorResponse     "Invalid symbol"
// @Failure     404 {object} ErrorResponse     "Symbol not found"
// @Failure     503 {object} ErrorResponse     "All providers unavailable"
// @Router      /stock/{symbol} [get]
func (h *StockHandler) Page(c *gin.Context) {
	symbol, err := parsePathSymbol(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var (
		quote market.QuoteOutcome
		news  []models.NewsItem
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		quote = h.marketService.GetQuote(ctx, symbol)
		return nil
	})
	g.Go(func() error {
		news = h.newsFetcher.Fetch(ctx, symbol)
		return nil
	})
	_ = g.Wait()

	if !quote.Found() {
		respondWithError(c, outcomeError(quote.Status))
		return
	}
	if news == nil {
		news = []models.NewsItem{}
	}

	c.JSON(http.StatusOK, StockPageResponse{Quote: quote.Quote, News: news})
}
