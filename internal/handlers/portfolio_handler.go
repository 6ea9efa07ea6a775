package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/pagination"
	"investtrack/internal/services"
)

// PortfolioHandler handles position requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// UpdateSharesRequest represents the request payload for setting a share count.
// A count of zero or less removes the position.
type UpdateSharesRequest struct {
	Shares *float64 `json:"shares" binding:"required"`
}

// SharesResponse is the share count held for one symbol.
type SharesResponse struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`
}

// ListPositions handles listing positions.
// @Summary     List positions
// @Description Paginated positions ordered by symbol
// @Tags        portfolio
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 200)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioPosition] "Positions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) ListPositions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.portfolioService.ListPositions(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles portfolio valuation.
// @Summary     Value portfolio
// @Description Every position priced at its latest quote, with totals per currency
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} services.PortfolioSummary "Valuation"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	summary, err := h.portfolioService.Valuate(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetShares handles reading the share count of one symbol.
// @Summary     Get shares
// @Description Shares held for a symbol; zero when no position exists
// @Tags        portfolio
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} SharesResponse "Shares held"
// @Failure     400 {object} ErrorResponse  "Invalid symbol"
// @Failure     500 {object} ErrorResponse  "Server error"
// @Router      /portfolio/{symbol} [get]
func (h *PortfolioHandler) GetShares(c *gin.Context) {
	symbol, err := parsePathSymbol(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shares, err := h.portfolioService.GetShares(symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SharesResponse{Symbol: symbol, Shares: shares})
}

// UpdateShares handles setting the share count of one symbol.
// @Summary     Set shares
// @Description Create or update a position; zero or negative shares remove it
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       symbol  path string              true "Ticker symbol"
// @Param       request body UpdateSharesRequest true "Share count"
// @Success     200 {object} SharesResponse "Shares now held"
// @Failure     400 {object} ErrorResponse  "Invalid input"
// @Failure     500 {object} ErrorResponse  "Server error"
// @Router      /portfolio/{symbol} [put]
func (h *PortfolioHandler) UpdateShares(c *gin.Context) {
	symbol, err := parsePathSymbol(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pos, err := h.portfolioService.UpdateShares(symbol, *req.Shares)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := SharesResponse{Symbol: symbol}
	if pos != nil {
		resp.Shares = pos.Shares
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePosition handles removing a position.
// @Summary     Remove position
// @Tags        portfolio
// @Param       symbol path string true "Ticker symbol"
// @Success     204 "Position removed"
// @Failure     400 {object} ErrorResponse "Invalid symbol"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/{symbol} [delete]
func (h *PortfolioHandler) DeletePosition(c *gin.Context) {
	symbol, err := parsePathSymbol(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.DeletePosition(symbol); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
