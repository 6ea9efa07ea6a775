package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investtrack/internal/services"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	marketService services.MarketServicer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(marketService services.MarketServicer) *HealthHandler {
	return &HealthHandler{marketService: marketService}
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status       string `json:"status"`
	CacheEntries int    `json:"cache_entries"`
}

// Health handles the health check.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Service is up"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", CacheEntries: h.marketService.CacheEntries()})
}
