package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/logger"
	"investtrack/internal/market"
	"investtrack/internal/validator"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse documents the body middleware.ErrorHandler writes.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is the flat error body of the chart and search endpoints.
type MessageResponse struct {
	Error string `json:"error"`
}

// parsePathSymbol reads and upper-cases the :symbol path parameter.
// Returns ErrInvalidInput if it is not a plausible ticker.
func parsePathSymbol(c *gin.Context) (string, error) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if !validator.IsTicker(symbol) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid symbol")
	}
	return strings.ToUpper(symbol), nil
}

// outcomeError maps a failed market outcome to the error shown to clients.
func outcomeError(status market.Status) *apperrors.AppError {
	if status == market.UpstreamFailure {
		return apperrors.ErrUpstreamUnavailable
	}
	return apperrors.ErrSymbolNotFound
}

// respondWithError records err for middleware.ErrorHandler, which renders
// the nested error body.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// respondWithMessage writes the flat {error: string} body.
func respondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Error: message})
}

// recoverWithMessage turns a panic in a handler into a flat 500 body.
func recoverWithMessage(c *gin.Context, message string) {
	if r := recover(); r != nil {
		logger.Get().Errorw("handler panic", "panic", r, "path", c.Request.URL.Path)
		respondWithMessage(c, http.StatusInternalServerError, message)
	}
}
