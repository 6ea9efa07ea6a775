// Package errors provides custom error types for the InvestTrack API.
// Handlers and services use AppError so that responses carry a stable
// code and never leak provider or database details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Market data errors.
var (
	ErrSymbolNotFound      = &AppError{Code: "SYMBOL_NOT_FOUND", Message: "No market data found for this symbol", StatusCode: http.StatusNotFound}
	ErrUpstreamUnavailable = &AppError{Code: "UPSTREAM_UNAVAILABLE", Message: "Market data is temporarily unavailable", StatusCode: http.StatusServiceUnavailable}
	ErrChartUnavailable    = &AppError{Code: "CHART_UNAVAILABLE", Message: "Failed to fetch chart data", StatusCode: http.StatusInternalServerError}
)

// Portfolio errors.
var (
	ErrPositionNotFound = &AppError{Code: "POSITION_NOT_FOUND", Message: "No position held for this symbol", StatusCode: http.StatusNotFound}
)
