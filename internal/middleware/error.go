package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "investtrack/internal/errors"
	"investtrack/internal/logger"
)

// ErrorBody is the nested {"error":{"code","message"}} envelope.
type ErrorBody struct {
	Error apperrors.AppError `json:"error"`
}

// ErrorHandler renders the last error a handler recorded with c.Error.
// Handlers that already wrote a body (the flat chart and search errors)
// are left untouched.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := resolve(c, c.Errors.Last().Err)
		c.AbortWithStatusJSON(appErr.StatusCode, ErrorBody{Error: apperrors.AppError{
			Code:    appErr.Code,
			Message: appErr.Message,
		}})
	}
}

// resolve maps err onto the AppError sent to the client, logging anything
// that carries detail the client must not see.
func resolve(c *gin.Context, err error) *apperrors.AppError {
	log := logger.Get()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			log.Errorw("Request failed",
				"request_id", RequestID(c),
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		} else if appErr.StatusCode >= 500 {
			log.Warnw("Request failed", "request_id", RequestID(c), "code", appErr.Code, "path", c.Request.URL.Path)
		}
		return appErr
	}

	log.Errorw("Unexpected error",
		"request_id", RequestID(c),
		"error", err.Error(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	return apperrors.ErrInternalServer
}
