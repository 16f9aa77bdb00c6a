package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID, _ := c.Get(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warnw("Request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestID,
					"error", appErr.Err,
				)
			}
			if appErr.Code >= http.StatusInternalServerError {
				security.DefaultLogger().LogServerError(c.Request.Context(), c.ClientIP(), c.GetString(RequestIDKey), c.FullPath())
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Errorw("Internal server error",
			"path", c.FullPath(),
			"request_id", requestID,
			"error", err,
		)
		security.DefaultLogger().LogServerError(c.Request.Context(), c.ClientIP(), c.GetString(RequestIDKey), c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
