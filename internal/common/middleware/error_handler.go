package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"subhub-backend/internal/common/errors"
	"subhub-backend/internal/common/logger"
)

// RequestID assigns an ID to every request, honoring an inbound X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// ErrorHandler recovers panics and renders them as typed internal errors.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := getRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error").
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		AbortWithError(c, appErr)
	})
}

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
}

// AbortWithError renders err with the HTTP status matching its code and stops
// the handler chain.
func AbortWithError(c *gin.Context, err error) {
	requestID := getRequestID(c)

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Wrap(errors.ErrCodeInternal, "Internal server error", err)
	}
	appErr.WithRequestID(requestID)

	if appErr.Code == errors.ErrCodeInternal {
		logger.Error().
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Err(appErr).
			Msg("Request failed")
	} else {
		// Local precondition failures are the caller's mistake; keep them out
		// of the warn stream the way upstream outages are kept in it.
		event := logger.Warn()
		if appErr.IsLocal() {
			event = logger.Debug()
		}
		event.
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Str("code", string(appErr.Code)).
			Bool("retriable", appErr.IsRetriable()).
			Msg(appErr.Message)
	}

	c.AbortWithStatusJSON(httpStatus(appErr.Code), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	})
}

func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeMalformedInput, errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeConstraintViolation:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidTransition:
		return http.StatusConflict
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAuthorityRejected, errors.ErrCodeAuthorityUnreachable:
		return http.StatusBadGateway
	case errors.ErrCodeStorageFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
