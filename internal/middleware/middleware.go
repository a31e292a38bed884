package middleware

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/enrollment-api/internal/pkg/apperrors"
	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
)

const (
	// RequestIDHeader carries the request correlation id
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request id
	RequestIDKey = "request_id"
)

// CORS applies the cross-origin policy. An empty origin list allows any origin.
func CORS(allowedOrigins []string, allowAll bool) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "PUT"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}

// RequestID reuses the incoming X-Request-ID or generates one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request id stored by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// RequestLogger emits one line per request, leveled by outcome
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		err := c.Errors.Last()

		var event *zerolog.Event
		switch {
		case err != nil && dberrors.IsConstraintViolation(err.Err):
			event = lgr.Warn().Err(err.Err).Str("code", apperrors.CodeOf(err.Err))
		case status >= 500:
			event = lgr.Error()
			if err != nil {
				event = event.Err(err.Err).Str("code", apperrors.CodeOf(err.Err))
			}
		case status >= 400:
			event = lgr.Warn()
		default:
			event = lgr.Info()
		}

		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("API")
	}
}

// Recovery turns a panic into the standard failure response
func Recovery(lgr zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		lgr.Error().Str("request_id", GetRequestID(c)).Interface("panic", recovered).Msg("Recovered from panic")
		HandleAPIError(c, fmt.Errorf("%v", recovered))
	})
}
