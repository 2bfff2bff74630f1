package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags every request with an id, attaches a child logger to
// the request context and writes one access log line per request.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		log := base.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = zerologFrom(c).Error()
		case status >= 400:
			ev = zerologFrom(c).Warn()
		default:
			ev = zerologFrom(c).Info()
		}

		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns a panic into a logged 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		httperr.Respond(c, fmt.Errorf("panic: %v", recovered))
	})
}

func zerologFrom(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
