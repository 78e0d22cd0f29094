package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tasklist-widget/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the client's X-Request-ID or assigns a new one, and
// puts it on the request context so log lines carry it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request after it has been served.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		default:
			mw.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, time.Since(start))
		}
	}
}
