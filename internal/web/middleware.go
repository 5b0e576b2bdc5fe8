package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-board/pkg/logging"
)

// accessLog writes one structured line per request
func accessLog(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		keyvals := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			keyvals = append(keyvals, "errors", c.Errors.String())
		}

		if status >= 500 {
			log.Warn("http request", keyvals...)
			return
		}
		log.Debug("http request", keyvals...)
	}
}
