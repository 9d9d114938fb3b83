package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, client, status, latency and the caller when known.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		caller := "-"
		if userID, err := GetUserIDFromContext(c); err == nil {
			caller = userID.String()
		}

		log.Printf(
			"[%s] %s %s %d %s user=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency,
			caller,
		)
	}
}
