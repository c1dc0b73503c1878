package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger records one line per request after the handler chain ran.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		line := c.Request.Method + " " + path
		if errs := c.Errors.String(); errs != "" {
			line += " " + errs
		}
		log.Printf("%s %d %v %s", c.ClientIP(), c.Writer.Status(), time.Since(start), line)
	}
}
