package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently unwraps gzip encoded request bodies. A
// body that does not open as a gzip stream ends the request with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		raw := c.Request.Body
		reader, err := gzip.NewReader(raw)
		if err != nil {
			_ = raw.Close()
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer raw.Close()
		defer reader.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
