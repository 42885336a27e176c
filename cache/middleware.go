package cache

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kavachjyotish/i18n"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// PageCache caches successful HTML responses for the public blog pages.
// Hits are served straight from disk; misses capture the rendered body.
func PageCache(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" || !isCacheablePath(c.Request.URL.Path) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		lang := i18n.Lang(c)

		if cached, found := ReadPage(path, lang, maxAge); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK &&
			strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/html") {
			WritePage(path, lang, writer.body.String())
		}
	}
}

func isCacheablePath(path string) bool {
	return path == "/blog" || strings.HasPrefix(path, "/blog/")
}
