package cache

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteReadPage(t *testing.T) {
	defer os.RemoveAll("cache")

	err := WritePage("/blog/1", "en", "<html>post</html>")
	assert.NoError(t, err)

	content, found := ReadPage("/blog/1", "en", time.Hour)
	assert.True(t, found)
	assert.Equal(t, "<html>post</html>", content)
}

func TestReadPage_LanguageSeparation(t *testing.T) {
	defer os.RemoveAll("cache")

	WritePage("/blog/1", "en", "english")
	WritePage("/blog/1", "hi", "hindi")

	en, _ := ReadPage("/blog/1", "en", time.Hour)
	hi, _ := ReadPage("/blog/1", "hi", time.Hour)

	assert.Equal(t, "english", en)
	assert.Equal(t, "hindi", hi)
}

func TestReadPage_Expired(t *testing.T) {
	defer os.RemoveAll("cache")

	WritePage("/blog/2", "en", "stale")

	_, found := ReadPage("/blog/2", "en", 0)
	assert.False(t, found)
}

func TestClearPages(t *testing.T) {
	defer os.RemoveAll("cache")

	WritePage("/blog/3", "en", "content")
	assert.NoError(t, ClearPages())

	_, found := ReadPage("/blog/3", "en", time.Hour)
	assert.False(t, found)
}

func TestPageCache_MissThenHit(t *testing.T) {
	defer os.RemoveAll("cache")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PageCache(time.Hour))
	hits := 0
	router.GET("/blog", func(c *gin.Context) {
		hits++
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html>blog</html>"))
	})

	req, _ := http.NewRequest("GET", "/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "<html>blog</html>", w.Body.String())
	assert.Equal(t, 1, hits)
}

func TestPageCache_SkipsNonBlogPaths(t *testing.T) {
	defer os.RemoveAll("cache")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(PageCache(time.Hour))
	router.GET("/contact", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("contact"))
	})

	req, _ := http.NewRequest("GET", "/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("X-Cache"))
}
