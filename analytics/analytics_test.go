package analytics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestAnalytics() (*AnalyticsModule, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	return NewAnalyticsModule(db), db
}

func TestTrackablePath(t *testing.T) {
	assert.True(t, trackablePath("/"))
	assert.True(t, trackablePath("/blog/3"))
	assert.True(t, trackablePath("/book"))
	assert.False(t, trackablePath("/api/blog"))
	assert.False(t, trackablePath("/admin/dashboard"))
	assert.False(t, trackablePath("/public/css/site.css"))
	assert.False(t, trackablePath("/sitemap.xml"))
}

func TestExtractBrowser(t *testing.T) {
	chrome := extractBrowser("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36")
	assert.NotNil(t, chrome)
	assert.Equal(t, "Chrome", *chrome)

	firefox := extractBrowser("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
	assert.NotNil(t, firefox)
	assert.Equal(t, "Firefox", *firefox)

	assert.Nil(t, extractBrowser(""))
}

func TestVisitsByDay_ZeroFilled(t *testing.T) {
	a, db := setupTestAnalytics()

	db.Create(&PageEvent{
		Path:      "/",
		Lang:      "en",
		CookieID:  "visitor-1",
		IP:        "127.0.0.1",
		CreatedAt: time.Now(),
	})

	visits := a.VisitsByDay(7)

	assert.Len(t, visits, 7)
	assert.Equal(t, time.Now().Format("2006-01-02"), visits[6].Date)
	assert.Equal(t, int64(1), visits[6].Count)
	assert.Equal(t, int64(0), visits[0].Count)
}

func TestTopPages(t *testing.T) {
	a, db := setupTestAnalytics()

	for i := 0; i < 3; i++ {
		db.Create(&PageEvent{
			Path: "/blog/1", Lang: "en", CookieID: "v", IP: "127.0.0.1", CreatedAt: time.Now(),
		})
	}
	db.Create(&PageEvent{
		Path: "/services", Lang: "hi", CookieID: "v", IP: "127.0.0.1", CreatedAt: time.Now(),
	})

	top := a.TopPages(30, 10)

	assert.Len(t, top, 2)
	assert.Equal(t, "/blog/1", top[0].Path)
	assert.Equal(t, int64(3), top[0].Count)
}

func TestMiddleware_SetsVisitorCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, _ := setupTestAnalytics()

	router := gin.New()
	router.Use(a.Middleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "kavach_visitor_id")
}
