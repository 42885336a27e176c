package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestT_AllLanguages(t *testing.T) {
	tests := []struct {
		lang     string
		key      string
		expected string
	}{
		{"en", "nav.home", "Home"},
		{"hi", "nav.home", "मुखपृष्ठ"},
		{"mr", "nav.home", "मुख्यपृष्ठ"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, T(tt.lang, tt.key))
		})
	}
}

func TestT_FallbackToEnglish(t *testing.T) {
	assert.Equal(t, T("en", "nav.home"), T("fr", "nav.home"))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestResources_NoMissingKeys(t *testing.T) {
	for key := range en {
		_, inHi := hi[key]
		_, inMr := mr[key]
		assert.True(t, inHi, "hi missing key %s", key)
		assert.True(t, inMr, "mr missing key %s", key)
	}
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Lang(c))
	})
	return router
}

func TestMiddleware_DefaultsToEnglish(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "en", w.Body.String())
}

func TestMiddleware_QuerySwitchSetsCookie(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/?lang=hi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "hi", w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "lang=hi")
}

func TestMiddleware_CookiePersists(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "mr"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "mr", w.Body.String())
}

func TestMiddleware_IgnoresUnsupportedLang(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/?lang=de", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "en", w.Body.String())
}
