package i18n

import (
	"github.com/gin-gonic/gin"
)

const (
	DefaultLang = "en"
	cookieName  = "lang"
	contextKey  = "lang"
)

// Supported lists the site languages in navbar order.
var Supported = []string{"en", "hi", "mr"}

var resources = map[string]map[string]string{
	"en": en,
	"hi": hi,
	"mr": mr,
}

func supported(lang string) bool {
	_, ok := resources[lang]
	return ok
}

// T returns the translation for a dotted key, falling back to English and
// finally to the key itself so a missing entry never blanks a page.
func T(lang, key string) string {
	if res, ok := resources[lang]; ok {
		if v, ok := res[key]; ok {
			return v
		}
	}
	if v, ok := resources[DefaultLang][key]; ok {
		return v
	}
	return key
}

// Middleware resolves the request language from the ?lang= query parameter,
// then the lang cookie, then the default. A query switch is persisted in
// the cookie so the choice sticks across navigation.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if supported(lang) {
			c.SetCookie(cookieName, lang, 60*60*24*365, "/", "", false, false)
		} else {
			lang = ""
		}

		if lang == "" {
			if cookie, err := c.Cookie(cookieName); err == nil && supported(cookie) {
				lang = cookie
			}
		}
		if lang == "" {
			lang = DefaultLang
		}

		c.Set(contextKey, lang)
		c.Next()
	}
}

// Lang returns the language resolved by Middleware for this request.
func Lang(c *gin.Context) string {
	if lang, ok := c.Get(contextKey); ok {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return DefaultLang
}
