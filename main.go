package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kavachjyotish/admin"
	"kavachjyotish/analytics"
	"kavachjyotish/blog"
	"kavachjyotish/booking"
	"kavachjyotish/cache"
	"kavachjyotish/common"
	"kavachjyotish/contact"
	"kavachjyotish/database"
	"kavachjyotish/email"
	"kavachjyotish/i18n"
	"kavachjyotish/site"
	"kavachjyotish/store"
	"kavachjyotish/testimonials"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer common.CloseDb(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	dataStore := store.NewStore(db)
	mailer := email.NewService()
	if !mailer.Enabled() {
		log.Println("SMTP not configured, email notifications disabled")
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	sessionStore := cookie.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("kavach-session", sessionStore))
	router.Use(i18n.Middleware())

	analyticsModule := analytics.NewAnalyticsModule(db)
	router.Use(analyticsModule.Middleware())

	router.Use(cache.PageCache(10 * time.Minute))

	router.SetFuncMap(map[string]interface{}{
		"t": i18n.T,
		"now": func() time.Time {
			return time.Now()
		},
		"domain": func() string {
			d := os.Getenv("DOMAIN")
			if d == "" {
				return "http://localhost:8080"
			}
			return d
		},
	})

	router.LoadHTMLGlob("*/views/*.html")

	router.Static("/public", "./public")

	site.NewSiteModule(dataStore).RegisterRoutes(router)
	booking.NewBookingModule(dataStore, mailer).RegisterRoutes(router)
	contact.NewContactModule(dataStore, mailer).RegisterRoutes(router)
	blog.NewBlogModule(dataStore).RegisterRoutes(router)
	testimonials.NewTestimonialsModule(dataStore).RegisterRoutes(router)
	admin.NewAdminModule(dataStore, analyticsModule).RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
