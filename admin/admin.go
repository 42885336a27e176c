package admin

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"kavachjyotish/analytics"
	"kavachjyotish/i18n"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

// AdminModule serves the dashboard and the authenticated management API.
// There is a single administrator whose credentials come from the
// environment; the matching principal row is upserted on every login.
type AdminModule struct {
	store     *store.Store
	analytics *analytics.AnalyticsModule
}

func NewAdminModule(s *store.Store, analyticsModule *analytics.AnalyticsModule) *AdminModule {
	return &AdminModule{
		store:     s,
		analytics: analyticsModule,
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/admin", a.adminRoot)
	router.GET("/admin/login", a.loginPage)
	router.POST("/admin/login", a.loginPost)
	router.GET("/admin/logout", a.logout)
	router.GET("/admin/dashboard", a.requireAuth, a.dashboard)

	api := router.Group("/api/admin")
	api.Use(a.requireAuth)
	{
		api.GET("/user", a.currentUser)
		api.GET("/appointments", a.listAppointments)
		api.PATCH("/appointments/:id/status", a.updateAppointmentStatus)
		api.GET("/messages", a.listMessages)
		api.PATCH("/messages/:id/read", a.markMessageRead)
		api.GET("/blog", a.listBlogPosts)
		api.POST("/blog", a.createBlogPost)
		api.PATCH("/blog/:id", a.updateBlogPost)
		api.DELETE("/blog/:id", a.deleteBlogPost)
		api.GET("/testimonials", a.listTestimonials)
		api.PATCH("/testimonials/:id/approve", a.approveTestimonial)
	}
}

// requireAuth gates every admin route on a logged-in session. API calls get
// a 401 JSON body, page requests are sent to the login form.
func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/admin/login")
		}
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AdminModule) adminRoot(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *AdminModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"lang": i18n.Lang(c),
	})
}

func (a *AdminModule) loginPost(c *gin.Context) {
	lang := i18n.Lang(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if adminEmail == "" || adminHash == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not configured, admin login disabled")
		c.HTML(http.StatusServiceUnavailable, "admin_login.html", gin.H{
			"lang":  lang,
			"error": "Admin login is not configured",
		})
		return
	}

	if email != adminEmail || !checkPasswordHash(password, adminHash) {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"lang":  lang,
			"error": "Incorrect email or password",
			"email": email,
		})
		return
	}

	user, err := a.store.UpsertUser(models.User{
		ID:        "admin",
		Email:     adminEmail,
		FirstName: "Admin",
	})
	if err != nil {
		log.Printf("Error upserting admin user: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"lang":  lang,
			"error": "Something went wrong. Please try again.",
			"email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *AdminModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/admin/login")
}

func (a *AdminModule) dashboard(c *gin.Context) {
	lang := i18n.Lang(c)

	appointments, err := a.store.Appointments()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading appointments",
		})
		return
	}

	messages, err := a.store.ContactMessages()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading messages",
		})
		return
	}

	posts, err := a.store.BlogPosts()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading blog posts",
		})
		return
	}

	testimonials, err := a.store.Testimonials()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading testimonials",
		})
		return
	}

	pending := 0
	for _, appt := range appointments {
		if appt.Status == models.StatusPending {
			pending++
		}
	}

	unread := 0
	for _, msg := range messages {
		if !msg.IsRead {
			unread++
		}
	}

	data := gin.H{
		"lang":                lang,
		"appointments":        appointments,
		"pendingAppointments": pending,
		"messages":            messages,
		"unreadMessages":      unread,
		"posts":               posts,
		"testimonials":        testimonials,
		"statuses":            models.AppointmentStatuses,
	}

	if a.analytics != nil {
		data["visitsByDay"] = a.analytics.VisitsByDay(15)
		data["topPages"] = a.analytics.TopPages(30, 10)
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", data)
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
