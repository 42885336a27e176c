package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kavachjyotish/i18n"
)

// PageEvent records one visit to a public page.
type PageEvent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Path      string    `gorm:"not null;index"`
	Lang      string    `gorm:"not null"`
	CookieID  string    `gorm:"not null;index"`
	IP        string    `gorm:"not null"`
	Browser   *string   // nullable
	CreatedAt time.Time `gorm:"index"`
}

type AnalyticsModule struct {
	db *gorm.DB
}

// NewAnalyticsModule migrates the events table. Returns nil (analytics
// disabled) when no db handle is available.
func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		log.Println("Analytics DB is nil, analytics will be disabled")
		return nil
	}

	if err := db.AutoMigrate(&PageEvent{}); err != nil {
		log.Printf("Error migrating page_events table: %v", err)
		return nil
	}

	return &AnalyticsModule{db: db}
}

// Middleware records public GET page views. Admin and API traffic is not
// tracked.
func (a *AnalyticsModule) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a != nil && c.Request.Method == "GET" && trackablePath(c.Request.URL.Path) {
			a.TrackVisit(c)
		}
		c.Next()
	}
}

func trackablePath(path string) bool {
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/admin") {
		return false
	}
	if strings.HasPrefix(path, "/public/") || path == "/sitemap.xml" {
		return false
	}
	return true
}

// TrackVisit stores one event, throttled so a refresh within 30 minutes of
// the same page by the same visitor is not double-counted.
func (a *AnalyticsModule) TrackVisit(c *gin.Context) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)
	path := c.Request.URL.Path

	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)
	var recent PageEvent
	err := a.db.Where("cookie_id = ? AND path = ? AND created_at > ?",
		cookieID, path, thirtyMinutesAgo).First(&recent).Error
	if err == nil {
		return
	}

	event := PageEvent{
		Path:      path,
		Lang:      i18n.Lang(c),
		CookieID:  cookieID,
		IP:        a.getClientIP(c),
		Browser:   extractBrowser(c.Request.UserAgent()),
		CreatedAt: time.Now(),
	}

	// write asynchronously so tracking never delays a page render
	go func() {
		if err := a.db.Create(&event).Error; err != nil {
			log.Printf("Error saving analytics event: %v", err)
		}
	}()
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	cookieName := "kavach_visitor_id"

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	data := time.Now().String() + c.ClientIP() + c.Request.UserAgent()
	hash := sha256.Sum256([]byte(data))
	cookieID := hex.EncodeToString(hash[:])

	c.SetCookie(
		cookieName,
		cookieID,
		60*60*24*365*2, // 2 years
		"/",
		"",
		false,
		true, // httpOnly
	)

	return cookieID
}

func (a *AnalyticsModule) getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func extractBrowser(userAgent string) *string {
	if userAgent == "" {
		return nil
	}

	ua := strings.ToLower(userAgent)
	var browser string

	// order matters, the more specific browsers first
	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		browser = "Chrome"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	default:
		browser = "Other"
	}

	return &browser
}

// DayVisits is the number of visits on one day.
type DayVisits struct {
	Date  string
	Count int64
}

// PageVisits is the number of visits to one page.
type PageVisits struct {
	Path  string
	Count int64
}

// VisitsByDay returns visit counts per day for the last N days, zero-filled.
func (a *AnalyticsModule) VisitsByDay(days int) []DayVisits {
	if a == nil || a.db == nil {
		return []DayVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []struct {
		Date  string
		Count int64
	}

	a.db.Model(&PageEvent{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("created_at >= ?", startDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&results)

	dayVisits := make([]DayVisits, days)
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - 1 - i))
		dayVisits[i] = DayVisits{Date: date.Format("2006-01-02"), Count: 0}
	}

	for _, result := range results {
		for i := range dayVisits {
			if dayVisits[i].Date == result.Date {
				dayVisits[i].Count = result.Count
				break
			}
		}
	}

	return dayVisits
}

// TopPages returns the most visited pages of the last N days.
func (a *AnalyticsModule) TopPages(days, limit int) []PageVisits {
	if a == nil || a.db == nil {
		return []PageVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []PageVisits
	a.db.Model(&PageEvent{}).
		Select("path, COUNT(*) as count").
		Where("created_at >= ?", startDate).
		Group("path").
		Order("count DESC").
		Limit(limit).
		Scan(&results)

	return results
}
