package site

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kavachjyotish/i18n"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

type SiteModule struct {
	store *store.Store
}

func NewSiteModule(s *store.Store) *SiteModule {
	return &SiteModule{store: s}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.home)
	router.GET("/about", s.about)
	router.GET("/services", s.services)
	router.GET("/sitemap.xml", s.sitemap)
}

func (s *SiteModule) home(c *gin.Context) {
	lang := i18n.Lang(c)

	// preview sections: three latest articles and three latest testimonials
	posts, _ := s.store.PublishedBlogPosts()
	if len(posts) > 3 {
		posts = posts[:3]
	}

	testimonials, _ := s.store.ApprovedTestimonials()
	if len(testimonials) > 3 {
		testimonials = testimonials[:3]
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"lang":         lang,
		"services":     models.ServiceTypes,
		"posts":        posts,
		"testimonials": testimonials,
	})
}

func (s *SiteModule) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"lang": i18n.Lang(c),
	})
}

func (s *SiteModule) services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", gin.H{
		"lang":     i18n.Lang(c),
		"services": models.ServiceTypes,
	})
}

func (s *SiteModule) sitemap(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}
	domain = strings.TrimSuffix(domain, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	pages := []struct {
		path       string
		changefreq string
		priority   string
	}{
		{"/", "weekly", "1.0"},
		{"/about", "monthly", "0.6"},
		{"/services", "monthly", "0.8"},
		{"/book", "monthly", "0.9"},
		{"/blog", "daily", "0.8"},
		{"/testimonials", "weekly", "0.5"},
		{"/contact", "monthly", "0.5"},
	}

	for _, p := range pages {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + domain + p.path + "</loc>\n")
		sitemap.WriteString("    <changefreq>" + p.changefreq + "</changefreq>\n")
		sitemap.WriteString("    <priority>" + p.priority + "</priority>\n")
		sitemap.WriteString("  </url>\n")
	}

	posts, err := s.store.PublishedBlogPosts()
	if err == nil {
		for _, post := range posts {
			sitemap.WriteString("  <url>\n")
			sitemap.WriteString("    <loc>" + domain + "/blog/" + strconv.Itoa(post.ID) + "</loc>\n")
			sitemap.WriteString("    <lastmod>" + post.UpdatedAt.Format(time.RFC3339) + "</lastmod>\n")
			sitemap.WriteString("    <changefreq>monthly</changefreq>\n")
			sitemap.WriteString("    <priority>0.6</priority>\n")
			sitemap.WriteString("  </url>\n")
		}
	}

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}
