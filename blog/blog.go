package blog

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"kavachjyotish/i18n"
	"kavachjyotish/store"
)

type BlogModule struct {
	store *store.Store
}

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

func NewBlogModule(s *store.Store) *BlogModule {
	return &BlogModule{store: s}
}

func (b *BlogModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/blog", b.index)
	router.GET("/blog/:id", b.post)
	router.GET("/api/blog", b.listPublished)
}

// index lists published posts only; drafts never reach the public site.
func (b *BlogModule) index(c *gin.Context) {
	lang := i18n.Lang(c)

	posts, err := b.store.PublishedBlogPosts()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "blog_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading articles",
		})
		return
	}

	c.HTML(http.StatusOK, "blog_index.html", gin.H{
		"lang":  lang,
		"posts": posts,
	})
}

func (b *BlogModule) post(c *gin.Context) {
	lang := i18n.Lang(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "blog_error.html", gin.H{
			"lang":  lang,
			"error": "Article not found",
		})
		return
	}

	post, err := b.store.PublishedBlogPost(id)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "blog_error.html", gin.H{
			"lang":  lang,
			"error": "Error loading article",
		})
		return
	}
	if post == nil {
		c.HTML(http.StatusNotFound, "blog_error.html", gin.H{
			"lang":  lang,
			"error": "Article not found",
		})
		return
	}

	c.HTML(http.StatusOK, "blog_post.html", gin.H{
		"lang":        lang,
		"post":        post,
		"contentHTML": template.HTML(renderMarkdown(post.Content)),
	})
}

func (b *BlogModule) listPublished(c *gin.Context) {
	posts, err := b.store.PublishedBlogPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// on error return the original content so the page still renders
		return content
	}
	return buf.String()
}
