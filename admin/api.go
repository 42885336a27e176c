package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kavachjyotish/cache"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

func (a *AdminModule) currentUser(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := a.store.GetUser(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (a *AdminModule) listAppointments(c *gin.Context) {
	appointments, err := a.store.Appointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (a *AdminModule) updateAppointmentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	appointment, err := a.store.UpdateAppointmentStatus(id, body.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (a *AdminModule) listMessages(c *gin.Context) {
	messages, err := a.store.ContactMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (a *AdminModule) markMessageRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	msg, err := a.store.MarkMessageRead(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (a *AdminModule) listBlogPosts(c *gin.Context) {
	posts, err := a.store.BlogPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// BlogPostInput is the insertable blog post shape. Posts default to
// published unless the draft flag is sent.
type BlogPostInput struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Excerpt     string `json:"excerpt" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url"`
	IsPublished *bool  `json:"is_published"`
}

func (a *AdminModule) createBlogPost(c *gin.Context) {
	var input BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post data"})
		return
	}

	post := models.BlogPost{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsPublished: true,
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	created, err := a.store.CreateBlogPost(post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	cache.ClearPages()
	c.JSON(http.StatusCreated, created)
}

// BlogPostPatch mirrors the updatable fields; absent fields stay untouched.
type BlogPostPatch struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	IsPublished *bool   `json:"is_published"`
}

func (a *AdminModule) updateBlogPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post id"})
		return
	}

	var patch BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post data"})
		return
	}

	post, err := a.store.UpdateBlogPost(id, store.BlogPostUpdate{
		Title:       patch.Title,
		Content:     patch.Content,
		Excerpt:     patch.Excerpt,
		Category:    patch.Category,
		ImageURL:    patch.ImageURL,
		IsPublished: patch.IsPublished,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	cache.ClearPages()
	c.JSON(http.StatusOK, post)
}

func (a *AdminModule) deleteBlogPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog post id"})
		return
	}

	if err := a.store.DeleteBlogPost(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}

	cache.ClearPages()
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}

func (a *AdminModule) listTestimonials(c *gin.Context) {
	testimonials, err := a.store.Testimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (a *AdminModule) approveTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial id"})
		return
	}

	testimonial, err := a.store.ApproveTestimonial(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}
	if testimonial == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, testimonial)
}
