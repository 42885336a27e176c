package testimonials

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kavachjyotish/i18n"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

type TestimonialsModule struct {
	store *store.Store
}

func NewTestimonialsModule(s *store.Store) *TestimonialsModule {
	return &TestimonialsModule{store: s}
}

func (t *TestimonialsModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/testimonials", t.page)
	router.POST("/testimonials", t.submitPost)
	router.GET("/api/testimonials", t.listApproved)
	router.POST("/api/testimonials", t.create)
}

// TestimonialInput is the insertable testimonial shape. Rating is bounded
// here rather than at the column level.
type TestimonialInput struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Location string `form:"location" json:"location" binding:"required"`
	Rating   int    `form:"rating" json:"rating" binding:"required,min=1,max=5"`
	Text     string `form:"text" json:"text" binding:"required"`
	Service  string `form:"service" json:"service" binding:"required"`
}

func (in TestimonialInput) toModel() models.Testimonial {
	return models.Testimonial{
		Name:     in.Name,
		Location: in.Location,
		Rating:   in.Rating,
		Text:     in.Text,
		Service:  in.Service,
	}
}

func (t *TestimonialsModule) page(c *gin.Context) {
	lang := i18n.Lang(c)

	approved, err := t.store.ApprovedTestimonials()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "testimonials.html", gin.H{
			"lang":  lang,
			"error": "Error loading testimonials",
			"form":  TestimonialInput{},
		})
		return
	}

	c.HTML(http.StatusOK, "testimonials.html", gin.H{
		"lang":         lang,
		"testimonials": approved,
		"services":     models.ServiceTypes,
		"form":         TestimonialInput{},
	})
}

func (t *TestimonialsModule) submitPost(c *gin.Context) {
	lang := i18n.Lang(c)

	var input TestimonialInput
	if err := c.ShouldBind(&input); err != nil {
		approved, _ := t.store.ApprovedTestimonials()
		c.HTML(http.StatusBadRequest, "testimonials.html", gin.H{
			"lang":         lang,
			"testimonials": approved,
			"services":     models.ServiceTypes,
			"error":        "Please fill in all fields and pick a rating from 1 to 5.",
			"form":         input,
		})
		return
	}

	if _, err := t.store.CreateTestimonial(input.toModel()); err != nil {
		approved, _ := t.store.ApprovedTestimonials()
		c.HTML(http.StatusInternalServerError, "testimonials.html", gin.H{
			"lang":         lang,
			"testimonials": approved,
			"services":     models.ServiceTypes,
			"error":        "Something went wrong. Please try again.",
			"form":         input,
		})
		return
	}

	approved, _ := t.store.ApprovedTestimonials()
	c.HTML(http.StatusOK, "testimonials.html", gin.H{
		"lang":         lang,
		"testimonials": approved,
		"services":     models.ServiceTypes,
		"success":      true,
		"form":         TestimonialInput{},
	})
}

func (t *TestimonialsModule) listApproved(c *gin.Context) {
	approved, err := t.store.ApprovedTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, approved)
}

func (t *TestimonialsModule) create(c *gin.Context) {
	var input TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial data"})
		return
	}

	testimonial, err := t.store.CreateTestimonial(input.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}
