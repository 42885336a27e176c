package contact

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kavachjyotish/email"
	"kavachjyotish/i18n"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

type ContactModule struct {
	store  *store.Store
	mailer *email.Service
}

func NewContactModule(s *store.Store, mailer *email.Service) *ContactModule {
	return &ContactModule{store: s, mailer: mailer}
}

func (m *ContactModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/contact", m.contactPage)
	router.POST("/contact", m.contactPost)
	router.POST("/api/contact", m.createMessage)
}

type MessageInput struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message" binding:"required"`
}

func (in MessageInput) toModel() models.ContactMessage {
	return models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}

func (m *ContactModule) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"lang": i18n.Lang(c),
		"form": MessageInput{},
	})
}

func (m *ContactModule) contactPost(c *gin.Context) {
	lang := i18n.Lang(c)

	var input MessageInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"lang":  lang,
			"error": "Please fill in all required fields.",
			"form":  input,
		})
		return
	}

	msg, err := m.store.CreateContactMessage(input.toModel())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"lang":  lang,
			"error": "Something went wrong. Please try again.",
			"form":  input,
		})
		return
	}

	m.notify(msg)

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"lang":    lang,
		"success": true,
		"form":    MessageInput{},
	})
}

func (m *ContactModule) createMessage(c *gin.Context) {
	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message data"})
		return
	}

	msg, err := m.store.CreateContactMessage(input.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact message"})
		return
	}

	m.notify(msg)

	c.JSON(http.StatusCreated, msg)
}

func (m *ContactModule) notify(msg *models.ContactMessage) {
	go func() {
		if err := m.mailer.SendContactNotification(msg); err != nil {
			log.Printf("Error sending contact notification for message %d: %v", msg.ID, err)
		}
	}()
}
