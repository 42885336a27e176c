package booking

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kavachjyotish/email"
	"kavachjyotish/i18n"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

type BookingModule struct {
	store  *store.Store
	mailer *email.Service
}

func NewBookingModule(s *store.Store, mailer *email.Service) *BookingModule {
	return &BookingModule{store: s, mailer: mailer}
}

func (b *BookingModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/book", b.bookPage)
	router.POST("/book", b.bookPost)
	router.POST("/api/appointments", b.createAppointment)
}

// AppointmentInput is the insertable appointment shape: everything the
// visitor may supply, minus system-assigned id/status/timestamps.
type AppointmentInput struct {
	Name         string `form:"name" json:"name" binding:"required"`
	Whatsapp     string `form:"whatsapp" json:"whatsapp" binding:"required"`
	Email        string `form:"email" json:"email"`
	DateOfBirth  string `form:"date_of_birth" json:"date_of_birth"`
	TimeOfBirth  string `form:"time_of_birth" json:"time_of_birth"`
	PlaceOfBirth string `form:"place_of_birth" json:"place_of_birth"`
	ServiceType  string `form:"service_type" json:"service_type" binding:"required"`
	Message      string `form:"message" json:"message"`
}

func (in AppointmentInput) toModel() models.Appointment {
	return models.Appointment{
		Name:         in.Name,
		Whatsapp:     in.Whatsapp,
		Email:        in.Email,
		DateOfBirth:  in.DateOfBirth,
		TimeOfBirth:  in.TimeOfBirth,
		PlaceOfBirth: in.PlaceOfBirth,
		ServiceType:  in.ServiceType,
		Message:      in.Message,
	}
}

func (b *BookingModule) bookPage(c *gin.Context) {
	c.HTML(http.StatusOK, "book.html", gin.H{
		"lang":     i18n.Lang(c),
		"services": models.ServiceTypes,
		"form":     AppointmentInput{},
	})
}

func (b *BookingModule) bookPost(c *gin.Context) {
	lang := i18n.Lang(c)

	var input AppointmentInput
	if err := c.ShouldBind(&input); err != nil || !models.ValidServiceType(input.ServiceType) {
		c.HTML(http.StatusBadRequest, "book.html", gin.H{
			"lang":     lang,
			"services": models.ServiceTypes,
			"error":    "Please fill in all required fields.",
			"form":     input,
		})
		return
	}

	appt, err := b.store.CreateAppointment(input.toModel())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "book.html", gin.H{
			"lang":     lang,
			"services": models.ServiceTypes,
			"error":    "Something went wrong. Please try again.",
			"form":     input,
		})
		return
	}

	b.notify(appt)

	c.HTML(http.StatusOK, "book.html", gin.H{
		"lang":     lang,
		"services": models.ServiceTypes,
		"success":  true,
		"form":     AppointmentInput{},
	})
}

func (b *BookingModule) createAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment data"})
		return
	}
	if !models.ValidServiceType(input.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return
	}

	appt, err := b.store.CreateAppointment(input.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	b.notify(appt)

	c.JSON(http.StatusCreated, appt)
}

// notify mails the astrologer in the background; the visitor never waits
// on SMTP and never sees a delivery failure.
func (b *BookingModule) notify(appt *models.Appointment) {
	go func() {
		if err := b.mailer.SendBookingNotification(appt); err != nil {
			log.Printf("Error sending booking notification for appointment %d: %v", appt.ID, err)
		}
	}()
}
