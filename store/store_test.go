package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kavachjyotish/models"
)

func setupTestStore() *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.BlogPost{},
		&models.Testimonial{},
	)
	return NewStore(db)
}

func createTestPost(s *Store, published bool) *models.BlogPost {
	post, _ := s.CreateBlogPost(models.BlogPost{
		Title:       "Mercury Retrograde Guide",
		Content:     "# What it means\n\nDetailed guidance.",
		Excerpt:     "What Mercury retrograde means for you.",
		Category:    "planets",
		IsPublished: published,
	})
	return post
}

func createTestTestimonial(s *Store, rating int) *models.Testimonial {
	t, _ := s.CreateTestimonial(models.Testimonial{
		Name:     "Sunita Deshmukh",
		Location: "Nashik",
		Rating:   rating,
		Text:     "The kundli reading was spot on.",
		Service:  models.ServiceKundli,
	})
	return t
}

func TestCreateAppointment_Defaults(t *testing.T) {
	s := setupTestStore()

	appt, err := s.CreateAppointment(models.Appointment{
		Name:        "Asha Rao",
		Whatsapp:    "+919812345678",
		ServiceType: models.ServiceKundli,
	})

	assert.NoError(t, err)
	assert.NotZero(t, appt.ID)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Empty(t, appt.Email)
	assert.False(t, appt.CreatedAt.IsZero())
}

func TestAppointments_NewestFirst(t *testing.T) {
	s := setupTestStore()

	first, _ := s.CreateAppointment(models.Appointment{
		Name: "First", Whatsapp: "+911111111111", ServiceType: models.ServiceVastu,
	})
	second, _ := s.CreateAppointment(models.Appointment{
		Name: "Second", Whatsapp: "+912222222222", ServiceType: models.ServiceKavach,
	})

	appts, err := s.Appointments()
	assert.NoError(t, err)
	assert.Len(t, appts, 2)
	assert.False(t, appts[0].CreatedAt.Before(appts[1].CreatedAt))
	assert.NotNil(t, first)
	assert.NotNil(t, second)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	s := setupTestStore()

	appt, _ := s.CreateAppointment(models.Appointment{
		Name: "Asha Rao", Whatsapp: "+919812345678", ServiceType: models.ServiceKundli,
	})

	updated, err := s.UpdateAppointmentStatus(appt.ID, models.StatusConfirmed)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(appt.UpdatedAt))
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	s := setupTestStore()

	updated, err := s.UpdateAppointmentStatus(9999, models.StatusConfirmed)
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMarkMessageRead(t *testing.T) {
	s := setupTestStore()

	msg, _ := s.CreateContactMessage(models.ContactMessage{
		Name:    "Vikram Joshi",
		Email:   "vikram@example.com",
		Message: "Do you offer vastu visits in Mumbai?",
	})
	assert.False(t, msg.IsRead)

	read, err := s.MarkMessageRead(msg.ID)
	assert.NoError(t, err)
	assert.NotNil(t, read)
	assert.True(t, read.IsRead)

	// flipping again is harmless, the flag never reverts
	again, err := s.MarkMessageRead(msg.ID)
	assert.NoError(t, err)
	assert.True(t, again.IsRead)
}

func TestMarkMessageRead_NotFound(t *testing.T) {
	s := setupTestStore()

	read, err := s.MarkMessageRead(42)
	assert.NoError(t, err)
	assert.Nil(t, read)
}

func TestPublishedBlogPosts_SubsetOfAll(t *testing.T) {
	s := setupTestStore()

	createTestPost(s, true)
	createTestPost(s, true)
	createTestPost(s, false)

	all, err := s.BlogPosts()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	published, err := s.PublishedBlogPosts()
	assert.NoError(t, err)
	assert.Len(t, published, 2)
	for _, p := range published {
		assert.True(t, p.IsPublished)
	}
}

func TestPublishedBlogPost_HidesDrafts(t *testing.T) {
	s := setupTestStore()

	draft := createTestPost(s, false)

	post, err := s.PublishedBlogPost(draft.ID)
	assert.NoError(t, err)
	assert.Nil(t, post)
}

func TestUpdateBlogPost_PartialFields(t *testing.T) {
	s := setupTestStore()

	post := createTestPost(s, true)

	title := "Updated Title"
	unpub := false
	updated, err := s.UpdateBlogPost(post.ID, BlogPostUpdate{
		Title:       &title,
		IsPublished: &unpub,
	})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, post.Content, updated.Content)
	assert.False(t, updated.IsPublished)
}

func TestUpdateBlogPost_NotFound(t *testing.T) {
	s := setupTestStore()

	title := "Ghost"
	updated, err := s.UpdateBlogPost(123, BlogPostUpdate{Title: &title})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteBlogPost_Idempotent(t *testing.T) {
	s := setupTestStore()

	post := createTestPost(s, true)

	assert.NoError(t, s.DeleteBlogPost(post.ID))
	assert.NoError(t, s.DeleteBlogPost(post.ID))

	all, _ := s.BlogPosts()
	assert.Empty(t, all)
}

func TestApproveTestimonial_MovesIntoApprovedList(t *testing.T) {
	s := setupTestStore()

	pending := createTestTestimonial(s, 5)

	approved, err := s.ApprovedTestimonials()
	assert.NoError(t, err)
	assert.Empty(t, approved)

	updated, err := s.ApproveTestimonial(pending.ID)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.True(t, updated.IsApproved)
	assert.Equal(t, pending.Rating, updated.Rating)
	assert.Equal(t, pending.Name, updated.Name)
	assert.Equal(t, pending.Text, updated.Text)

	approved, err = s.ApprovedTestimonials()
	assert.NoError(t, err)
	assert.Len(t, approved, 1)
	assert.Equal(t, pending.ID, approved[0].ID)
}

func TestApproveTestimonial_NotFound(t *testing.T) {
	s := setupTestStore()

	updated, err := s.ApproveTestimonial(7)
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestApprovedTestimonials_OnlyApproved(t *testing.T) {
	s := setupTestStore()

	a := createTestTestimonial(s, 4)
	createTestTestimonial(s, 3)
	s.ApproveTestimonial(a.ID)

	approved, err := s.ApprovedTestimonials()
	assert.NoError(t, err)
	assert.Len(t, approved, 1)
	for _, ts := range approved {
		assert.True(t, ts.IsApproved)
	}
}

func TestUpsertUser_InsertThenOverwrite(t *testing.T) {
	s := setupTestStore()

	first, err := s.UpsertUser(models.User{
		ID:        "auth0|12345",
		Email:     "guru@kavachjyotish.com",
		FirstName: "Pandit",
		LastName:  "Sharma",
	})
	assert.NoError(t, err)
	assert.Equal(t, "guru@kavachjyotish.com", first.Email)

	second, err := s.UpsertUser(models.User{
		ID:        "auth0|12345",
		Email:     "pandit@kavachjyotish.com",
		FirstName: "Pandit",
		LastName:  "Sharma",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pandit@kavachjyotish.com", second.Email)

	var count int64
	s.db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := s.GetUser("auth0|12345")
	assert.NoError(t, err)
	assert.Equal(t, "pandit@kavachjyotish.com", got.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	s := setupTestStore()

	user, err := s.GetUser("nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
