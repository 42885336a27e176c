package models

import "time"

// User rows mirror the identity provider's principal. The id is supplied
// externally and rows are upserted on every login, never deleted here.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"unique" json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Appointment struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Whatsapp     string    `gorm:"not null" json:"whatsapp"`
	Email        string    `json:"email"`
	DateOfBirth  string    `json:"date_of_birth"`
	TimeOfBirth  string    `json:"time_of_birth"`
	PlaceOfBirth string    `json:"place_of_birth"`
	ServiceType  string    `gorm:"not null" json:"service_type"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type BlogPost struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	Category    string    `gorm:"not null;index" json:"category"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `gorm:"default:true;index" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Rating is a bounded 1-5 integer; the bound is enforced at the binding
// layer, the column itself is a plain small integer.
type Testimonial struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Location   string    `gorm:"not null" json:"location"`
	Rating     int       `gorm:"not null" json:"rating"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Service    string    `gorm:"not null" json:"service"`
	IsApproved bool      `gorm:"default:false;index" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
