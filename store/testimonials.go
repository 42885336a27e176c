package store

import (
	"errors"

	"gorm.io/gorm"

	"kavachjyotish/models"
)

func (s *Store) CreateTestimonial(t models.Testimonial) (*models.Testimonial, error) {
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Testimonials returns every testimonial, pending ones included, newest first.
func (s *Store) Testimonials() ([]models.Testimonial, error) {
	var ts []models.Testimonial
	err := s.db.Order("created_at DESC").Find(&ts).Error
	return ts, err
}

// ApprovedTestimonials returns only publicly visible testimonials, newest first.
func (s *Store) ApprovedTestimonials() ([]models.Testimonial, error) {
	var ts []models.Testimonial
	err := s.db.Where("is_approved = ?", true).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

// ApproveTestimonial flips is_approved to true, leaving every other field
// unchanged. Returns (nil, nil) when no row matches the id.
func (s *Store) ApproveTestimonial(id int) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	t.IsApproved = true
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
