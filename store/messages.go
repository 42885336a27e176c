package store

import (
	"errors"

	"gorm.io/gorm"

	"kavachjyotish/models"
)

func (s *Store) CreateContactMessage(msg models.ContactMessage) (*models.ContactMessage, error) {
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ContactMessages returns every message, newest first.
func (s *Store) ContactMessages() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := s.db.Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

// MarkMessageRead flips is_read to true. The flag never reverts. Returns
// (nil, nil) when no row matches the id.
func (s *Store) MarkMessageRead(id int) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	msg.IsRead = true
	if err := s.db.Save(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
