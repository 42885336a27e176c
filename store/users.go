package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kavachjyotish/models"
)

// GetUser returns the user with the given provider-assigned id, or nil if
// no such row exists.
func (s *Store) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user, or overwrites its mutable fields and
// refreshes updated_at when a row with the same id already exists. A single
// atomic insert-or-update, not application-level branching.
func (s *Store) UpsertUser(user models.User) (*models.User, error) {
	user.UpdatedAt = time.Now()
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	var saved models.User
	if err := s.db.First(&saved, "id = ?", user.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
