package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kavachjyotish/models"
)

// CreateAppointment persists one booking request. Status defaults to
// pending via the column default; the returned row carries the generated
// id and timestamps.
func (s *Store) CreateAppointment(appt models.Appointment) (*models.Appointment, error) {
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	if err := s.db.Create(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// Appointments returns every appointment, newest first.
func (s *Store) Appointments() ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.Order("created_at DESC").Find(&appts).Error
	return appts, err
}

// UpdateAppointmentStatus sets the status of one appointment and touches
// updated_at. Returns (nil, nil) when no row matches the id.
func (s *Store) UpdateAppointmentStatus(id int, status string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	appt.Status = status
	appt.UpdatedAt = time.Now()
	if err := s.db.Save(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}
