package models

// Appointment lifecycle. Status always starts at pending; an admin moves it
// forward (or cancels), the visitor never does.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// AppointmentStatuses lists the states an admin can move a booking to.
var AppointmentStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the four appointment states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Service catalog offered on the services page and in the booking form.
const (
	ServiceKundli      = "kundli"
	ServiceGemstone    = "gemstone"
	ServiceVastu       = "vastu"
	ServiceKavach      = "kavach"
	ServiceHoroscope   = "horoscope"
	ServiceMatchmaking = "matchmaking"
)

// ServiceTypes lists the bookable services in display order.
var ServiceTypes = []string{
	ServiceKundli,
	ServiceGemstone,
	ServiceVastu,
	ServiceKavach,
	ServiceHoroscope,
	ServiceMatchmaking,
}

func ValidServiceType(s string) bool {
	for _, svc := range ServiceTypes {
		if svc == s {
			return true
		}
	}
	return false
}
