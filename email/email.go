package email

import (
	"fmt"
	"net/smtp"
	"os"

	"kavachjyotish/models"
)

// Service mails the astrologer when a visitor books a consultation or
// sends a contact message. Configured entirely from env; when SMTP_HOST is
// unset the service is disabled and Send* calls are no-ops.
type Service struct {
	host     string
	port     string
	user     string
	password string
	from     string
	notifyTo string
}

func NewService() *Service {
	return &Service{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		notifyTo: os.Getenv("NOTIFY_EMAIL"),
	}
}

func (e *Service) Enabled() bool {
	return e.host != "" && e.notifyTo != ""
}

func (e *Service) SendBookingNotification(appt *models.Appointment) error {
	if !e.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New booking request #%d - %s", appt.ID, appt.Name)
	body := fmt.Sprintf(`A new consultation booking has been submitted.

Name: %s
WhatsApp: %s
Email: %s
Service: %s
Date of birth: %s
Time of birth: %s
Place of birth: %s

Message:
%s

Open the admin dashboard to confirm the appointment.
`, appt.Name, appt.Whatsapp, appt.Email, appt.ServiceType,
		appt.DateOfBirth, appt.TimeOfBirth, appt.PlaceOfBirth, appt.Message)

	return e.send(subject, body)
}

func (e *Service) SendContactNotification(msg *models.ContactMessage) error {
	if !e.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New contact message #%d - %s", msg.ID, msg.Name)
	body := fmt.Sprintf(`A new message has arrived through the contact form.

Name: %s
Email: %s
Subject: %s

%s
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	return e.send(subject, body)
}

func (e *Service) send(subject, body string) error {
	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", e.from, e.notifyTo, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{e.notifyTo}, []byte(message)); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
