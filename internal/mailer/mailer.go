// Package mailer delivers contact-form messages to the site owner.
package mailer

import (
	"fmt"
	"net/smtp"

	"soulforge/internal/config"
)

// Message is one contact-form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// Mailer sends a contact message somewhere the owner will see it.
type Mailer interface {
	Send(msg Message) error
}

// SMTP delivers messages via a plain-auth SMTP relay.
type SMTP struct {
	host     string
	port     string
	from     string
	password string
	to       string
}

// NewSMTP builds a mailer from config.
func NewSMTP(cfg *config.Config) *SMTP {
	return &SMTP{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		password: cfg.SMTPPassword,
		to:       cfg.ContactTo,
	}
}

// Configured reports whether the relay settings are present. The contact
// endpoint degrades to an error response when they are not.
func (s *SMTP) Configured() bool {
	return s.host != "" && s.from != "" && s.to != ""
}

func (s *SMTP) Send(msg Message) error {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from the forge"
	}
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body)

	payload := []byte("Subject: " + subject + "\r\n" +
		"From: " + s.from + "\r\n" +
		"To: " + s.to + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{s.to}, payload)
}
