package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	netmail "net/mail"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var contactTemplate = template.Must(template.ParseFS(templateFS, "templates/contact.html"))

// NewEmailSender delivers through SMTP. to is the operator inbox that
// receives contact form submissions.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return NewEmailSenderWithDialer(gomail.NewDialer(host, port, user, password), from, to)
}

func NewEmailSenderWithDialer(d Dialer, from, to string) *EmailSender {
	return &EmailSender{
		From:   from,
		To:     to,
		dialer: d,
	}
}

// SendContact sends one notification for a contact form submission and
// returns the Message-ID it was sent with.
func (s *EmailSender) SendContact(msg entity.ContactMessage) (string, error) {
	m, id, err := s.buildContactMessage(msg)
	if err != nil {
		return "", err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("send contact email via SMTP: %w", err)
	}

	return id, nil
}

func (s *EmailSender) buildContactMessage(msg entity.ContactMessage) (*gomail.Message, string, error) {
	data := ContactEmailData{
		Name:         msg.Name,
		Email:        msg.Email,
		Phone:        orNotProvided(msg.Phone),
		BusinessName: orNotProvided(msg.BusinessName),
		Message:      msg.Message,
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return nil, "", fmt.Errorf("render contact template: %w", err)
	}

	id := uuid.New().String()

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", ContactSubject(msg))
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, senderDomain(s.From)))
	m.SetBody("text/html", body.String())

	return m, id, nil
}

func ContactSubject(msg entity.ContactMessage) string {
	subject := "New contact form submission from " + msg.Name
	if strings.TrimSpace(msg.BusinessName) != "" {
		subject += " (" + msg.BusinessName + ")"
	}
	return subject
}

func senderDomain(from string) string {
	addr := from
	if parsed, err := netmail.ParseAddress(from); err == nil {
		addr = parsed.Address
	}
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}
