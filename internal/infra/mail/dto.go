package mail

import "gopkg.in/gomail.v2"

// ContactEmailData feeds templates/contact.html.
type ContactEmailData struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string
	Message      string
}

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From   string
	To     string
	dialer Dialer
}
