package entity

// ContactMessage only lives as the payload of one outbound email.
type ContactMessage struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Message      string `json:"message"`
}
