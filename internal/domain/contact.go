package domain

import "time"

// ContactMessage is a message left through the storefront contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
