package contact

import "strings"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,notblank,email"`
	Subject string `json:"subject" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

// Normalize trims surrounding whitespace so rules see what will be stored
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	EmailSent bool     `json:"email_sent"`
	Notified  []string `json:"notified"`
}
