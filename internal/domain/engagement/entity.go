// internal/domain/engagement/entity.go
package engagement

import "time"

// ContactMessage is a submitted contact form entry.
type ContactMessage struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Subscription is one newsletter signup.
type Subscription struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
