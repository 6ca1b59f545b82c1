package domain

import (
	"errors"
	"time"
)

// Message is a contact-form submission held in the inbox until read.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrMessageNotFound = errors.New("contact message not found")
