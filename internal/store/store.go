// Package store persists contact-form submissions. Chat sessions are never
// written here; only the contact page touches durable storage.
package store

import (
	"context"
	"time"
)

// ContactSubmission is one message sent through the contact form.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository is the storage contract for contact submissions.
type Repository interface {
	SaveContact(ctx context.Context, sub ContactSubmission) (int64, error)
	ListContacts(ctx context.Context) ([]ContactSubmission, error)
	Ping(ctx context.Context) error
	Close() error
}
