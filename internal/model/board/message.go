package board

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingField marks a create request with an empty required field.
var ErrMissingField = errors.New("missing required field")

// Message is a single board entry. The board is append-only: the public
// API exposes no update or delete, so a stored message never changes.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	IsPrivate bool      `json:"isPrivate"`
}

// CreateRequest carries the author-supplied fields for a new message.
// ID and Timestamp are assigned by the store.
type CreateRequest struct {
	Content   string `json:"content"`
	Sender    string `json:"sender"`
	Email     string `json:"email"`
	IsPrivate bool   `json:"isPrivate"`
}

// Validate reports the first empty required field. The email is a display
// key only and is never verified beyond presence.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return fmt.Errorf("%w: content", ErrMissingField)
	}
	if strings.TrimSpace(r.Sender) == "" {
		return fmt.Errorf("%w: sender", ErrMissingField)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	return nil
}
