// Package session holds the device-local view state the board client
// carries between interactions: the captured identity, the private-access
// flag set by the gate, and the display preference for private messages.
// None of it is shared with the server.
package session

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrEmailInvalid = errors.New("a valid email is required")
)

// Identity is the display identity captured once before the board opens.
// It is attached to every outgoing message and never verified.
type Identity struct {
	Name  string
	Email string
}

// CaptureIdentity validates the one-shot identity form: a non-empty name
// and an email that at least contains an @.
func CaptureIdentity(name, email string) (Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return Identity{}, ErrNameRequired
	}
	if email == "" || !strings.Contains(email, "@") {
		return Identity{}, ErrEmailInvalid
	}
	return Identity{Name: name, Email: email}, nil
}

// Session is passed explicitly through the client; there is no ambient
// global state. Clear resets it to the pristine first-visit shape.
type Session struct {
	identity      Identity
	captured      bool
	authenticated bool
	showPrivate   bool
}

// NewSession returns a fresh session. The private-message display
// preference defaults to on so that unlocking alone reveals the feed.
func NewSession() *Session {
	return &Session{showPrivate: true}
}

// SetIdentity stores the captured identity and unblocks the board.
func (s *Session) SetIdentity(id Identity) {
	s.identity = id
	s.captured = true
}

// Identity reports the stored identity and whether capture has happened.
func (s *Session) Identity() (Identity, bool) {
	return s.identity, s.captured
}

// Unlock submits a secret to the gate and records a success. Repeated
// correct submissions are idempotent; a mismatch leaves the session
// unauthenticated and returns ErrSecretMismatch.
func (s *Session) Unlock(g Gate, secret string) error {
	if err := g.Submit(secret); err != nil {
		return err
	}
	s.authenticated = true
	return nil
}

// IsAuthenticated reports whether the gate has been passed.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// SetShowPrivate toggles the display preference for private messages.
func (s *Session) SetShowPrivate(show bool) {
	s.showPrivate = show
}

// ShowPrivate reports the display preference regardless of the gate.
func (s *Session) ShowPrivate() bool {
	return s.showPrivate
}

// CanSeePrivate is the flag the visibility filter consumes: the gate has
// been passed and the preference is on.
func (s *Session) CanSeePrivate() bool {
	return s.authenticated && s.showPrivate
}

// Clear is the explicit logout/reset lifecycle call.
func (s *Session) Clear() {
	*s = *NewSession()
}
