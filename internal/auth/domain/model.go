package domain

import (
	"errors"
	"time"
)

// User is the identity the auth service associates with a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the credential issued by the auth service on successful login.
// A visitor either has one or has none; there is no partial state.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Expired reports whether the session's token lifetime has passed.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

var ErrUnauthorized = errors.New("unauthorized")
