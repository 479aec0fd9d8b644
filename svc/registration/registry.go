package registration

import (
	"context"
	"strings"
	"time"
)

// AccountRegistryClient is the server-side account registry as seen by the
// form. Implementations classify failures with the sentinel errors below so
// that errors.Is works across transports.
type AccountRegistryClient interface {
	Register(ctx context.Context, in RegisterInput) (*AccountCreated, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}

// RegisterInput carries the normalized form values.
type RegisterInput struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the authenticated identity returned by the registry.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DisplayName renders the session owner as "Name LastName".
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(s.Name + " " + s.LastName)
}

// AccountCreated is the result of a successful registration.
type AccountCreated struct {
	UserID  string   `json:"userId"`
	Email   string   `json:"email"`
	Session *Session `json:"session,omitempty"`
}
