package domain

import "github.com/google/uuid"

// Session identifies an authenticated principal. Its lifecycle is owned by
// the auth layer; consumers only observe presence, identity and email.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// AuthEventKind names an auth-state change.
type AuthEventKind string

const (
	EventSignedIn    AuthEventKind = "signed_in"
	EventSignedOut   AuthEventKind = "signed_out"
	EventUserUpdated AuthEventKind = "user_updated"
)

// AuthEvent is broadcast whenever the auth state changes. Token carries the
// session token for signed-in and user-updated events and is empty for
// signed-out.
type AuthEvent struct {
	Kind  AuthEventKind
	Token string
}
