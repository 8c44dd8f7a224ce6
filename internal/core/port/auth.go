package port

import (
	"context"
	"errors"

	"publicaya/internal/core/domain"
)

var (
	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrInvalidSession is returned when a session token does not verify.
	ErrInvalidSession = errors.New("invalid session")
)

// AuthResult is what the sign-in/sign-up forms consume. Authentication
// failures are not transport errors: the form stays usable and shows the
// backend's literal message.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// AuthUseCase is the inbound port for authentication. Sign-up also creates
// the profile row and rolls the account back by deletion when that fails.
type AuthUseCase interface {
	SignIn(ctx context.Context, email, password string) AuthResult
	SignUp(ctx context.Context, email, password string, role domain.Role) AuthResult
	SignOut(ctx context.Context, token string) AuthResult
	// ForgotPassword starts the password-recovery flow for an email. The
	// result never reveals whether the account exists.
	ForgotPassword(ctx context.Context, email string) AuthResult
	// ResetPassword consumes a recovery token and stores a new password.
	ResetPassword(ctx context.Context, token, password string) AuthResult
	// CurrentSession verifies a token and returns the session it carries,
	// or ErrInvalidSession.
	CurrentSession(token string) (*domain.Session, error)
}

// Subscription is an explicitly owned registration on the auth event
// stream. Close releases it; a released subscription's channel is closed.
type Subscription interface {
	C() <-chan domain.AuthEvent
	Close()
}

// AuthEvents lets components observe auth-state changes for their lifetime.
type AuthEvents interface {
	Subscribe() Subscription
}
