package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

const (
	msgSignInOK  = "Inicio de sesión exitoso."
	msgSignUpOK  = "Registro exitoso. Por favor, verifica tu correo electrónico si es necesario."
	msgSignOutOK = "Has cerrado sesión correctamente."

	// msgProfileCreateFailed deliberately hides the raw backend error.
	msgProfileCreateFailed = "Error al crear el perfil de usuario."
	msgRoleNotAllowed      = "Rol no permitido."

	// msgResetLinkSent is returned whether or not the account exists.
	msgResetLinkSent    = "Se ha enviado un enlace de restablecimiento de contraseña a tu correo electrónico."
	msgPasswordUpdated  = "Tu contraseña ha sido actualizada correctamente."
	msgResetLinkInvalid = "El enlace de restablecimiento no es válido o ha expirado."
)

// purposeReset marks recovery tokens so they can never pass as sessions,
// and session tokens can never reset a password.
const purposeReset = "password_reset"

// AuthUseCase implements sign-in, sign-up with profile creation and
// rollback, sign-out and session verification. Auth-state changes are
// published on the broadcaster so resolvers can re-run.
type AuthUseCase struct {
	accounts port.AccountStore
	profiles port.ProfileStore
	events   *Broadcaster
	signKey  []byte
	tokenTTL time.Duration
	resetTTL time.Duration
}

// NewAuthUseCase constructs the auth use case with its dependencies.
func NewAuthUseCase(accounts port.AccountStore, profiles port.ProfileStore, events *Broadcaster, signKey []byte, tokenTTL, resetTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		profiles: profiles,
		events:   events,
		signKey:  signKey,
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
	}
}

// SignIn verifies credentials and issues a session token. Failures keep
// the form usable: the result carries the literal message and no error is
// raised to the transport layer.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) port.AuthResult {
	acct, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return port.AuthResult{Message: port.ErrInvalidCredentials.Error()}
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return port.AuthResult{Message: port.ErrInvalidCredentials.Error()}
	}
	token, err := u.issueToken(acct.ID, acct.Email, "", u.tokenTTL)
	if err != nil {
		return port.AuthResult{Message: err.Error()}
	}
	u.events.Publish(domain.AuthEvent{Kind: domain.EventSignedIn, Token: token})
	return port.AuthResult{Success: true, Message: msgSignInOK, Token: token}
}

// SignUp creates the credential record and its profile row. When the
// profile insert fails the just-created account is deleted again and the
// caller gets a generic message instead of the raw backend error.
func (u *AuthUseCase) SignUp(ctx context.Context, email, password string, role domain.Role) port.AuthResult {
	if role != domain.RolePersonal && role != domain.RoleCompany {
		return port.AuthResult{Message: msgRoleNotAllowed}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return port.AuthResult{Message: err.Error()}
	}
	acct := &domain.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err = u.accounts.Create(ctx, acct); err != nil {
		return port.AuthResult{Message: err.Error()}
	}

	profile := &domain.Profile{
		ID:           acct.ID,
		Email:        email,
		Role:         role,
		ReferralCode: domain.NewReferralCode(),
	}
	if err = u.profiles.Insert(ctx, profile); err != nil {
		// compensate: the account must not outlive its failed profile
		_ = u.accounts.Delete(ctx, acct.ID)
		return port.AuthResult{Message: msgProfileCreateFailed}
	}

	token, err := u.issueToken(acct.ID, acct.Email, "", u.tokenTTL)
	if err != nil {
		return port.AuthResult{Message: err.Error()}
	}
	u.events.Publish(domain.AuthEvent{Kind: domain.EventSignedIn, Token: token})
	return port.AuthResult{Success: true, Message: msgSignUpOK, Token: token}
}

// SignOut broadcasts the signed-out event. Tokens are stateless, so the
// client discards its copy; the application only observes the change.
func (u *AuthUseCase) SignOut(ctx context.Context, token string) port.AuthResult {
	u.events.Publish(domain.AuthEvent{Kind: domain.EventSignedOut})
	return port.AuthResult{Success: true, Message: msgSignOutOK}
}

// ForgotPassword starts the recovery flow. A recovery token is minted for
// existing accounts and carried in the result for delivery; the message is
// the same either way so the endpoint cannot be used to probe for emails.
func (u *AuthUseCase) ForgotPassword(ctx context.Context, email string) port.AuthResult {
	acct, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return port.AuthResult{Success: true, Message: msgResetLinkSent}
	}
	token, err := u.issueToken(acct.ID, acct.Email, purposeReset, u.resetTTL)
	if err != nil {
		return port.AuthResult{Message: err.Error()}
	}
	return port.AuthResult{Success: true, Message: msgResetLinkSent, Token: token}
}

// ResetPassword consumes a recovery token and replaces the stored hash.
// Session tokens are refused here.
func (u *AuthUseCase) ResetPassword(ctx context.Context, token, password string) port.AuthResult {
	claims, err := u.verify(token)
	if err != nil || claims.Purpose != purposeReset {
		return port.AuthResult{Message: msgResetLinkInvalid}
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return port.AuthResult{Message: msgResetLinkInvalid}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return port.AuthResult{Message: err.Error()}
	}
	if err = u.accounts.UpdatePassword(ctx, id, string(hash)); err != nil {
		return port.AuthResult{Message: msgResetLinkInvalid}
	}
	u.events.Publish(domain.AuthEvent{Kind: domain.EventUserUpdated})
	return port.AuthResult{Success: true, Message: msgPasswordUpdated}
}

// CurrentSession verifies a token and returns the session it identifies.
// Recovery tokens do not carry a session.
func (u *AuthUseCase) CurrentSession(token string) (*domain.Session, error) {
	claims, err := u.verify(token)
	if err != nil || claims.Purpose != "" {
		return nil, port.ErrInvalidSession
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, port.ErrInvalidSession
	}
	return &domain.Session{UserID: id, Email: claims.Email}, nil
}

type sessionClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

func (u *AuthUseCase) verify(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, port.ErrInvalidSession
		}
		return u.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, port.ErrInvalidSession
	}
	return claims, nil
}

// issueToken creates a signed HS256 JWT for the given principal.
func (u *AuthUseCase) issueToken(userID uuid.UUID, email, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.signKey)
}
